package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"electoral/allocation"
	"electoral/internal/config"
	apperrors "electoral/server/errors"
	"electoral/sources"
)

// proveedorFijo fake del colaborador de fuentes con datos en memoria
type proveedorFijo struct {
	padron     *sources.PadronSnapshot
	metadatos  *sources.MetadatosSnapshot
	escrutinio map[string]*sources.EscrutinioSnapshot
	fallaEn    map[string]error
}

func (p *proveedorFijo) Padron(ctx context.Context) (*sources.PadronSnapshot, error) {
	return p.padron, nil
}

func (p *proveedorFijo) Metadatos(ctx context.Context) (*sources.MetadatosSnapshot, error) {
	return p.metadatos, nil
}

func (p *proveedorFijo) Escrutinio(ctx context.Context, distrito string) (*sources.EscrutinioSnapshot, error) {
	if err, ok := p.fallaEn[distrito]; ok {
		return nil, err
	}
	e, ok := p.escrutinio[distrito]
	if !ok {
		return nil, sources.ErrSinDatos
	}
	return e, nil
}

func padronDistrito(distrito string) []sources.CandidatoPadron {
	return []sources.CandidatoPadron{
		{Distrito: distrito, PactoLetra: "A", Partido: "Partido Uno", Cupo: "LISTA A", ID: "1", Nombre: "María Rojas Soto", Sexo: "M", Zona: "Norte"},
		{Distrito: distrito, PactoLetra: "A", Partido: "Partido Uno", Cupo: "LISTA A", ID: "2", Nombre: "Pedro Soto Díaz", Sexo: "H", Zona: "Norte"},
		{Distrito: distrito, PactoLetra: "B", Partido: "Partido Dos", Cupo: "LISTA B", ID: "3", Nombre: "Ana Fuentes Vera", Sexo: "M", Zona: "Sur"},
	}
}

func metadatosDistrito(distrito string) sources.DistritoFeed {
	return sources.DistritoFeed{
		Candidatos: map[string]sources.CandidatoFeed{
			"9001": {Nombre: "MARIA ROJAS SOTO", Partido: "Partido Uno", Sexo: "M"},
			"9002": {Nombre: "PEDRO SOTO DIAZ", Partido: "Partido Uno", Sexo: "H"},
			"9003": {Nombre: "ANA FUENTES VERA", Partido: "Partido Dos", Sexo: "M"},
		},
		Orden: []sources.CandidatoFeed{
			{Nombre: "MARIA ROJAS SOTO"},
			{Nombre: "PEDRO SOTO DIAZ"},
			{Nombre: "ANA FUENTES VERA"},
		},
	}
}

func proveedorPrueba() *proveedorFijo {
	return &proveedorFijo{
		padron: &sources.PadronSnapshot{PorDistrito: map[string][]sources.CandidatoPadron{
			"6001": padronDistrito("6001"),
			"6002": padronDistrito("6002"),
		}},
		metadatos: &sources.MetadatosSnapshot{Distritos: map[string]sources.DistritoFeed{
			"6001": metadatosDistrito("6001"),
			"6002": metadatosDistrito("6002"),
		}},
		escrutinio: map[string]*sources.EscrutinioSnapshot{
			"6001": {
				Distrito:     "6001",
				Votos:        map[string]int{"9001": 5000, "9002": 3000, "9003": 2500},
				VotosBlancos: 120,
				VotosNulos:   45,
			},
			"6002": {
				Distrito: "6002",
				Votos:    map[string]int{"9001": 900, "9002": 400, "9003": 700},
			},
		},
		fallaEn: map[string]error{},
	}
}

func datosPrueba() *config.DatosEleccion {
	return &config.DatosEleccion{
		Escanos:      map[string]int{"6001": 3, "6002": 2, "6003": 2},
		PactosNombre: map[string]string{"A": "Pacto Progresista", "B": "Pacto Republicano"},
		ValorUF:      500,
		SexoFemenino: "M",
		Fusiones:     config.DefaultFusiones(),
	}
}

func servicioPrueba(provider sources.Provider) *EleccionService {
	return NewEleccionService(provider, datosPrueba(), "", slog.Default())
}

func TestCandidatosDistrito(t *testing.T) {
	servicio := servicioPrueba(proveedorPrueba())

	candidatos, err := servicio.CandidatosDistrito(context.Background(), "6001")
	require.NoError(t, err)
	require.Len(t, candidatos, 3)

	// ordenados por votos descendentes, todos con match; el nombre para
	// mostrar viene del feed
	assert.Equal(t, "MARIA ROJAS SOTO", candidatos[0].Nombre)
	assert.Equal(t, 5000, candidatos[0].Votos)
	for _, c := range candidatos {
		assert.True(t, c.MatchExitoso)
	}
}

// TestCandidatosDistrito_FuenteCaida una falla del escrutinio llega como
// error de aplicación 502, no como un 500 genérico
func TestCandidatosDistrito_FuenteCaida(t *testing.T) {
	provider := proveedorPrueba()
	causa := errors.New("timeout de la fuente")
	provider.fallaEn["6001"] = causa

	servicio := servicioPrueba(provider)

	_, err := servicio.CandidatosDistrito(context.Background(), "6001")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.StatusCode())
	assert.ErrorIs(t, err, causa)
}

func TestCandidatosDistrito_SinDatos(t *testing.T) {
	servicio := servicioPrueba(proveedorPrueba())

	candidatos, err := servicio.CandidatosDistrito(context.Background(), "6003")
	require.NoError(t, err)
	assert.Empty(t, candidatos)
}

func TestCalcularDistrito(t *testing.T) {
	servicio := servicioPrueba(proveedorPrueba())

	completo, err := servicio.CalcularDistrito(context.Background(), "6001", allocation.ModoNormal)
	require.NoError(t, err)

	assert.Equal(t, "6001", completo.Distrito)
	assert.Equal(t, allocation.ModoNormal, completo.Mode)
	assert.Nil(t, completo.ResultadoNormal)
	require.NotNil(t, completo.Resultado)
	assert.Equal(t, 3, completo.Resultado.TotalDiputados)
}

func TestCalcularDistrito_ModoSimulado(t *testing.T) {
	servicio := servicioPrueba(proveedorPrueba())

	completo, err := servicio.CalcularDistrito(context.Background(), "6001", "izquierdas")
	require.NoError(t, err)

	// con simulación se conserva también el resultado sin fusión
	require.NotNil(t, completo.ResultadoNormal)
	require.NotNil(t, completo.Resultado)

	// A y B caen dentro del grupo de izquierdas: queda un solo pacto
	require.Len(t, completo.Resultado.Pactos, 1)
	assert.Equal(t, "IZQ", completo.Resultado.Pactos[0].Letra)
	assert.Len(t, completo.ResultadoNormal.Pactos, 2)
}

func TestCalcularDistrito_SinDatos(t *testing.T) {
	servicio := servicioPrueba(proveedorPrueba())

	_, err := servicio.CalcularDistrito(context.Background(), "6003", allocation.ModoNormal)
	assert.ErrorIs(t, err, allocation.ErrSinCandidatos)
}

func TestCalcularNacional(t *testing.T) {
	servicio := servicioPrueba(proveedorPrueba())

	resultado, err := servicio.CalcularNacional(context.Background(), allocation.ModoNormal)
	require.NoError(t, err)

	// 6001 y 6002 calculan; 6003 no tiene escrutinio y cuenta como error
	assert.Equal(t, 3, resultado.TotalDistritos)
	assert.Equal(t, 2, resultado.DistritosProcesados)
	assert.Equal(t, 1, resultado.DistritosError)
	assert.Equal(t, 5, resultado.Estadisticas.TotalEscanos)
}

func TestCalcularNacional_FuenteCaida(t *testing.T) {
	provider := proveedorPrueba()
	provider.fallaEn["6002"] = errors.New("timeout de la fuente")

	servicio := servicioPrueba(provider)

	resultado, err := servicio.CalcularNacional(context.Background(), allocation.ModoNormal)
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.DistritosProcesados)
	assert.Equal(t, 2, resultado.DistritosError)
}

func TestCalcularNacional_Deterministico(t *testing.T) {
	servicio := servicioPrueba(proveedorPrueba())

	primero, err := servicio.CalcularNacional(context.Background(), allocation.ModoNormal)
	require.NoError(t, err)
	segundo, err := servicio.CalcularNacional(context.Background(), allocation.ModoNormal)
	require.NoError(t, err)

	assert.Equal(t, primero, segundo)
}
