package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"electoral/reconcile"
)

func resultadoDistritoPrueba(t *testing.T, distrito string, escanos int, candidatos []reconcile.Candidato) *ResultadoDistrito {
	t.Helper()

	resultado, err := CalcularDistrito(candidatos, ParametrosDistrito{
		Distrito:     distrito,
		Escanos:      escanos,
		ValorUF:      500,
		SexoFemenino: "M",
	})
	require.NoError(t, err)
	return resultado
}

// TestAgregadorNacional_DistritosConError dos distritos exitosos de 3 y 2
// escaños más uno fallido: el total nacional refleja solo los procesados y
// cuenta el error sin abortar
func TestAgregadorNacional_DistritosConError(t *testing.T) {
	agregador := NewAgregadorNacional(ModoNormal, 3)

	agregador.AgregarDistrito(resultadoDistritoPrueba(t, "6001", 3, candidatosPrueba()))
	agregador.AgregarDistrito(resultadoDistritoPrueba(t, "6002", 2, []reconcile.Candidato{
		candidato("9101", "Rosa Pinto", "A", "LISTA A", 900, "M"),
		candidato("9102", "Diego Lara", "B", "LISTA B", 700, "H"),
	}))
	agregador.RegistrarError("6003")

	resultado := agregador.Resultado()

	assert.True(t, resultado.Success)
	assert.Equal(t, ModoNormal, resultado.Mode)
	assert.Equal(t, 3, resultado.TotalDistritos)
	assert.Equal(t, 2, resultado.DistritosProcesados)
	assert.Equal(t, 1, resultado.DistritosError)
	assert.Equal(t, 5, resultado.Estadisticas.TotalEscanos)
	assert.Equal(t, 5, resultado.Estadisticas.TotalDiputados)
	assert.Len(t, resultado.DiputadosElectos, 5)
}

func TestAgregadorNacional_AcumuladoPorPacto(t *testing.T) {
	agregador := NewAgregadorNacional(ModoNormal, 2)
	agregador.AgregarDistrito(resultadoDistritoPrueba(t, "6001", 3, candidatosPrueba()))
	agregador.AgregarDistrito(resultadoDistritoPrueba(t, "6002", 2, []reconcile.Candidato{
		candidato("9101", "Rosa Pinto", "A", "LISTA A", 900, "M"),
		candidato("9102", "Diego Lara", "B", "LISTA B", 700, "H"),
	}))

	resultado := agregador.Resultado()

	porLetra := make(map[string]PactoNacional)
	for _, pacto := range resultado.PactosNacionales {
		porLetra[pacto.Letra] = pacto
	}

	// A: 2 escaños en 6001 + 1 en 6002; B: 1 + 1
	assert.Equal(t, 3, porLetra["A"].EscanosTotales)
	assert.Equal(t, 2, porLetra["A"].DistritosGanados)
	assert.Equal(t, 2, porLetra["B"].EscanosTotales)
	assert.Equal(t, 2, porLetra["B"].DistritosGanados)
	assert.Equal(t, 0, porLetra["C"].EscanosTotales)
	assert.Equal(t, 0, porLetra["C"].DistritosGanados)

	// A: Maria Rojas y Rosa Pinto electas, 500 cada una
	assert.Equal(t, 2, porLetra["A"].MujeresTotales)
	assert.Equal(t, float64(1000), porLetra["A"].BonificacionTotal)

	assert.InDelta(t, 60.0, porLetra["A"].PorcentajeNacional, 0.001)
	assert.InDelta(t, 40.0, porLetra["B"].PorcentajeNacional, 0.001)
}

func TestAgregadorNacional_EstampaDistritoEnElectos(t *testing.T) {
	agregador := NewAgregadorNacional(ModoNormal, 1)
	agregador.AgregarDistrito(resultadoDistritoPrueba(t, "6007", 3, candidatosPrueba()))

	resultado := agregador.Resultado()

	require.NotEmpty(t, resultado.DiputadosElectos)
	for _, electo := range resultado.DiputadosElectos {
		assert.Equal(t, "6007", electo.Distrito)
		assert.Equal(t, 7, electo.DistritoNumero)
		assert.NotEmpty(t, electo.PactoLetra)
		assert.NotEmpty(t, electo.PactoNombre)
	}
}

// TestAgregadorNacional_OrdenIndependiente agregar los distritos en otro
// orden produce exactamente el mismo resultado nacional
func TestAgregadorNacional_OrdenIndependiente(t *testing.T) {
	distritoUno := resultadoDistritoPrueba(t, "6001", 3, candidatosPrueba())
	distritoDos := resultadoDistritoPrueba(t, "6002", 2, []reconcile.Candidato{
		candidato("9101", "Rosa Pinto", "A", "LISTA A", 900, "M"),
		candidato("9102", "Diego Lara", "B", "LISTA B", 700, "H"),
	})

	directo := NewAgregadorNacional(ModoNormal, 2)
	directo.AgregarDistrito(distritoUno)
	directo.AgregarDistrito(distritoDos)

	inverso := NewAgregadorNacional(ModoNormal, 2)
	inverso.AgregarDistrito(distritoDos)
	inverso.AgregarDistrito(distritoUno)

	assert.Equal(t, directo.Resultado(), inverso.Resultado())
}

func TestAgregadorNacional_ElectosOrdenados(t *testing.T) {
	agregador := NewAgregadorNacional(ModoNormal, 2)
	agregador.AgregarDistrito(resultadoDistritoPrueba(t, "6001", 3, candidatosPrueba()))
	agregador.AgregarDistrito(resultadoDistritoPrueba(t, "6002", 2, []reconcile.Candidato{
		candidato("9101", "Rosa Pinto", "A", "LISTA A", 900, "M"),
		candidato("9102", "Diego Lara", "B", "LISTA B", 700, "H"),
	}))

	resultado := agregador.Resultado()

	for i := 1; i < len(resultado.DiputadosElectos); i++ {
		assert.GreaterOrEqual(t, resultado.DiputadosElectos[i-1].Votos, resultado.DiputadosElectos[i].Votos)
	}
}

func TestAgregadorNacional_SinDistritos(t *testing.T) {
	agregador := NewAgregadorNacional(ModoNormal, 28)
	agregador.RegistrarError("6001")

	resultado := agregador.Resultado()

	assert.Equal(t, 0, resultado.DistritosProcesados)
	assert.Equal(t, 1, resultado.DistritosError)
	assert.Zero(t, resultado.Estadisticas.TotalEscanos)
	assert.Zero(t, resultado.Estadisticas.PorcentajeMujeres)
	assert.Empty(t, resultado.DiputadosElectos)
	assert.Empty(t, resultado.PactosNacionales)
}

func TestNumeroDistrito(t *testing.T) {
	assert.Equal(t, 1, numeroDistrito("6001"))
	assert.Equal(t, 28, numeroDistrito("6028"))
	assert.Equal(t, 0, numeroDistrito("7001"))
	assert.Equal(t, 0, numeroDistrito("60xx"))
}
