// Package services contiene la lógica de aplicación del servidor: el
// cálculo electoral por distrito y nacional, los resúmenes de votos, la
// autenticación y la exportación a Excel.
package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"electoral/allocation"
	"electoral/internal/config"
	"electoral/reconcile"
	apperrors "electoral/server/errors"
	"electoral/server/middleware"
	"electoral/sources"
)

// concurrenciaNacional distritos calculados en paralelo en el cálculo
// nacional
const concurrenciaNacional = 8

// ResultadoDistritoCompleto respuesta del cálculo de un distrito. Con un
// modo de simulación distinto de normal se conserva también el resultado
// sin fusión, para comparar.
type ResultadoDistritoCompleto struct {
	Distrito        string                        `json:"distrito"`
	Mode            string                        `json:"mode"`
	Resultado       *allocation.ResultadoDistrito `json:"resultado"`
	ResultadoNormal *allocation.ResultadoDistrito `json:"resultado_normal,omitempty"`
}

// EleccionService orquesta el pipeline completo: fuentes, reconciliación,
// fusión y asignación de escaños
type EleccionService struct {
	provider sources.Provider
	datos    *config.DatosEleccion
	opciones reconcile.Opciones
	logger   *slog.Logger
}

// NewEleccionService crea el servicio electoral
func NewEleccionService(provider sources.Provider, datos *config.DatosEleccion, fotoBaseURL string, logger *slog.Logger) *EleccionService {
	return &EleccionService{
		provider: provider,
		datos:    datos,
		opciones: reconcile.Opciones{
			FotoBaseURL: fotoBaseURL,
			NombrePacto: datos.NombrePacto,
		},
		logger: logger,
	}
}

// Distritos devuelve los distritos configurados, ordenados
func (s *EleccionService) Distritos() []string {
	distritos := make([]string, 0, len(s.datos.Escanos))
	for distrito := range s.datos.Escanos {
		distritos = append(distritos, distrito)
	}
	sort.Strings(distritos)
	return distritos
}

// CandidatosDistrito arma la lista canónica de candidatos del distrito a
// partir de las tres fuentes. Lista vacía significa "sin datos", no error.
func (s *EleccionService) CandidatosDistrito(ctx context.Context, distrito string) ([]reconcile.Candidato, error) {
	padron, err := s.provider.Padron(ctx)
	if err != nil {
		return nil, apperrors.NewBadGatewayError("La fuente de datos externa no está disponible", err).
			WithContext("padrón")
	}

	metadatos, err := s.provider.Metadatos(ctx)
	if err != nil {
		return nil, apperrors.NewBadGatewayError("La fuente de datos externa no está disponible", err).
			WithContext("metadatos")
	}

	escrutinio, err := s.provider.Escrutinio(ctx, distrito)
	if err != nil {
		if errors.Is(err, sources.ErrSinDatos) {
			return nil, nil
		}
		return nil, apperrors.NewBadGatewayError("La fuente de datos externa no está disponible", err).
			WithContext("escrutinio distrito " + distrito)
	}

	return reconcile.Reconciliar(distrito, padron, metadatos, escrutinio, s.opciones), nil
}

// parametros arma los parámetros D'Hondt del distrito
func (s *EleccionService) parametros(distrito string) allocation.ParametrosDistrito {
	return allocation.ParametrosDistrito{
		Distrito:     distrito,
		Escanos:      s.datos.Escanos[distrito],
		ValorUF:      s.datos.ValorUF,
		SexoFemenino: s.datos.SexoFemenino,
	}
}

// CalcularDistrito cálculo D'Hondt completo de un distrito bajo el modo de
// simulación indicado. Con modo distinto de normal también se calcula y
// conserva el resultado normal.
func (s *EleccionService) CalcularDistrito(ctx context.Context, distrito, mode string) (*ResultadoDistritoCompleto, error) {
	candidatos, err := s.CandidatosDistrito(ctx, distrito)
	if err != nil {
		return nil, err
	}
	if len(candidatos) == 0 {
		return nil, allocation.ErrSinCandidatos
	}

	parametros := s.parametros(distrito)

	fusionados := allocation.FusionarModo(candidatos, mode, s.datos.Fusiones)
	resultado, err := allocation.CalcularDistrito(fusionados, parametros)
	if err != nil {
		return nil, err
	}

	completo := &ResultadoDistritoCompleto{
		Distrito:  distrito,
		Mode:      mode,
		Resultado: resultado,
	}

	if mode != allocation.ModoNormal {
		normal, err := allocation.CalcularDistrito(candidatos, parametros)
		if err != nil {
			return nil, err
		}
		completo.ResultadoNormal = normal
	}

	return completo, nil
}

// CalcularNacional agrega el cálculo de todos los distritos configurados.
// Los distritos se calculan en paralelo con concurrencia acotada; un
// distrito fallido se cuenta y no aborta el cálculo.
func (s *EleccionService) CalcularNacional(ctx context.Context, mode string) (*allocation.ResultadoNacional, error) {
	distritos := s.Distritos()
	agregador := allocation.NewAgregadorNacional(mode, len(distritos))

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrenciaNacional)

	for _, distrito := range distritos {
		wg.Add(1)
		sem <- struct{}{}

		go func(distrito string) {
			defer wg.Done()
			defer func() { <-sem }()

			completo, err := s.CalcularDistrito(ctx, distrito, mode)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				middleware.LogWarn(s.logger, ctx, "distrito sin resultado",
					"distrito", distrito,
					"mode", mode,
					"error", err,
				)
				agregador.RegistrarError(distrito)
				return
			}
			agregador.AgregarDistrito(completo.Resultado)
		}(distrito)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return agregador.Resultado(), nil
}
