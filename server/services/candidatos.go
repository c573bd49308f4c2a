package services

import (
	"context"
	"errors"
	"math"
	"sort"

	"electoral/internal/config"
	"electoral/reconcile"
	apperrors "electoral/server/errors"
	"electoral/sources"
)

// VotosPacto resumen de votos de un pacto en un distrito
type VotosPacto struct {
	Letra      string   `json:"letra"`
	Nombre     string   `json:"nombre"`
	Votos      int      `json:"votos"`
	Porcentaje float64  `json:"porcentaje"`
	Partidos   []string `json:"partidos"`
	Candidatos int      `json:"candidatos"`
}

// ResumenVotos votos por pacto de un distrito, con blancos y nulos.
// TotalVotos suma solo votos de candidatos con pacto; TotalVotosGeneral
// agrega además los sin match, blancos y nulos.
type ResumenVotos struct {
	Distrito           string       `json:"distrito"`
	EscanosDisponibles int          `json:"escanos_disponibles"`
	Pactos             []VotosPacto `json:"pactos"`
	TotalVotos         int          `json:"total_votos"`
	TotalVotosGeneral  int          `json:"total_votos_general"`
	VotosBlancos       int          `json:"votos_blancos"`
	VotosNulos         int          `json:"votos_nulos"`
	SinMatch           int          `json:"sin_match"`
}

// CandidatoService resúmenes de candidatos y votos por distrito
type CandidatoService struct {
	eleccion *EleccionService
	provider sources.Provider
	datos    *config.DatosEleccion
}

// NewCandidatoService crea el servicio de candidatos
func NewCandidatoService(eleccion *EleccionService, provider sources.Provider, datos *config.DatosEleccion) *CandidatoService {
	return &CandidatoService{eleccion: eleccion, provider: provider, datos: datos}
}

// CandidatosLimpios lista canónica de candidatos del distrito, reconciliada
// y ordenada por votos descendentes
func (s *CandidatoService) CandidatosLimpios(ctx context.Context, distrito string) ([]reconcile.Candidato, error) {
	return s.eleccion.CandidatosDistrito(ctx, distrito)
}

// VotosPorPacto agrega los votos del distrito por pacto, con porcentajes
// sobre el total de votos de candidatos. Los candidatos sin match
// confiable se cuentan aparte y no suman a ningún pacto.
func (s *CandidatoService) VotosPorPacto(ctx context.Context, distrito string) (*ResumenVotos, error) {
	candidatos, err := s.eleccion.CandidatosDistrito(ctx, distrito)
	if err != nil {
		return nil, err
	}

	resumen := &ResumenVotos{
		Distrito:           distrito,
		EscanosDisponibles: s.datos.Escanos[distrito],
		Pactos:             []VotosPacto{},
	}

	// el escrutinio ya se pidió dentro de CandidatosDistrito; el cache de
	// fuentes evita una segunda ida a la red
	escrutinio, err := s.provider.Escrutinio(ctx, distrito)
	if err != nil && !errors.Is(err, sources.ErrSinDatos) {
		return nil, apperrors.NewBadGatewayError("La fuente de datos externa no está disponible", err).
			WithContext("escrutinio distrito " + distrito)
	}
	if escrutinio != nil {
		resumen.VotosBlancos = escrutinio.VotosBlancos
		resumen.VotosNulos = escrutinio.VotosNulos
	}

	if len(candidatos) == 0 {
		resumen.TotalVotosGeneral = resumen.VotosBlancos + resumen.VotosNulos
		return resumen, nil
	}

	type acumulado struct {
		letra      string
		nombre     string
		votos      int
		partidos   map[string]bool
		candidatos int
	}

	indice := make(map[string]*acumulado)
	var orden []*acumulado

	for _, c := range candidatos {
		if !c.MatchExitoso {
			resumen.SinMatch += c.Votos
			continue
		}
		resumen.TotalVotos += c.Votos

		pacto, ok := indice[c.PactoLetra]
		if !ok {
			pacto = &acumulado{
				letra:    c.PactoLetra,
				nombre:   c.PactoNombre,
				partidos: make(map[string]bool),
			}
			indice[c.PactoLetra] = pacto
			orden = append(orden, pacto)
		}
		pacto.votos += c.Votos
		pacto.candidatos++
		if c.Partido != "" {
			pacto.partidos[c.Partido] = true
		}
	}

	for _, pacto := range orden {
		partidos := make([]string, 0, len(pacto.partidos))
		for partido := range pacto.partidos {
			partidos = append(partidos, partido)
		}
		sort.Strings(partidos)

		votos := VotosPacto{
			Letra:      pacto.letra,
			Nombre:     pacto.nombre,
			Votos:      pacto.votos,
			Partidos:   partidos,
			Candidatos: pacto.candidatos,
		}
		if resumen.TotalVotos > 0 {
			pct := float64(pacto.votos) / float64(resumen.TotalVotos) * 100
			votos.Porcentaje = math.Round(pct*100) / 100
		}
		resumen.Pactos = append(resumen.Pactos, votos)
	}

	resumen.TotalVotosGeneral = resumen.TotalVotos + resumen.SinMatch +
		resumen.VotosBlancos + resumen.VotosNulos

	sort.SliceStable(resumen.Pactos, func(i, j int) bool {
		if resumen.Pactos[i].Votos != resumen.Pactos[j].Votos {
			return resumen.Pactos[i].Votos > resumen.Pactos[j].Votos
		}
		return resumen.Pactos[i].Letra < resumen.Pactos[j].Letra
	})

	return resumen, nil
}
