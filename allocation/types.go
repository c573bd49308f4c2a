// Package allocation implementa la asignación de escaños D'Hondt en dos
// niveles (entre pactos y por cupo dentro de cada pacto), la fusión de
// pactos para simulaciones y la agregación nacional.
package allocation

import (
	"errors"

	"electoral/reconcile"
)

// ErrSinCandidatos el distrito no tiene candidatos reconciliados con match
// confiable: el cálculo completo se reporta como "sin resultado".
var ErrSinCandidatos = errors.New("sin candidatos reconciliados para el distrito")

// ErrSinEscanos el distrito no tiene escaños configurados
var ErrSinEscanos = errors.New("distrito sin escaños configurados")

// CupoSinLista cupo sintético para candidatos sin lista declarada
const CupoSinLista = "SIN_CUPO"

// ParametrosDistrito parámetros de cálculo de un distrito
type ParametrosDistrito struct {
	Distrito string
	Escanos  int
	// ValorUF monto de la bonificación por cada mujer electa
	ValorUF float64
	// SexoFemenino código de sexo que marca mujeres en las fuentes.
	// Convención del proveedor de datos, configurable.
	SexoFemenino string
}

// Electo candidato que obtuvo un escaño
type Electo struct {
	Nombre         string `json:"nombre"`
	Cupo           string `json:"cupo"`
	Partido        string `json:"partido"`
	Votos          int    `json:"votos"`
	Sexo           string `json:"sexo"`
	Foto           string `json:"foto,omitempty"`
	Distrito       string `json:"distrito"`
	DistritoNumero int    `json:"distrito_numero,omitempty"`
	PactoLetra     string `json:"pacto_letra,omitempty"`
	PactoNombre    string `json:"pacto_nombre,omitempty"`
}

// PactoResultado resultado de un pacto dentro de un distrito. Los pactos
// sin escaños también aparecen, con lista de electos vacía y bonificación
// cero.
type PactoResultado struct {
	Nombre            string   `json:"nombre"`
	Letra             string   `json:"letra"`
	TotalVotos        float64  `json:"total_votos"`
	Escanos           int      `json:"escanos"`
	CandidatosElectos []Electo `json:"candidatos_electos"`
	MujeresElectas    int      `json:"mujeres_electas"`
	Bonificacion      float64  `json:"bonificacion"`
}

// ResumenMujeres totales de paridad del distrito
type ResumenMujeres struct {
	TotalMujeresElectas int     `json:"total_mujeres_electas"`
	TotalBonificacion   float64 `json:"total_bonificacion"`
	ValorUF             float64 `json:"valor_uf"`
	PorcentajeMujeres   float64 `json:"porcentaje_mujeres"`
}

// ResultadoDistrito asignación completa de un distrito
type ResultadoDistrito struct {
	Distrito       string           `json:"distrito"`
	Escanos        int              `json:"escanos"`
	Pactos         []PactoResultado `json:"pactos"`
	TotalDiputados int              `json:"total_diputados"`
	ResumenMujeres ResumenMujeres   `json:"resumen_mujeres"`
}

// pactoAgrupado agrupación interna de candidatos por letra de pacto,
// en orden de primera aparición sobre la lista votos-descendente
type pactoAgrupado struct {
	Letra      string
	Nombre     string
	TotalVotos float64
	Candidatos []reconcile.Candidato
}

// agruparPorPacto agrupa los candidatos con match confiable por letra de
// pacto. El orden de primera aparición queda fijado por la entrada, que
// llega ordenada por votos descendentes desde la reconciliación.
func agruparPorPacto(candidatos []reconcile.Candidato) []*pactoAgrupado {
	indice := make(map[string]*pactoAgrupado)
	var orden []*pactoAgrupado

	for _, c := range candidatos {
		if !c.MatchExitoso {
			continue
		}

		pacto, ok := indice[c.PactoLetra]
		if !ok {
			pacto = &pactoAgrupado{Letra: c.PactoLetra, Nombre: c.PactoNombre}
			indice[c.PactoLetra] = pacto
			orden = append(orden, pacto)
		}
		pacto.TotalVotos += float64(c.Votos)
		pacto.Candidatos = append(pacto.Candidatos, c)
	}

	return orden
}
