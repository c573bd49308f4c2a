package allocation

import (
	"math"
	"sort"

	"electoral/reconcile"
)

// CalcularDistrito asignación D'Hondt completa de un distrito sobre la
// lista canónica de candidatos. Solo participan los candidatos con match
// confiable; sin ellos, o sin escaños configurados, el distrito se reporta
// sin resultado, nunca un resultado parcial.
func CalcularDistrito(candidatos []reconcile.Candidato, p ParametrosDistrito) (*ResultadoDistrito, error) {
	if p.Escanos <= 0 {
		return nil, ErrSinEscanos
	}

	pactos := agruparPorPacto(candidatos)
	if len(pactos) == 0 {
		return nil, ErrSinCandidatos
	}

	asignacion := AsignarEntrePactos(pactos, p.Escanos)

	resultado := &ResultadoDistrito{
		Distrito: p.Distrito,
		Escanos:  p.Escanos,
		Pactos:   make([]PactoResultado, 0, len(pactos)),
	}
	resultado.ResumenMujeres.ValorUF = p.ValorUF

	for _, pacto := range pactos {
		escanosPacto := asignacion[pacto.Letra]

		parcial := PactoResultado{
			Nombre:            pacto.Nombre,
			Letra:             pacto.Letra,
			TotalVotos:        redondear(pacto.TotalVotos, 4),
			Escanos:           escanosPacto,
			CandidatosElectos: []Electo{},
		}

		if escanosPacto > 0 {
			parcial.CandidatosElectos = elegirCandidatos(pacto, escanosPacto, p)
			for _, electo := range parcial.CandidatosElectos {
				if electo.Sexo == p.SexoFemenino {
					parcial.MujeresElectas++
				}
			}
			parcial.Bonificacion = float64(parcial.MujeresElectas) * p.ValorUF

			resultado.ResumenMujeres.TotalMujeresElectas += parcial.MujeresElectas
			resultado.ResumenMujeres.TotalBonificacion += parcial.Bonificacion
		}

		resultado.TotalDiputados += parcial.Escanos
		resultado.Pactos = append(resultado.Pactos, parcial)
	}

	// pactos por (escaños, votos) descendentes; letra fija el empate
	pactosOrdenados := resultado.Pactos
	sort.SliceStable(pactosOrdenados, func(i, j int) bool {
		if pactosOrdenados[i].Escanos != pactosOrdenados[j].Escanos {
			return pactosOrdenados[i].Escanos > pactosOrdenados[j].Escanos
		}
		if pactosOrdenados[i].TotalVotos != pactosOrdenados[j].TotalVotos {
			return pactosOrdenados[i].TotalVotos > pactosOrdenados[j].TotalVotos
		}
		return pactosOrdenados[i].Letra < pactosOrdenados[j].Letra
	})

	if p.Escanos > 0 {
		pct := float64(resultado.ResumenMujeres.TotalMujeresElectas) / float64(p.Escanos) * 100
		resultado.ResumenMujeres.PorcentajeMujeres = redondear(pct, 2)
	}

	return resultado, nil
}

// elegirCandidatos selecciona los electos de un pacto: reparte los escaños
// del pacto entre cupos (nivel 2) y dentro de cada cupo gana el top-N por
// votos
func elegirCandidatos(pacto *pactoAgrupado, escanosPacto int, p ParametrosDistrito) []Electo {
	asignacionCupos := AsignarDentroDelPacto(pacto.Candidatos, escanosPacto)

	electos := make([]Electo, 0, escanosPacto)
	for _, cupo := range agruparPorCupo(pacto.Candidatos) {
		escanosCupo := asignacionCupos[cupo.Cupo]
		if escanosCupo == 0 {
			continue
		}
		if escanosCupo > len(cupo.Candidatos) {
			escanosCupo = len(cupo.Candidatos)
		}

		for _, c := range cupo.Candidatos[:escanosCupo] {
			electos = append(electos, Electo{
				Nombre:   c.Nombre,
				Cupo:     c.Cupo,
				Partido:  c.Partido,
				Votos:    c.Votos,
				Sexo:     c.Sexo,
				Foto:     c.Foto,
				Distrito: p.Distrito,
			})
		}
	}

	sort.SliceStable(electos, func(i, j int) bool {
		if electos[i].Votos != electos[j].Votos {
			return electos[i].Votos > electos[j].Votos
		}
		return electos[i].Nombre < electos[j].Nombre
	})

	return electos
}

// redondear redondea a la cantidad de decimales indicada
func redondear(valor float64, decimales int) float64 {
	factor := math.Pow(10, float64(decimales))
	return math.Round(valor*factor) / factor
}
