package allocation

import (
	"sort"

	"electoral/reconcile"
)

// cociente cociente D'Hondt de un competidor (pacto o cupo)
type cociente struct {
	clave           string
	divisor         int
	valor           float64
	votosOriginales float64
	orden           int // orden de primera aparición del competidor
}

// ordenarCocientes orden reproducible de los cocientes: valor descendente,
// votos totales originales descendentes y orden de aparición como último
// desempate. El desempate está fijado explícitamente porque el método
// D'Hondt no lo define.
func ordenarCocientes(cocientes []cociente) {
	sort.SliceStable(cocientes, func(i, j int) bool {
		if cocientes[i].valor != cocientes[j].valor {
			return cocientes[i].valor > cocientes[j].valor
		}
		if cocientes[i].votosOriginales != cocientes[j].votosOriginales {
			return cocientes[i].votosOriginales > cocientes[j].votosOriginales
		}
		return cocientes[i].orden < cocientes[j].orden
	})
}

// AsignarEntrePactos nivel 1 del método: reparte los escaños del distrito
// entre pactos por cocientes D'Hondt. Cada pacto genera escanos cocientes
// votos/d con d = 1..escanos; los escanos mayores cocientes otorgan un
// escaño cada uno.
func AsignarEntrePactos(pactos []*pactoAgrupado, escanos int) map[string]int {
	asignacion := make(map[string]int)
	if escanos <= 0 || len(pactos) == 0 {
		return asignacion
	}

	cocientes := make([]cociente, 0, len(pactos)*escanos)
	for orden, pacto := range pactos {
		for divisor := 1; divisor <= escanos; divisor++ {
			cocientes = append(cocientes, cociente{
				clave:           pacto.Letra,
				divisor:         divisor,
				valor:           pacto.TotalVotos / float64(divisor),
				votosOriginales: pacto.TotalVotos,
				orden:           orden,
			})
		}
	}

	ordenarCocientes(cocientes)

	for _, c := range cocientes[:escanos] {
		asignacion[c.clave]++
	}

	return asignacion
}

// cupoAgrupado agrupación interna de los candidatos de un pacto por cupo
type cupoAgrupado struct {
	Cupo       string
	TotalVotos float64
	Candidatos []reconcile.Candidato
}

// agruparPorCupo agrupa los candidatos de un pacto por cupo, con los
// candidatos de cada cupo ordenados por votos descendentes y los cupos
// ordenados por votos totales descendentes
func agruparPorCupo(candidatos []reconcile.Candidato) []*cupoAgrupado {
	indice := make(map[string]*cupoAgrupado)
	var orden []*cupoAgrupado

	for _, c := range candidatos {
		clave := c.Cupo
		if clave == "" {
			clave = CupoSinLista
		}

		cupo, ok := indice[clave]
		if !ok {
			cupo = &cupoAgrupado{Cupo: clave}
			indice[clave] = cupo
			orden = append(orden, cupo)
		}
		cupo.TotalVotos += float64(c.Votos)
		cupo.Candidatos = append(cupo.Candidatos, c)
	}

	for _, cupo := range orden {
		candidatos := cupo.Candidatos
		sort.SliceStable(candidatos, func(i, j int) bool {
			if candidatos[i].Votos != candidatos[j].Votos {
				return candidatos[i].Votos > candidatos[j].Votos
			}
			return candidatos[i].IDAPI < candidatos[j].IDAPI
		})
	}

	sort.SliceStable(orden, func(i, j int) bool {
		if orden[i].TotalVotos != orden[j].TotalVotos {
			return orden[i].TotalVotos > orden[j].TotalVotos
		}
		return orden[i].Cupo < orden[j].Cupo
	})

	return orden
}

// AsignarDentroDelPacto nivel 2 del método: reparte los escaños ganados por
// un pacto entre sus cupos. Un cupo nunca recibe más escaños que candidatos
// disponibles: su cociente se salta y la asignación continúa con el
// siguiente mejor cociente.
func AsignarDentroDelPacto(candidatos []reconcile.Candidato, escanosPacto int) map[string]int {
	asignacion := make(map[string]int)
	if escanosPacto <= 0 || len(candidatos) == 0 {
		return asignacion
	}

	cupos := agruparPorCupo(candidatos)

	cocientes := make([]cociente, 0, len(cupos)*escanosPacto)
	for orden, cupo := range cupos {
		for divisor := 1; divisor <= escanosPacto; divisor++ {
			cocientes = append(cocientes, cociente{
				clave:           cupo.Cupo,
				divisor:         divisor,
				valor:           cupo.TotalVotos / float64(divisor),
				votosOriginales: cupo.TotalVotos,
				orden:           orden,
			})
		}
	}

	ordenarCocientes(cocientes)

	disponibles := make(map[string]int, len(cupos))
	for _, cupo := range cupos {
		disponibles[cupo.Cupo] = len(cupo.Candidatos)
	}

	asignados := 0
	for _, c := range cocientes {
		if asignados >= escanosPacto {
			break
		}
		if asignacion[c.clave] >= disponibles[c.clave] {
			continue
		}
		asignacion[c.clave]++
		asignados++
	}

	return asignacion
}
