package normalization

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

const (
	// ScoreMinimo piso de similitud: bajo este valor no hay match alguno
	ScoreMinimo = 50.0
	// ScoreAceptacion umbral de confianza: bajo este valor el match se
	// devuelve solo como diagnóstico y el llamador no debe aceptarlo
	ScoreAceptacion = 80.0
)

// ResultadoMatch resultado de buscar un nombre dentro de un padrón
type ResultadoMatch struct {
	Indice int     // índice del mejor candidato, -1 si no hay match
	Score  float64 // similitud en [0,100]
}

// Aceptado indica si el match supera el umbral de confianza
func (r ResultadoMatch) Aceptado() bool {
	return r.Indice >= 0 && r.Score >= ScoreAceptacion
}

// SinMatch resultado vacío
func SinMatch() ResultadoMatch {
	return ResultadoMatch{Indice: -1, Score: 0}
}

// MatchNombre busca el nombre externo dentro de la lista de nombres del
// padrón y devuelve el índice del mejor candidato con su similitud.
// Solo se conserva el mejor candidato con score >= ScoreMinimo; con lista
// vacía o consulta vacía devuelve SinMatch de inmediato.
func MatchNombre(nombre string, nombres []string) ResultadoMatch {
	normalizados := make([]string, len(nombres))
	for i, n := range nombres {
		normalizados[i] = NormalizarNombre(n)
	}
	return MejorCandidato(NormalizarNombre(nombre), normalizados)
}

// MejorCandidato variante sobre nombres ya normalizados. Permite a los
// llamadores que comparan muchas consultas contra el mismo padrón
// normalizar una sola vez.
func MejorCandidato(consulta string, nombresNormalizados []string) ResultadoMatch {
	if consulta == "" || len(nombresNormalizados) == 0 {
		return SinMatch()
	}

	mejor := SinMatch()
	for i, n := range nombresNormalizados {
		score := RatioPonderado(consulta, n)
		if score > mejor.Score {
			mejor = ResultadoMatch{Indice: i, Score: score}
		}
	}

	if mejor.Score < ScoreMinimo {
		return SinMatch()
	}
	return mejor
}

// RatioPonderado similitud ponderada en [0,100] entre dos cadenas ya
// normalizadas. Combina el ratio de edición con variantes tolerantes al
// orden de palabras y al solapamiento parcial, al estilo WRatio.
func RatioPonderado(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0
	}
	if s1 == s2 {
		return 100
	}

	base := ratioEdicion(s1, s2)
	orden := ratioTokensOrdenados(s1, s2) * 0.95
	conjunto := ratioConjuntoTokens(s1, s2) * 0.95
	jw := smetrics.JaroWinkler(s1, s2, 0.7, 4) * 100 * 0.90

	return maxFloat(base, orden, conjunto, jw)
}

// ratioEdicion ratio clásico sobre distancia de Levenshtein, en [0,100]
func ratioEdicion(s1, s2 string) float64 {
	maxLen := max(len([]rune(s1)), len([]rune(s2)))
	if maxLen == 0 {
		return 100
	}
	distancia := levenshtein.ComputeDistance(s1, s2)
	return (1 - float64(distancia)/float64(maxLen)) * 100
}

// ratioTokensOrdenados compara las cadenas con sus palabras ordenadas
// alfabéticamente, neutralizando el orden (apellido-nombre vs nombre-apellido)
func ratioTokensOrdenados(s1, s2 string) float64 {
	return ratioEdicion(ordenarTokens(s1), ordenarTokens(s2))
}

// ratioConjuntoTokens compara intersección y diferencias de los conjuntos de
// palabras; tolera que una cadena sea subconjunto de la otra
func ratioConjuntoTokens(s1, s2 string) float64 {
	set1 := tokens(s1)
	set2 := tokens(s2)

	var interseccion, solo1, solo2 []string
	for tok := range set1 {
		if set2[tok] {
			interseccion = append(interseccion, tok)
		} else {
			solo1 = append(solo1, tok)
		}
	}
	for tok := range set2 {
		if !set1[tok] {
			solo2 = append(solo2, tok)
		}
	}

	sort.Strings(interseccion)
	sort.Strings(solo1)
	sort.Strings(solo2)

	comun := strings.Join(interseccion, " ")
	combinado1 := strings.TrimSpace(comun + " " + strings.Join(solo1, " "))
	combinado2 := strings.TrimSpace(comun + " " + strings.Join(solo2, " "))

	return maxFloat(
		ratioEdicion(comun, combinado1),
		ratioEdicion(comun, combinado2),
		ratioEdicion(combinado1, combinado2),
	)
}

func ordenarTokens(s string) string {
	palabras := strings.Fields(s)
	sort.Strings(palabras)
	return strings.Join(palabras, " ")
}

func tokens(s string) map[string]bool {
	set := make(map[string]bool)
	for _, p := range strings.Fields(s) {
		set[p] = true
	}
	return set
}

func maxFloat(valores ...float64) float64 {
	m := valores[0]
	for _, v := range valores[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
