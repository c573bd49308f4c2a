// Package reconcile integra las tres fuentes electorales (padrón CSV, feed
// de metadatos y escrutinio XML) en un registro canónico por candidato.
// El mapeo de identidades combina un mapeo posicional de letras con match
// difuso de nombres contra el padrón.
package reconcile

import (
	"fmt"
	"sort"

	"electoral/normalization"
	"electoral/sources"
)

// PactoSinMatch letra sintética para candidatos que no pudieron resolverse
// contra el padrón. Se reportan pero quedan fuera de la asignación.
const PactoSinMatch = "X"

// letrasPosicionales alfabeto del mapeo posicional del feed
const letrasPosicionales = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Candidato registro canónico de un candidato, derivado de las tres fuentes.
// Se reconstruye en cada petición; no hay identidad persistente entre
// peticiones.
type Candidato struct {
	IDAPI        string  `json:"id_api"`
	Votos        int     `json:"votos"`
	Nombre       string  `json:"nombre"`
	Partido      string  `json:"partido"`
	PactoLetra   string  `json:"pacto_letra"`
	PactoNombre  string  `json:"pacto_nombre"`
	Sexo         string  `json:"sexo"`
	Cupo         string  `json:"cupo"`
	Foto         string  `json:"foto,omitempty"`
	Zona         string  `json:"zona"`
	MatchQuality float64 `json:"match_quality"`
	MatchExitoso bool    `json:"match_exitoso"`
}

// Opciones parámetros de la reconciliación
type Opciones struct {
	// FotoBaseURL patrón con %s para construir la URL de la foto desde
	// el id de foto del padrón. Vacío deshabilita las fotos.
	FotoBaseURL string
	// NombrePacto resuelve el nombre para mostrar de una letra de pacto
	NombrePacto func(letra string) string
}

func (o Opciones) nombrePacto(letra string) string {
	if o.NombrePacto != nil {
		return o.NombrePacto(letra)
	}
	return fmt.Sprintf("Pacto %s", letra)
}

// MapeoLetras deriva el mapeo posicional letra → id-feed: recorre la lista
// ordenada del feed asignando A, B, C, … y busca el id por igualdad exacta
// de nombre dentro del mapa de candidatos del propio feed. Los nombres se
// resuelven contra un índice construido sobre las claves ordenadas: un
// nombre duplicado en el feed resuelve siempre al id menor, nunca según el
// orden de iteración del mapa.
func MapeoLetras(feed sources.DistritoFeed) map[string]string {
	ids := make([]string, 0, len(feed.Candidatos))
	for id := range feed.Candidatos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	porNombre := make(map[string]string, len(ids))
	for _, id := range ids {
		nombre := feed.Candidatos[id].Nombre
		if _, visto := porNombre[nombre]; !visto {
			porNombre[nombre] = id
		}
	}

	mapeo := make(map[string]string)
	for i, candidato := range feed.Orden {
		if i >= len(letrasPosicionales) {
			break
		}
		if id, ok := porNombre[candidato.Nombre]; ok {
			mapeo[string(letrasPosicionales[i])] = id
		}
	}

	return mapeo
}

// Reconciliar produce la lista canónica de candidatos de un distrito.
// Si cualquiera de las tres fuentes no tiene datos para el distrito
// devuelve una lista vacía: es un "sin datos" válido, no un error.
// La salida queda ordenada por votos descendentes (id como desempate).
func Reconciliar(
	distrito string,
	padron *sources.PadronSnapshot,
	metadatos *sources.MetadatosSnapshot,
	escrutinio *sources.EscrutinioSnapshot,
	op Opciones,
) []Candidato {
	filas := padron.Candidatos(distrito)
	feed, ok := metadatos.Distrito(distrito)
	if escrutinio == nil || len(filas) == 0 || !ok || len(feed.Candidatos) == 0 || len(escrutinio.Votos) == 0 {
		return nil
	}

	mapeo := MapeoLetras(feed)

	// El padrón se normaliza una sola vez para todas las consultas
	nombresPadron := make([]string, len(filas))
	for i, fila := range filas {
		nombresPadron[i] = normalization.NormalizarNombre(fila.Nombre)
	}

	candidatos := make([]Candidato, 0, len(escrutinio.Votos))

	for xmlID, votos := range escrutinio.Votos {
		apiID, ok := mapeo[xmlID]
		if !ok {
			// sin mapeo posicional: el id del escrutinio puede ser
			// directamente una clave del feed
			if _, directo := feed.Candidatos[xmlID]; directo {
				apiID = xmlID
			} else {
				continue
			}
		}

		datos, ok := feed.Candidatos[apiID]
		if !ok {
			continue
		}

		match := normalization.MejorCandidato(normalization.NormalizarNombre(datos.Nombre), nombresPadron)

		candidato := Candidato{
			IDAPI:        apiID,
			Votos:        votos,
			Nombre:       datos.Nombre,
			Partido:      datos.Partido,
			Sexo:         datos.Sexo,
			MatchQuality: match.Score,
		}

		if match.Aceptado() {
			fila := filas[match.Indice]
			candidato.PactoLetra = fila.PactoLetra
			candidato.Cupo = fila.Cupo
			candidato.Zona = fila.Zona
			candidato.MatchExitoso = true
			if fila.IDFoto != "" && op.FotoBaseURL != "" {
				candidato.Foto = fmt.Sprintf(op.FotoBaseURL, fila.IDFoto)
			}
		} else {
			candidato.PactoLetra = PactoSinMatch
			candidato.MatchExitoso = false
		}
		candidato.PactoNombre = op.nombrePacto(candidato.PactoLetra)

		candidatos = append(candidatos, candidato)
	}

	// Orden reproducible: votos descendentes, id como desempate
	sort.Slice(candidatos, func(i, j int) bool {
		if candidatos[i].Votos != candidatos[j].Votos {
			return candidatos[i].Votos > candidatos[j].Votos
		}
		return candidatos[i].IDAPI < candidatos[j].IDAPI
	})

	return candidatos
}
