package sources

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Índices de columnas del CSV del padrón (sin encabezado)
const (
	colZona     = 0
	colDistrito = 1
	colPacto    = 2
	colPartido  = 3
	colCupo     = 4
	colID       = 5
	colNombre   = 6
	colSexo     = 9
	colIDFoto   = 21 // opcional: filas antiguas no la traen
)

// ParsePadronCSV parsea el CSV del padrón y agrupa las filas por distrito
func ParsePadronCSV(r io.Reader) (*PadronSnapshot, error) {
	lector := csv.NewReader(r)
	lector.FieldsPerRecord = -1 // las filas no tienen largo uniforme

	snapshot := &PadronSnapshot{PorDistrito: make(map[string][]CandidatoPadron)}

	for {
		fila, err := lector.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fila inválida en el CSV del padrón: %w", err)
		}
		if len(fila) <= colSexo {
			continue
		}

		candidato := CandidatoPadron{
			Zona:       strings.TrimSpace(fila[colZona]),
			Distrito:   strings.TrimSpace(fila[colDistrito]),
			PactoLetra: strings.TrimSpace(fila[colPacto]),
			Partido:    strings.TrimSpace(fila[colPartido]),
			Cupo:       strings.TrimSpace(fila[colCupo]),
			ID:         strings.TrimSpace(fila[colID]),
			Nombre:     strings.TrimSpace(fila[colNombre]),
			Sexo:       strings.TrimSpace(fila[colSexo]),
		}
		if len(fila) > colIDFoto {
			candidato.IDFoto = strings.TrimSpace(fila[colIDFoto])
		}
		if candidato.Distrito == "" {
			continue
		}

		snapshot.PorDistrito[candidato.Distrito] = append(snapshot.PorDistrito[candidato.Distrito], candidato)
	}

	return snapshot, nil
}

// ParseMetadatosJSON parsea el feed de metadatos. El payload envuelve los
// distritos bajo la clave "dbdp".
func ParseMetadatosJSON(r io.Reader) (*MetadatosSnapshot, error) {
	var payload struct {
		DBDP map[string]DistritoFeed `json:"dbdp"`
	}

	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("JSON de metadatos inválido: %w", err)
	}
	if payload.DBDP == nil {
		payload.DBDP = make(map[string]DistritoFeed)
	}

	return &MetadatosSnapshot{Distritos: payload.DBDP}, nil
}

// filaEscrutinio una fila ROW del XML de escrutinio
type filaEscrutinio struct {
	Ambito string `xml:"AMBITO"`
	Votos  string `xml:"VOTOS"`
}

// ParseEscrutinioXML parsea el XML de escrutinio de un distrito. Los
// ámbitos "B" y "N" son los votos blancos y nulos; el resto son ids de
// candidatos en el feed.
func ParseEscrutinioXML(r io.Reader, distrito string) (*EscrutinioSnapshot, error) {
	var doc struct {
		Filas []filaEscrutinio `xml:"ROW"`
	}

	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("XML de escrutinio inválido para %s: %w", distrito, err)
	}

	snapshot := &EscrutinioSnapshot{
		Distrito: distrito,
		Votos:    make(map[string]int),
	}

	for _, fila := range doc.Filas {
		votos, err := strconv.Atoi(strings.TrimSpace(fila.Votos))
		if err != nil {
			return nil, fmt.Errorf("votos no numéricos en ámbito %q: %w", fila.Ambito, err)
		}

		switch strings.TrimSpace(fila.Ambito) {
		case "B":
			snapshot.VotosBlancos = votos
		case "N":
			snapshot.VotosNulos = votos
		default:
			snapshot.Votos[strings.TrimSpace(fila.Ambito)] = votos
		}
	}

	return snapshot, nil
}
