// Package sources implementa el colaborador de fuentes externas: descarga y
// parseo de las tres fuentes electorales (padrón CSV, metadatos JSON y
// escrutinio XML por distrito). Las instantáneas que produce son inmutables
// y seguras para lectores concurrentes.
package sources

import (
	"context"
	"errors"
)

// ErrSinDatos la fuente no tiene filas para el distrito pedido.
// Es un "no encontrado", no una falla.
var ErrSinDatos = errors.New("la fuente no tiene datos para el distrito")

// CandidatoPadron fila del padrón de candidatos (fuente CSV)
type CandidatoPadron struct {
	Distrito   string `json:"distrito"`
	PactoLetra string `json:"pacto_letra"`
	Partido    string `json:"party"`
	Cupo       string `json:"cupo"`
	ID         string `json:"id"`
	Nombre     string `json:"name"`
	Sexo       string `json:"sexo"`
	Zona       string `json:"zona"`
	IDFoto     string `json:"id_foto"`
}

// PadronSnapshot instantánea inmutable del padrón, agrupada por distrito
type PadronSnapshot struct {
	PorDistrito map[string][]CandidatoPadron
}

// Candidatos devuelve las filas del padrón para un distrito, o nil
func (p *PadronSnapshot) Candidatos(distrito string) []CandidatoPadron {
	if p == nil {
		return nil
	}
	return p.PorDistrito[distrito]
}

// CandidatoFeed datos de un candidato en el feed de metadatos
type CandidatoFeed struct {
	Nombre  string `json:"n"`
	Partido string `json:"c"`
	Sexo    string `json:"s"`
}

// DistritoFeed metadatos de un distrito: mapa id-feed → candidato y la
// lista ordenada que define el mapeo posicional de letras
type DistritoFeed struct {
	Candidatos map[string]CandidatoFeed `json:"c"`
	Orden      []CandidatoFeed          `json:"h"`
}

// MetadatosSnapshot instantánea inmutable del feed de metadatos
type MetadatosSnapshot struct {
	Distritos map[string]DistritoFeed
}

// Distrito devuelve los metadatos de un distrito y si existen
func (m *MetadatosSnapshot) Distrito(distrito string) (DistritoFeed, bool) {
	if m == nil {
		return DistritoFeed{}, false
	}
	d, ok := m.Distritos[distrito]
	return d, ok
}

// EscrutinioSnapshot instantánea inmutable del escrutinio de un distrito:
// votos por id-feed más los votos blancos y nulos
type EscrutinioSnapshot struct {
	Distrito     string
	Votos        map[string]int
	VotosBlancos int
	VotosNulos   int
}

// Provider colaborador de fuentes. Cada método devuelve una instantánea o
// falla con un error de descarga; el core no reintenta ni cachea.
type Provider interface {
	Padron(ctx context.Context) (*PadronSnapshot, error)
	Metadatos(ctx context.Context) (*MetadatosSnapshot, error)
	Escrutinio(ctx context.Context, distrito string) (*EscrutinioSnapshot, error)
}
