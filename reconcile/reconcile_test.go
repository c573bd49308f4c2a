package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"electoral/sources"
)

func padronPrueba() *sources.PadronSnapshot {
	return &sources.PadronSnapshot{
		PorDistrito: map[string][]sources.CandidatoPadron{
			"6001": {
				{Distrito: "6001", PactoLetra: "A", Partido: "Partido Uno", Cupo: "LISTA A", ID: "101", Nombre: "María José Pérez Soto", Sexo: "M", Zona: "norte", IDFoto: "f101"},
				{Distrito: "6001", PactoLetra: "B", Partido: "Partido Dos", Cupo: "LISTA B", ID: "102", Nombre: "Juan Rojas Díaz", Sexo: "H", Zona: "norte"},
			},
		},
	}
}

func metadatosPrueba() *sources.MetadatosSnapshot {
	return &sources.MetadatosSnapshot{
		Distritos: map[string]sources.DistritoFeed{
			"6001": {
				Candidatos: map[string]sources.CandidatoFeed{
					"9001": {Nombre: "Maria Jose Perez Soto", Partido: "P1", Sexo: "M"},
					"9002": {Nombre: "Juan Rojas Diaz", Partido: "P2", Sexo: "H"},
					"9003": {Nombre: "Desconocido Total Ajeno", Partido: "P9", Sexo: "H"},
				},
				Orden: []sources.CandidatoFeed{
					{Nombre: "Maria Jose Perez Soto"},
					{Nombre: "Juan Rojas Diaz"},
					{Nombre: "Desconocido Total Ajeno"},
				},
			},
		},
	}
}

func escrutinioPrueba() *sources.EscrutinioSnapshot {
	return &sources.EscrutinioSnapshot{
		Distrito:     "6001",
		Votos:        map[string]int{"A": 1500, "B": 900, "C": 300},
		VotosBlancos: 100,
		VotosNulos:   50,
	}
}

func opcionesPrueba() Opciones {
	return Opciones{FotoBaseURL: "https://fotos.example/%s.jpg"}
}

// TestMapeoLetras verifica el mapeo posicional letra → id-feed
func TestMapeoLetras(t *testing.T) {
	feed, _ := metadatosPrueba().Distrito("6001")
	mapeo := MapeoLetras(feed)

	assert.Equal(t, "9001", mapeo["A"])
	assert.Equal(t, "9002", mapeo["B"])
	assert.Equal(t, "9003", mapeo["C"])
	assert.Len(t, mapeo, 3)
}

// TestMapeoLetras_NombreSinClave un nombre del orden que no existe en el
// mapa simplemente no genera entrada
func TestMapeoLetras_NombreSinClave(t *testing.T) {
	feed := sources.DistritoFeed{
		Candidatos: map[string]sources.CandidatoFeed{
			"9001": {Nombre: "Uno"},
		},
		Orden: []sources.CandidatoFeed{{Nombre: "Uno"}, {Nombre: "Fantasma"}},
	}

	mapeo := MapeoLetras(feed)
	assert.Equal(t, map[string]string{"A": "9001"}, mapeo)
}

// TestMapeoLetras_NombreDuplicado dos ids del feed con el mismo nombre
// resuelven siempre al id menor, en cada corrida
func TestMapeoLetras_NombreDuplicado(t *testing.T) {
	feed := sources.DistritoFeed{
		Candidatos: map[string]sources.CandidatoFeed{
			"9002": {Nombre: "Juan Perez"},
			"9001": {Nombre: "Juan Perez"},
			"9003": {Nombre: "Ana Silva"},
		},
		Orden: []sources.CandidatoFeed{{Nombre: "Juan Perez"}, {Nombre: "Ana Silva"}},
	}

	for i := 0; i < 500; i++ {
		mapeo := MapeoLetras(feed)
		require.Equal(t, "9001", mapeo["A"])
		require.Equal(t, "9003", mapeo["B"])
	}
}

// TestReconciliar camino feliz: match por nombre y copia de datos del padrón
func TestReconciliar(t *testing.T) {
	candidatos := Reconciliar("6001", padronPrueba(), metadatosPrueba(), escrutinioPrueba(), opcionesPrueba())
	require.Len(t, candidatos, 3)

	// orden por votos descendentes
	assert.Equal(t, "9001", candidatos[0].IDAPI)
	assert.Equal(t, 1500, candidatos[0].Votos)
	assert.Equal(t, "9002", candidatos[1].IDAPI)
	assert.Equal(t, "9003", candidatos[2].IDAPI)

	primera := candidatos[0]
	assert.True(t, primera.MatchExitoso)
	assert.GreaterOrEqual(t, primera.MatchQuality, 80.0)
	assert.Equal(t, "A", primera.PactoLetra)
	assert.Equal(t, "LISTA A", primera.Cupo)
	assert.Equal(t, "norte", primera.Zona)
	assert.Equal(t, "https://fotos.example/f101.jpg", primera.Foto)
	assert.Equal(t, "P1", primera.Partido) // partido viene del feed
	assert.Equal(t, "M", primera.Sexo)

	segunda := candidatos[1]
	assert.True(t, segunda.MatchExitoso)
	assert.Empty(t, segunda.Foto) // el padrón no trae id de foto
}

// TestReconciliar_SinMatch el candidato sin correlato en el padrón queda
// con pacto "X" y match_exitoso falso
func TestReconciliar_SinMatch(t *testing.T) {
	candidatos := Reconciliar("6001", padronPrueba(), metadatosPrueba(), escrutinioPrueba(), opcionesPrueba())
	require.Len(t, candidatos, 3)

	ajeno := candidatos[2]
	assert.Equal(t, "9003", ajeno.IDAPI)
	assert.False(t, ajeno.MatchExitoso)
	assert.Equal(t, PactoSinMatch, ajeno.PactoLetra)
	assert.Equal(t, "Pacto X", ajeno.PactoNombre)
	assert.Empty(t, ajeno.Cupo)
	assert.Empty(t, ajeno.Foto)
}

// TestReconciliar_IDDirecto un id del escrutinio que no está en el mapeo
// posicional pero sí como clave del feed se usa directo
func TestReconciliar_IDDirecto(t *testing.T) {
	escrutinio := &sources.EscrutinioSnapshot{
		Distrito: "6001",
		Votos:    map[string]int{"9001": 700},
	}

	candidatos := Reconciliar("6001", padronPrueba(), metadatosPrueba(), escrutinio, opcionesPrueba())
	require.Len(t, candidatos, 1)
	assert.Equal(t, "9001", candidatos[0].IDAPI)
	assert.Equal(t, 700, candidatos[0].Votos)
}

// TestReconciliar_IDIrresoluble ids sin mapeo ni clave directa se descartan
func TestReconciliar_IDIrresoluble(t *testing.T) {
	escrutinio := &sources.EscrutinioSnapshot{
		Distrito: "6001",
		Votos:    map[string]int{"Z": 500},
	}

	candidatos := Reconciliar("6001", padronPrueba(), metadatosPrueba(), escrutinio, opcionesPrueba())
	assert.Empty(t, candidatos)
}

// TestReconciliar_FuentesVacias cualquier fuente vacía produce lista vacía
func TestReconciliar_FuentesVacias(t *testing.T) {
	padron := padronPrueba()
	metadatos := metadatosPrueba()
	escrutinio := escrutinioPrueba()

	vacioPadron := &sources.PadronSnapshot{PorDistrito: map[string][]sources.CandidatoPadron{}}
	vacioMetadatos := &sources.MetadatosSnapshot{Distritos: map[string]sources.DistritoFeed{}}
	vacioEscrutinio := &sources.EscrutinioSnapshot{Distrito: "6001", Votos: map[string]int{}}

	assert.Empty(t, Reconciliar("6001", vacioPadron, metadatos, escrutinio, opcionesPrueba()))
	assert.Empty(t, Reconciliar("6001", padron, vacioMetadatos, escrutinio, opcionesPrueba()))
	assert.Empty(t, Reconciliar("6001", padron, metadatos, vacioEscrutinio, opcionesPrueba()))
	assert.Empty(t, Reconciliar("6001", padron, metadatos, nil, opcionesPrueba()))
	assert.Empty(t, Reconciliar("6099", padron, metadatos, escrutinio, opcionesPrueba()))
}

// TestReconciliar_Deterministico dos corridas sobre los mismos snapshots
// producen resultados idénticos
func TestReconciliar_Deterministico(t *testing.T) {
	a := Reconciliar("6001", padronPrueba(), metadatosPrueba(), escrutinioPrueba(), opcionesPrueba())
	b := Reconciliar("6001", padronPrueba(), metadatosPrueba(), escrutinioPrueba(), opcionesPrueba())
	assert.Equal(t, a, b)
}

// TestReconciliar_NombresPactos el resolutor de nombres de pacto se aplica
func TestReconciliar_NombresPactos(t *testing.T) {
	op := opcionesPrueba()
	op.NombrePacto = func(letra string) string { return "Pacto [" + letra + "]" }

	candidatos := Reconciliar("6001", padronPrueba(), metadatosPrueba(), escrutinioPrueba(), op)
	require.NotEmpty(t, candidatos)
	assert.Equal(t, "Pacto [A]", candidatos[0].PactoNombre)
}
