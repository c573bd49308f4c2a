package normalization

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

// TestMatchNombre_Exacto un nombre idéntico debe dar score 100
func TestMatchNombre_Exacto(t *testing.T) {
	nombres := []string{"Juan Soto", "María López"}

	r := MatchNombre("María López", nombres)
	if r.Indice != 1 {
		t.Fatalf("Indice = %d, se esperaba 1", r.Indice)
	}
	if r.Score != 100 {
		t.Errorf("Score = %f, se esperaba 100", r.Score)
	}
	if !r.Aceptado() {
		t.Error("un match exacto debe estar aceptado")
	}
}

// TestMatchNombre_Diacriticos la consulta sin tildes debe encontrar el
// nombre con tildes con confianza alta
func TestMatchNombre_Diacriticos(t *testing.T) {
	nombres := []string{"José Pérez", "Juan Soto"}

	r := MatchNombre("Jose Perez", nombres)
	if r.Indice != 0 {
		t.Fatalf("Indice = %d, se esperaba 0 (José Pérez)", r.Indice)
	}
	if r.Score < ScoreAceptacion {
		t.Errorf("Score = %f, se esperaba >= %f", r.Score, ScoreAceptacion)
	}
}

// TestMatchNombre_OrdenDePalabras apellido-nombre vs nombre-apellido
func TestMatchNombre_OrdenDePalabras(t *testing.T) {
	nombres := []string{"Pérez Castro José Manuel"}

	r := MatchNombre("José Manuel Pérez Castro", nombres)
	if !r.Aceptado() {
		t.Errorf("se esperaba match aceptado, Score = %f", r.Score)
	}
}

// TestMatchNombre_Vacios consulta o padrón vacíos devuelven sin match
func TestMatchNombre_Vacios(t *testing.T) {
	if r := MatchNombre("", []string{"Juan Soto"}); r.Indice != -1 || r.Score != 0 {
		t.Errorf("consulta vacía: %+v", r)
	}
	if r := MatchNombre("Juan Soto", nil); r.Indice != -1 || r.Score != 0 {
		t.Errorf("padrón vacío: %+v", r)
	}
	if r := MatchNombre("sr sra", []string{"Juan Soto"}); r.Indice != -1 {
		t.Errorf("consulta que normaliza a vacío: %+v", r)
	}
}

// TestMatchNombre_BajoPiso nombres sin relación no superan el piso
func TestMatchNombre_BajoPiso(t *testing.T) {
	r := MatchNombre("Wxzk Qjv", []string{"Bartolomé de las Casas Gutiérrez"})
	if r.Indice != -1 {
		t.Errorf("se esperaba sin match, got Indice = %d Score = %f", r.Indice, r.Score)
	}
}

// TestMatchNombre_Diagnostico un parecido medio queda entre el piso y el
// umbral: se informa pero no se acepta
func TestMatchNombre_Diagnostico(t *testing.T) {
	r := MatchNombre("Juan Pérez", []string{"Juan Pereira Montes"})
	if r.Indice == -1 {
		t.Skip("el score quedó bajo el piso con estos datos")
	}
	if r.Aceptado() && r.Score < ScoreAceptacion {
		t.Error("Aceptado() inconsistente con el umbral")
	}
}

// TestRatioPonderado_Simetrico la similitud no depende del orden de argumentos
func TestRatioPonderado_Simetrico(t *testing.T) {
	pares := [][2]string{
		{"jose perez", "perez jose"},
		{"maria lopez", "maria lopez soto"},
		{"ana", "anna"},
	}
	for _, p := range pares {
		a := RatioPonderado(p[0], p[1])
		b := RatioPonderado(p[1], p[0])
		if a != b {
			t.Errorf("RatioPonderado(%q, %q) = %f pero al revés %f", p[0], p[1], a, b)
		}
	}
}

// TestMatchNombre_PadronGrande el mejor candidato gana sobre un padrón
// numeroso de nombres generados
func TestMatchNombre_PadronGrande(t *testing.T) {
	faker := gofakeit.New(42)

	nombres := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		nombres = append(nombres, fmt.Sprintf("%s %s", faker.FirstName(), faker.LastName()))
	}
	objetivo := "Valentina Riquelme Ñuñez"
	nombres = append(nombres, objetivo)

	r := MatchNombre("valentina riquelme nunez", nombres)
	if r.Indice != len(nombres)-1 {
		t.Fatalf("Indice = %d, se esperaba %d", r.Indice, len(nombres)-1)
	}
	if !r.Aceptado() {
		t.Errorf("Score = %f, se esperaba >= %f", r.Score, ScoreAceptacion)
	}
}

// BenchmarkMatchNombre mide el costo de buscar sobre un padrón típico
func BenchmarkMatchNombre(b *testing.B) {
	faker := gofakeit.New(7)
	nombres := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		nombres = append(nombres, fmt.Sprintf("%s %s %s", faker.FirstName(), faker.LastName(), faker.LastName()))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MatchNombre("Camila Andrea Rojas Fuentes", nombres)
	}
}
