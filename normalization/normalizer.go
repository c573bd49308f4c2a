package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos descompone (NFD), elimina las marcas combinantes y
// recompone (NFC). Cubre á é í ó ú ü y también ñ→n.
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// honorificos tratamientos que se eliminan antes de comparar nombres
var honorificos = map[string]bool{
	"sr":   true,
	"sra":  true,
	"dr":   true,
	"dra":  true,
	"don":  true,
	"dona": true, // "doña" ya sin diacríticos
}

// NormalizarNombre lleva un nombre a su forma canónica de comparación:
// minúsculas, sin diacríticos, sin tratamientos honoríficos y con espacios
// simples. Es una función total: nunca falla y no tiene efectos secundarios.
func NormalizarNombre(nombre string) string {
	nombre = strings.ToLower(strings.TrimSpace(nombre))
	if nombre == "" {
		return ""
	}

	if plano, _, err := transform.String(quitarDiacriticos, nombre); err == nil {
		nombre = plano
	}

	palabras := strings.Fields(nombre)
	resultado := palabras[:0]
	for _, p := range palabras {
		if honorificos[p] {
			continue
		}
		resultado = append(resultado, p)
	}

	return strings.Join(resultado, " ")
}
