// Package texto contiene helpers de normalización para búsquedas:
// los nombres de beneficiarios y proveedores llegan con tildes y
// mayúsculas inconsistentes desde planillas y cargas manuales.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar devuelve el texto en minúsculas, sin tildes y sin espacios sobrantes.
// "  Pérez, JOSÉ " -> "perez, jose".
func Normalizar(s string) string {
	limpio, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		limpio = s
	}
	return strings.ToLower(strings.TrimSpace(limpio))
}

// Contiene informa si haystack contiene needle ignorando tildes y mayúsculas.
func Contiene(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Normalizar(haystack), Normalizar(needle))
}
