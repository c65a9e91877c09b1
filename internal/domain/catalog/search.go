package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos descompone a NFD, elimina marcas no espaciadas (tildes,
// diéresis) y recompone. "Camisón" y "camison" quedan iguales.
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar pasa a minúsculas y elimina diacríticos del español.
func Normalizar(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizarTerminos divide el término de búsqueda en palabras normalizadas.
// Con más de una palabra la semántica es conjuntiva: todas deben coincidir,
// no basta una (el adaptador de persistencia materializa el AND).
func NormalizarTerminos(busqueda string) []string {
	busqueda = Normalizar(busqueda)
	if busqueda == "" {
		return nil
	}
	return strings.Fields(busqueda)
}
