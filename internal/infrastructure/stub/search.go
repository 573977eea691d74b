package stub

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold normaliza un término de búsqueda: minúsculas y sin diacríticos, de
// modo que "Árbol" coincida con la consulta "arbol".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// matches indica si el texto contiene el término, ambos normalizados.
func matches(text, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(fold(text), fold(term))
}
