package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks left behind by NFD decomposition. It is
// stateless and safe to share; the chain built around it is not, so Normalize
// builds a fresh chain per call.
var stripMarks = runes.Remove(runes.In(unicode.Mn))

// Normalize makes text comparable the way the storefront compares it:
// decompose accented characters, drop the combining marks, lowercase and trim.
// "  Teléfono " and "telefono" normalize to the same string.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, stripMarks, norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
