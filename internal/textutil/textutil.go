// Package textutil provides Polish-text normalization and best-effort
// numeric coercion shared by every parser and comparator in the engine.
package textutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters (NFKD so "m²" becomes "m2"), drops
// combining marks, then recomposes. Note "ł" has no combining form and
// survives unchanged.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	reNumber    = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reMillions  = regexp.MustCompile(`mln|mili|m\b`)
	reThousands = regexp.MustCompile(`tys|k\b`)
)

// Normalize strips diacritics, folds case and trims surrounding whitespace.
// It is idempotent, and Normalize("Żoliborz") == Normalize("zoliborz").
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(strings.ToLower(out))
}

// ToInt extracts a number from free text, tolerating thousands separators
// (space, NBSP) and decimal commas, and expanding the colloquial unit
// suffixes "mln"/"mili" (×1e6) and "tys"/"k" (×1e3). The result is rounded
// to the nearest integer. Unrecoverable noise yields ok=false, never an
// error.
func ToInt(s string) (int, bool) {
	c := strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(Normalize(s))
	m := reNumber.FindString(c)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	switch {
	case reMillions.MatchString(c):
		v *= 1_000_000
	case reThousands.MatchString(c):
		v *= 1_000
	}
	return int(math.Round(v)), true
}

// ToFloat coerces free text to a float, tolerating thousands separators
// (space, NBSP) and decimal commas. Unparseable input yields ok=false.
func ToFloat(s string) (float64, bool) {
	c := strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(strings.TrimSpace(s))
	if c == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(c, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var (
	truthyWords = map[string]struct{}{
		"t": {}, "true": {}, "tak": {}, "yes": {}, "y": {}, "1": {},
		"z": {}, "jest": {}, "ma": {}, "posiada": {}, "with": {},
		"z balkonem": {}, "z winda": {},
	}
	falsyWords = map[string]struct{}{
		"f": {}, "false": {}, "nie": {}, "no": {}, "n": {}, "0": {},
		"bez": {}, "brak": {}, "bez balkonu": {}, "bez windy": {},
	}
)

// ParseBool maps the colloquial yes/no vocabulary found in listing data
// ("tak", "z balkonem", "brak", ...) onto a tri-state: the third state,
// ok=false, means the text carries no recognizable answer.
func ParseBool(s string) (val, ok bool) {
	n := Normalize(s)
	if _, hit := truthyWords[n]; hit {
		return true, true
	}
	if _, hit := falsyWords[n]; hit {
		return false, true
	}
	if strings.Contains(n, "bez") {
		return false, true
	}
	if strings.Contains(n, "z ") || strings.Contains(n, "ma ") {
		return true, true
	}
	return false, false
}

// FormatPLN renders a price as "1 234 567 zł".
func FormatPLN(v float64) string {
	return groupThousands(int64(math.Round(v))) + " zł"
}

// FormatArea renders an area as "70 m²".
func FormatArea(v float64) string {
	return fmt.Sprintf("%.0f m²", v)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
