// Package query turns free-text Polish housing queries into structured
// filter sets: numeric ranges, location terms, amenity flags, persona
// defaults and sort intent.
package query

import (
	"regexp"
	"strings"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/textutil"
)

// numBody matches a number with optional thousands separators (space, NBSP)
// and decimal comma/dot.
const numBody = `[0-9][0-9\s\x{00A0}.,]*`

var (
	reDashRange = regexp.MustCompile(`(` + numBody + `)\s*[-–—]\s*(` + numBody + `)`)
	reOdDoRange = regexp.MustCompile(`od\s*(` + numBody + `)\s*do\s*(` + numBody + `)`)
	reOdOnly    = regexp.MustCompile(`od\s*(` + numBody + `)`)
	reDoOnly    = regexp.MustCompile(`do\s*(` + numBody + `)`)
	reBareNum   = regexp.MustCompile(numBody)

	// Naming a single price with a unit colloquially means "up to". A unit
	// token is required so floor phrases like "do 3 pietra" are not read as
	// price caps.
	rePriceUpTo = regexp.MustCompile(`do\s*(` + numBody + `)\s*(mln|mili|tys|k|zł|pln)`)
	rePriceUnit = regexp.MustCompile(`(` + numBody + `)\s*(mln|mili|tys|k|zł|pln)`)

	reAreaSpan  = regexp.MustCompile(`(?:m2|m²|metraz|metr).*`)
	reRoomsSpan = regexp.MustCompile(`poko(?:j|je|i).*`)
	reFloorSpan = regexp.MustCompile(`pietr.*`)
)

// ParseRange extracts up to two numeric bounds from a text fragment.
// Recognition priority, first match wins: hyphen range, "od X do Y",
// "od X", "do X", bare number (degenerate range). No match yields nil.
func ParseRange(text string) *model.Range {
	t := textutil.Normalize(text)
	if m := reDashRange.FindStringSubmatch(t); m != nil {
		return rangeFromPair(m[1], m[2])
	}
	if m := reOdDoRange.FindStringSubmatch(t); m != nil {
		return rangeFromPair(m[1], m[2])
	}
	if m := reOdOnly.FindStringSubmatch(t); m != nil {
		return model.NewRange(numPtr(m[1]), nil)
	}
	if m := reDoOnly.FindStringSubmatch(t); m != nil {
		return model.NewRange(nil, numPtr(m[1]))
	}
	if m := reBareNum.FindString(t); m != "" {
		v := numPtr(m)
		return model.NewRange(v, v)
	}
	return nil
}

// ParsePriceRange extracts a price constraint, expanding unit suffixes
// ("800k", "1.2 mln"). Both the "do <num>[unit]" phrasing and a bare
// "<num><unit>" token produce an upper-bound-only range; anything else
// yields nil.
func ParsePriceRange(text string) *model.Range {
	t := textutil.Normalize(text)
	if m := rePriceUpTo.FindStringSubmatch(t); m != nil {
		return model.NewRange(nil, numPtr(m[1]+m[2]))
	}
	if m := rePriceUnit.FindStringSubmatch(t); m != nil {
		return model.NewRange(nil, numPtr(m[1]+m[2]))
	}
	return nil
}

// ParseAreaRange parses the span from an area keyword onward, falling back
// to the whole text when no keyword is present.
func ParseAreaRange(text string) *model.Range {
	t := textutil.Normalize(text)
	if m := reAreaSpan.FindString(t); m != "" {
		return ParseRange(m)
	}
	return ParseRange(t)
}

// ParseRoomsRange parses the span from the room keyword stem onward.
func ParseRoomsRange(text string) *model.Range {
	t := textutil.Normalize(text)
	if m := reRoomsSpan.FindString(t); m != "" {
		return ParseRange(m)
	}
	return ParseRange(t)
}

// ParseFloorRange parses a floor constraint. "parter" (ground floor) maps
// directly to the degenerate range [0,0].
func ParseFloorRange(text string) *model.Range {
	t := textutil.Normalize(text)
	if strings.Contains(t, "parter") {
		return model.RangeOf(0, 0)
	}
	if m := reFloorSpan.FindString(t); m != "" {
		return ParseRange(m)
	}
	return ParseRange(t)
}

func numPtr(s string) *float64 {
	v, ok := textutil.ToInt(s)
	if !ok {
		return nil
	}
	f := float64(v)
	return &f
}

func rangeFromPair(a, b string) *model.Range {
	return model.NewRange(numPtr(a), numPtr(b))
}
