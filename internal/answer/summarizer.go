// Package answer turns ranked results into a Polish-language reply. The
// deterministic summarizer is the baseline and is always available; an LLM
// generator may replace it when configured, but its failure modes never
// reach the caller.
package answer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/textutil"
)

// EmptyResultsMessage is the fixed reply for an empty result set.
const EmptyResultsMessage = "Nie znalazłem ofert spełniających te kryteria. " +
	"Spróbuj poluzować budżet lub zakres metrażu, albo usuń jeden z filtrów (np. balkon/winda)."

// Summarize renders a deterministic summary: a header restating the active
// constraints, up to topK listing lines, a min-max statistics line and a
// single refinement tip.
func Summarize(fs *model.FilterSet, results []model.ScoredListing, topK int) string {
	if len(results) == 0 {
		return EmptyResultsMessage
	}
	if topK <= 0 {
		topK = 3
	}

	lines := []string{"**" + header(fs) + "**"}
	for i, r := range results {
		if i >= topK {
			break
		}
		lines = append(lines, FormatRowShort(r.Listing))
	}
	if stats := statsLine(results); stats != "" {
		lines = append(lines, stats)
	}
	lines = append(lines, "💡 Wskazówka: "+refinementTip(fs, results))
	return strings.Join(lines, "\n")
}

// header restates the active constraints, pipe-separated, in a fixed order.
func header(fs *model.FilterSet) string {
	var parts []string
	if fs.City != "" {
		parts = append(parts, fs.City)
	}
	if fs.District != "" {
		parts = append(parts, fs.District)
	}
	if s := humanRange(fs.Area, "m²"); s != "" {
		parts = append(parts, s)
	}
	if s := humanRange(fs.Rooms, "pokoje"); s != "" {
		parts = append(parts, s)
	}
	if s := humanRange(fs.Price, "zł"); s != "" {
		parts = append(parts, s)
	}
	if s := humanRange(fs.Floor, "piętro"); s != "" {
		parts = append(parts, s)
	}
	switch fs.Balcony {
	case model.TriTrue:
		parts = append(parts, "z balkonem")
	case model.TriFalse:
		parts = append(parts, "bez balkonu")
	}
	switch fs.Elevator {
	case model.TriTrue:
		parts = append(parts, "z windą")
	case model.TriFalse:
		parts = append(parts, "bez windy")
	}
	if len(parts) == 0 {
		return "Dopasowane oferty"
	}
	return strings.Join(parts, " | ")
}

// FormatRowShort renders one listing as a single markdown bullet.
func FormatRowShort(l model.Listing) string {
	var locParts []string
	if l.City != "" {
		locParts = append(locParts, l.City)
	}
	if l.District != "" {
		locParts = append(locParts, l.District)
	}
	head := strings.Join(locParts, " • ")
	if head == "" {
		head = fmt.Sprintf("ID %d", l.ID)
	}

	area := "-"
	if l.AreaM2 != nil {
		area = textutil.FormatArea(*l.AreaM2)
	}
	price := "-"
	if l.Price != nil {
		price = textutil.FormatPLN(*l.Price)
	}

	var extras []string
	if l.Rooms != nil {
		extras = append(extras, fmt.Sprintf("%d pokoje", *l.Rooms))
	}
	if l.Floor != nil {
		extras = append(extras, fmt.Sprintf("piętro %d", *l.Floor))
	}
	if l.HasBalcony.Known() {
		if l.HasBalcony.Bool() {
			extras = append(extras, "balkon")
		} else {
			extras = append(extras, "bez balkonu")
		}
	}
	if l.HasElevator.Known() {
		if l.HasElevator.Bool() {
			extras = append(extras, "winda")
		} else {
			extras = append(extras, "bez windy")
		}
	}

	line := fmt.Sprintf("- **%s** — %s, %s", head, area, price)
	if l.PricePerM2 != nil {
		line += " • " + textutil.FormatPLN(*l.PricePerM2) + "/m²"
	}
	if len(extras) > 0 {
		line += " (" + strings.Join(extras, ", ") + ")"
	}
	return line
}

// humanRange renders a range the way a Polish reader would write it. Zero
// bounds read as open, so a ground-floor-only range produces nothing.
func humanRange(r *model.Range, unit string) string {
	if r == nil {
		return ""
	}
	lo := bound(r.Lo)
	hi := bound(r.Hi)
	switch {
	case lo != "" && hi != "" && lo == hi:
		return lo + " " + unit
	case lo != "" && hi != "":
		return lo + "–" + hi + " " + unit
	case lo != "":
		return "od " + lo + " " + unit
	case hi != "":
		return "do " + hi + " " + unit
	}
	return ""
}

func bound(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func statsLine(results []model.ScoredListing) string {
	var stats []string
	if lo, hi, ok := minMax(results, func(l model.Listing) *float64 { return l.Price }); ok {
		stats = append(stats, fmt.Sprintf("cena: %s – %s", textutil.FormatPLN(lo), textutil.FormatPLN(hi)))
	}
	if lo, hi, ok := minMax(results, func(l model.Listing) *float64 { return l.AreaM2 }); ok {
		stats = append(stats, fmt.Sprintf("metraż: %.0f-%.0f m²", lo, hi))
	}
	if len(stats) == 0 {
		return ""
	}
	return "Zakres w wynikach: " + strings.Join(stats, " • ")
}

func minMax(results []model.ScoredListing, get func(model.Listing) *float64) (lo, hi float64, ok bool) {
	for _, r := range results {
		v := get(r.Listing)
		if v == nil {
			continue
		}
		if !ok {
			lo, hi, ok = *v, *v, true
			continue
		}
		if *v < lo {
			lo = *v
		}
		if *v > hi {
			hi = *v
		}
	}
	return lo, hi, ok
}

// refinementTip picks exactly one suggestion by fixed priority.
func refinementTip(fs *model.FilterSet, results []model.ScoredListing) string {
	if len(results) > 5 && fs.Sort != model.SortPriceAsc {
		return "możesz posortować po cenie (najtańsze) – wpisz *najtańsze*"
	}
	if fs.Price != nil {
		lo := 0.0
		if fs.Price.Lo != nil {
			lo = *fs.Price.Lo
		}
		if minP, _, ok := minMax(results, func(l model.Listing) *float64 { return l.Price }); ok && minP > lo {
			return "podnieś górny limit ceny albo usuń filtr ceny"
		}
	}
	if fs.Area != nil && fs.Area.Lo != nil {
		if _, maxA, ok := minMax(results, func(l model.Listing) *float64 { return l.AreaM2 }); ok && maxA < *fs.Area.Lo {
			return "zmniejsz dolny limit metrażu"
		}
	}
	if fs.Balcony == model.TriTrue {
		for _, r := range results {
			if r.HasBalcony == model.TriFalse {
				return "jeśli balkon nie jest konieczny, usuń ten filtr — zwiększy to liczbę wyników"
			}
		}
	}
	return "doprecyzuj: *pokoje 2-3*, *piętro do 3*, *Jeżyce* itp."
}
