package engine

import (
	"sort"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
)

// Rank orders scored listings by the filterset's sort intent and truncates
// to its limit. Missing primary-key values sort last regardless of
// direction, and the listing id breaks remaining ties, so the ordering is
// fully deterministic.
func Rank(scored []model.ScoredListing, fs *model.FilterSet) []model.ScoredListing {
	out := make([]model.ScoredListing, len(scored))
	copy(out, scored)

	sort.Slice(out, func(i, j int) bool {
		return less(&out[i], &out[j], fs.Sort)
	})

	limit := fs.Limit
	if limit <= 0 {
		limit = model.DefaultLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func less(a, b *model.ScoredListing, s model.Sort) bool {
	switch s {
	case model.SortPriceAsc:
		if c := cmpPtr(a.Price, b.Price, false); c != 0 {
			return c < 0
		}
	case model.SortPriceDesc:
		if c := cmpPtr(a.Price, b.Price, true); c != 0 {
			return c < 0
		}
	case model.SortAreaAsc:
		if c := cmpPtr(a.AreaM2, b.AreaM2, false); c != 0 {
			return c < 0
		}
	case model.SortAreaDesc:
		if c := cmpPtr(a.AreaM2, b.AreaM2, true); c != 0 {
			return c < 0
		}
	default: // score: best first, then cheapest, then id
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if c := cmpPtr(a.Price, b.Price, false); c != 0 {
			return c < 0
		}
	}
	return a.ID < b.ID
}

// cmpPtr compares optional float values; nil always sorts last, even in
// descending order.
func cmpPtr(a, b *float64, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	if *a == *b {
		return 0
	}
	if (*a < *b) != desc {
		return -1
	}
	return 1
}
