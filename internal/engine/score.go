package engine

import (
	"fmt"
	"math"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/textutil"
)

// Field weights for the additive scoring model.
const (
	WeightPrice    = 2.0
	WeightArea     = 1.5
	WeightRooms    = 1.2
	WeightFloor    = 0.8
	WeightAmenity  = 2.0
	WeightCity     = 1.5
	WeightDistrict = 2.0
)

// MaxScore bounds any score a single row can reach: both amenities, city,
// district and full credit on all four ranges.
const MaxScore = 2*WeightAmenity + WeightCity + WeightDistrict + WeightPrice + WeightArea + WeightRooms + WeightFloor

// Score computes a non-negative match score for one listing against one
// FilterSet. Each field contributes independently; values outside a range
// earn decaying partial credit rather than zero.
func Score(l model.Listing, fs *model.FilterSet) float64 {
	score := 0.0
	if fs.Balcony.Known() && l.HasBalcony == fs.Balcony {
		score += WeightAmenity
	}
	if fs.Elevator.Known() && l.HasElevator == fs.Elevator {
		score += WeightAmenity
	}
	if fs.City != "" && textutil.Normalize(l.City) == textutil.Normalize(fs.City) {
		score += WeightCity
	}
	if fs.District != "" && textutil.Normalize(l.District) == textutil.Normalize(fs.District) {
		score += WeightDistrict
	}
	score += softRange(l.Price, fs.Price, WeightPrice)
	score += softRange(l.AreaM2, fs.Area, WeightArea)
	score += softRange(intValue(l.Rooms), fs.Rooms, WeightRooms)
	score += softRange(intValue(l.Floor), fs.Floor, WeightFloor)
	return round4(score)
}

// softRange gives full weight inside [lo, hi] and linearly decaying credit
// outside, halved at the boundary and normalized by the bound's magnitude.
// Absent value or constraint earns nothing.
func softRange(v *float64, r *model.Range, weight float64) float64 {
	if v == nil || r == nil {
		return 0
	}
	val := *v
	if r.Lo != nil && val < *r.Lo {
		return math.Max(0, 1-(*r.Lo-val)/math.Max(*r.Lo, 1)) * weight * 0.5
	}
	if r.Hi != nil && val > *r.Hi {
		return math.Max(0, 1-(val-*r.Hi)/math.Max(*r.Hi, 1)) * weight * 0.5
	}
	return weight
}

// ScoreAll scores every listing against the filterset. A failure scoring a
// single row is isolated: that row gets 0.0 and the batch continues.
func ScoreAll(listings []model.Listing, fs *model.FilterSet) []model.ScoredListing {
	out := make([]model.ScoredListing, 0, len(listings))
	for _, l := range listings {
		out = append(out, model.ScoredListing{
			Listing:        l,
			Score:          scoreSafe(l, fs),
			MatchedReasons: matchReasons(l, fs),
		})
	}
	return out
}

func scoreSafe(l model.Listing, fs *model.FilterSet) (s float64) {
	defer func() {
		if recover() != nil {
			s = 0.0
		}
	}()
	return Score(l, fs)
}

// matchReasons builds human-readable notes on why a listing matched.
func matchReasons(l model.Listing, fs *model.FilterSet) []string {
	var reasons []string
	if fs.City != "" && l.City != "" {
		reasons = append(reasons, "Miasto: "+l.City)
	}
	if fs.District != "" && l.District != "" {
		reasons = append(reasons, "Lokalizacja: "+l.District)
	}
	addRangeReason := func(name string, v *float64, r *model.Range, unit string) {
		if r == nil || v == nil {
			return
		}
		verdict := "w zakresie"
		if !r.Contains(*v) {
			verdict = "blisko zakresu"
		}
		reasons = append(reasons, fmt.Sprintf("%s: %.0f%s %s", name, *v, unit, verdict))
	}
	addRangeReason("Cena", l.Price, fs.Price, " zł")
	addRangeReason("Metraż", l.AreaM2, fs.Area, " m²")
	addRangeReason("Pokoje", intValue(l.Rooms), fs.Rooms, "")
	addRangeReason("Piętro", intValue(l.Floor), fs.Floor, "")
	if fs.Balcony.Known() && l.HasBalcony.Known() {
		if l.HasBalcony.Bool() {
			reasons = append(reasons, "Balkon: tak")
		} else {
			reasons = append(reasons, "Balkon: nie")
		}
	}
	if fs.Elevator.Known() && l.HasElevator.Known() {
		if l.HasElevator.Bool() {
			reasons = append(reasons, "Winda: tak")
		} else {
			reasons = append(reasons, "Winda: nie")
		}
	}
	return reasons
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
