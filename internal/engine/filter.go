// Package engine applies a FilterSet to the listing dataset: boolean
// filtering, soft-range scoring, deterministic ranking, and the secondary
// roommate-matching path. Every operation produces a new slice; the input
// dataset is never mutated.
package engine

import (
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/textutil"
)

// Filter returns the listings passing every set constraint, preserving the
// input order. Unset constraints never exclude rows; a row with an unknown
// value on a constrained field fails that constraint.
func Filter(listings []model.Listing, fs *model.FilterSet) []model.Listing {
	out := make([]model.Listing, 0, len(listings))
	normCity := textutil.Normalize(fs.City)
	normDistrict := textutil.Normalize(fs.District)

	for _, l := range listings {
		if fs.City != "" && textutil.Normalize(l.City) != normCity {
			continue
		}
		if fs.District != "" && textutil.Normalize(l.District) != normDistrict {
			continue
		}
		if !inRange(fs.Price, l.Price) {
			continue
		}
		if !inRange(fs.Area, l.AreaM2) {
			continue
		}
		if !inRange(fs.Rooms, intValue(l.Rooms)) {
			continue
		}
		if !inRange(fs.Floor, intValue(l.Floor)) {
			continue
		}
		if !triMatches(fs.Balcony, l.HasBalcony) {
			continue
		}
		if !triMatches(fs.Elevator, l.HasElevator) {
			continue
		}
		if !triMatches(fs.Garage, l.HasGarage) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func inRange(r *model.Range, v *float64) bool {
	if r == nil {
		return true
	}
	if v == nil {
		return false
	}
	return r.Contains(*v)
}

func triMatches(want, got model.Tristate) bool {
	if want == model.TriUnknown {
		return true
	}
	return got == want
}

func intValue(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
