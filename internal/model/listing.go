package model

import "encoding/json"

// Tristate represents a boolean attribute that may be unknown. On a listing,
// unknown means the source data did not say; on a filter, unknown means
// "no constraint". An unknown listing value fails an explicit constraint.
type Tristate int

const (
	TriUnknown Tristate = iota
	TriTrue
	TriFalse
)

// TriFromBool converts a known boolean into a Tristate.
func TriFromBool(b bool) Tristate {
	if b {
		return TriTrue
	}
	return TriFalse
}

// Known reports whether the value is explicitly true or false.
func (t Tristate) Known() bool {
	return t != TriUnknown
}

// Bool returns the underlying boolean; only meaningful when Known.
func (t Tristate) Bool() bool {
	return t == TriTrue
}

func (t Tristate) String() string {
	switch t {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes TriUnknown as null so API consumers see the same
// absent/true/false shape as the source dataset.
func (t Tristate) MarshalJSON() ([]byte, error) {
	switch t {
	case TriTrue:
		return []byte("true"), nil
	case TriFalse:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *Tristate) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*t = TriUnknown
	} else {
		*t = TriFromBool(*v)
	}
	return nil
}

// Listing represents one row of the housing dataset. Numeric attributes use
// pointers because the source data may omit any of them; a nil pointer means
// the value is unknown. Listings are immutable for the lifetime of a session.
type Listing struct {
	ID          int64    `json:"id"`
	City        string   `json:"city,omitempty"`
	District    string   `json:"district,omitempty"`
	AreaM2      *float64 `json:"area_m2,omitempty"`
	Rooms       *int     `json:"rooms,omitempty"`
	Floor       *int     `json:"floor,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	PricePerM2  *float64 `json:"price_per_m2,omitempty"`
	HasBalcony  Tristate `json:"has_balcony"`
	HasElevator Tristate `json:"has_elevator"`
	HasGarage   Tristate `json:"has_garage"`
}

// ScoredListing is a listing with a match score computed against one
// FilterSet. Scores are only comparable within a single query.
type ScoredListing struct {
	Listing
	Score          float64  `json:"score"`
	MatchedReasons []string `json:"matched_reasons,omitempty"`
}

// RoommateCandidate is a shared-housing candidate produced by the roommate
// matching path, carrying per-room economics alongside the score.
type RoommateCandidate struct {
	ScoredListing
	PerRoomPrice *float64 `json:"per_room_price,omitempty"`
	PerRoomArea  *float64 `json:"per_room_area,omitempty"`
}
