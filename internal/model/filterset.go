package model

// Sort identifies the ordering applied to ranked results.
type Sort string

const (
	SortScore     Sort = "score"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortAreaAsc   Sort = "area_asc"
	SortAreaDesc  Sort = "area_desc"
)

// Persona is a buyer category inferred from the query. It only supplies
// default range constraints when the user omitted them explicitly.
type Persona string

const (
	PersonaNone     Persona = ""
	PersonaSingle   Persona = "single"
	PersonaCouple   Persona = "couple"
	PersonaStudents Persona = "students"
	PersonaFamily   Persona = "family"
)

// DefaultLimit is the result cap applied when the query carries no limit.
const DefaultLimit = 50

// Range is a pair of optional numeric bounds. A nil bound is open on that
// side. A Range value always has at least one bound set; "no constraint" is
// represented as a nil *Range, never as an empty Range.
type Range struct {
	Lo *float64 `json:"lo,omitempty"`
	Hi *float64 `json:"hi,omitempty"`
}

// NewRange builds a Range from optional bounds. Both bounds absent
// normalizes to nil (no constraint); inverted bounds are swapped.
func NewRange(lo, hi *float64) *Range {
	if lo == nil && hi == nil {
		return nil
	}
	if lo != nil && hi != nil && *lo > *hi {
		lo, hi = hi, lo
	}
	return &Range{Lo: lo, Hi: hi}
}

// RangeOf builds a closed Range from two literal bounds.
func RangeOf(lo, hi float64) *Range {
	return NewRange(&lo, &hi)
}

// Contains reports whether v lies within the bounds. A nil Range contains
// everything.
func (r *Range) Contains(v float64) bool {
	if r == nil {
		return true
	}
	if r.Lo != nil && v < *r.Lo {
		return false
	}
	if r.Hi != nil && v > *r.Hi {
		return false
	}
	return true
}

// FilterSet is the structured representation of one query's search intent.
// It is created by the interpreter, never mutated afterwards, and discarded
// when the ranking cycle completes.
type FilterSet struct {
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`

	Price *Range `json:"price_range,omitempty"`
	Area  *Range `json:"area_range,omitempty"`
	Rooms *Range `json:"rooms_range,omitempty"`
	Floor *Range `json:"floor_range,omitempty"`

	Balcony  Tristate `json:"balcony"`
	Elevator Tristate `json:"elevator"`
	Garage   Tristate `json:"garage"`

	Sort           Sort    `json:"sort"`
	Limit          int     `json:"limit"`
	Persona        Persona `json:"persona,omitempty"`
	RoommateIntent bool    `json:"roommate_intent"`
}

// NewFilterSet returns a FilterSet with no constraints and default ordering.
func NewFilterSet() *FilterSet {
	return &FilterSet{
		Sort:  SortScore,
		Limit: DefaultLimit,
	}
}
