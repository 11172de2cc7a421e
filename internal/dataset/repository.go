package dataset

import (
	"sort"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/textutil"
)

// Repository holds the loaded listings. It is immutable after construction
// and safe for concurrent readers.
type Repository struct {
	listings  []model.Listing
	byID      map[int64]model.Listing
	cities    []string
	districts []string
}

func newRepository(listings []model.Listing) *Repository {
	byID := make(map[int64]model.Listing, len(listings))
	citySet := map[string]string{}
	districtSet := map[string]string{}
	for _, l := range listings {
		byID[l.ID] = l
		if l.City != "" {
			citySet[textutil.Normalize(l.City)] = l.City
		}
		if l.District != "" {
			districtSet[textutil.Normalize(l.District)] = l.District
		}
	}
	return &Repository{
		listings:  listings,
		byID:      byID,
		cities:    sortedValues(citySet),
		districts: sortedValues(districtSet),
	}
}

// NewRepository builds a repository straight from listings, bypassing the
// CSV loader. Used by tests and embedded datasets.
func NewRepository(listings []model.Listing) *Repository {
	return newRepository(append([]model.Listing(nil), listings...))
}

// All returns a copy of every listing in load order.
func (r *Repository) All() []model.Listing {
	return append([]model.Listing(nil), r.listings...)
}

// Len reports the number of listings.
func (r *Repository) Len() int {
	return len(r.listings)
}

// GetByID looks a listing up by its identifier.
func (r *Repository) GetByID(id int64) (model.Listing, bool) {
	l, ok := r.byID[id]
	return l, ok
}

// Cities returns the distinct city names, sorted. Duplicate spellings that
// normalize to the same key are collapsed.
func (r *Repository) Cities() []string {
	return append([]string(nil), r.cities...)
}

// Districts returns the distinct district names, sorted.
func (r *Repository) Districts() []string {
	return append([]string(nil), r.districts...)
}

// PriceContext compares a listing's price per m² against the averages of
// its city and district.
type PriceContext struct {
	City             string   `json:"city"`
	District         string   `json:"district"`
	PricePerM2       *float64 `json:"price_per_m2"`
	AvgCity          *float64 `json:"avg_city"`
	AvgDistrict      *float64 `json:"avg_district"`
	DeltaCityPct     *float64 `json:"delta_city_pct"`
	DeltaDistrictPct *float64 `json:"delta_district_pct"`
}

// PriceContext computes the price context for one listing. Every field can
// be absent: no price, no comparable rows, or a zero average all leave the
// corresponding delta unknown.
func (r *Repository) PriceContext(l model.Listing) PriceContext {
	ctx := PriceContext{
		City:       l.City,
		District:   l.District,
		PricePerM2: l.PricePerM2,
	}
	if l.City != "" {
		ctx.AvgCity = r.avgPricePerM2(l.City, "")
		if l.District != "" {
			ctx.AvgDistrict = r.avgPricePerM2(l.City, l.District)
		}
	}
	ctx.DeltaCityPct = pctDelta(l.PricePerM2, ctx.AvgCity)
	ctx.DeltaDistrictPct = pctDelta(l.PricePerM2, ctx.AvgDistrict)
	return ctx
}

func (r *Repository) avgPricePerM2(city, district string) *float64 {
	normCity := textutil.Normalize(city)
	normDistrict := textutil.Normalize(district)
	sum, n := 0.0, 0
	for _, l := range r.listings {
		if l.PricePerM2 == nil {
			continue
		}
		if textutil.Normalize(l.City) != normCity {
			continue
		}
		if district != "" && textutil.Normalize(l.District) != normDistrict {
			continue
		}
		sum += *l.PricePerM2
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func pctDelta(v, base *float64) *float64 {
	if v == nil || base == nil || *base == 0 {
		return nil
	}
	d := (*v - *base) / *base * 100.0
	return &d
}

func sortedValues(set map[string]string) []string {
	out := make([]string, 0, len(set))
	for _, v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
