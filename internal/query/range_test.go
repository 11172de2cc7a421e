package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
)

func assertRange(t *testing.T, r *model.Range, lo, hi *float64) {
	t.Helper()
	require.NotNil(t, r)
	if lo == nil {
		assert.Nil(t, r.Lo)
	} else {
		require.NotNil(t, r.Lo)
		assert.Equal(t, *lo, *r.Lo)
	}
	if hi == nil {
		assert.Nil(t, r.Hi)
	} else {
		require.NotNil(t, r.Hi)
		assert.Equal(t, *hi, *r.Hi)
	}
}

func fp(v float64) *float64 { return &v }

func TestParseRange(t *testing.T) {
	tests := []struct {
		name string
		in   string
		lo   *float64
		hi   *float64
	}{
		{"hyphen range", "60-80", fp(60), fp(80)},
		{"en dash range", "60–80", fp(60), fp(80)},
		{"od do", "od 60 do 80", fp(60), fp(80)},
		{"do only", "do 80", nil, fp(80)},
		{"od only", "od 60", fp(60), nil},
		{"bare number", "70", fp(70), fp(70)},
		{"inverted hyphen", "80-60", fp(60), fp(80)},
		{"inverted od do", "od 80 do 60", fp(60), fp(80)},
		{"thousands separators", "od 500 000 do 800 000", fp(500000), fp(800000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRange(t, ParseRange(tt.in), tt.lo, tt.hi)
		})
	}
}

func TestParseRangeNoMatch(t *testing.T) {
	assert.Nil(t, ParseRange("z balkonem"))
	assert.Nil(t, ParseRange(""))
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name string
		in   string
		hi   float64
	}{
		{"do with k", "do 800k", 800000},
		{"do with tys", "do 900 tys", 900000},
		{"bare mln", "1.2 mln", 1200000},
		{"decimal comma mln", "1,2 mln", 1200000},
		{"do plain zl", "do 750000 zł", 750000},
		{"bare with pln", "650000 pln", 650000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParsePriceRange(tt.in)
			require.NotNil(t, r)
			assert.Nil(t, r.Lo, "price from a single number means up-to, lower bound stays open")
			require.NotNil(t, r.Hi)
			assert.Equal(t, tt.hi, *r.Hi)
		})
	}
}

func TestParsePriceRangeNoUnitToken(t *testing.T) {
	assert.Nil(t, ParsePriceRange("mieszkanie z balkonem"))
	assert.Nil(t, ParsePriceRange(""))
	// A bare number without a unit is not a price constraint.
	assert.Nil(t, ParsePriceRange("do 3 piętra"))
}

func TestParseAreaRange(t *testing.T) {
	t.Run("keyword anchored", func(t *testing.T) {
		assertRange(t, ParseAreaRange("metraż od 60 do 80"), fp(60), fp(80))
	})
	t.Run("full text fallback", func(t *testing.T) {
		assertRange(t, ParseAreaRange("50-70"), fp(50), fp(70))
	})
	t.Run("no numbers", func(t *testing.T) {
		assert.Nil(t, ParseAreaRange("ładne mieszkanie"))
	})
}

func TestParseRoomsRange(t *testing.T) {
	assertRange(t, ParseRoomsRange("pokoje 2-3"), fp(2), fp(3))
	// Numbers before the keyword are not part of the keyword span.
	assert.Nil(t, ParseRoomsRange("3 pokoje"))
}

func TestParseFloorRange(t *testing.T) {
	t.Run("parter is ground floor", func(t *testing.T) {
		assertRange(t, ParseFloorRange("parter"), fp(0), fp(0))
	})
	t.Run("pietro with range", func(t *testing.T) {
		assertRange(t, ParseFloorRange("piętro do 3"), nil, fp(3))
	})
	t.Run("keyword without numbers", func(t *testing.T) {
		assert.Nil(t, ParseFloorRange("wysokie piętro"))
	})
}
