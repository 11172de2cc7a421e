package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accents stripped", "Żoliborz", "zoliborz"},
		{"mixed diacritics", "Piętro, Metraż", "pietro, metraz"},
		{"superscript two", "60 m²", "60 m2"},
		{"case folded and trimmed", "  POZNAŃ  ", "poznan"},
		{"empty", "", ""},
		{"plain ascii untouched", "do 800k", "do 800k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Żoliborz", "Jeżyce", "60–80 m²", "bez balkonu", "WSPÓŁLOKATOR"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalizeAccentInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("zoliborz"), Normalize("Żoliborz"))
	assert.Equal(t, Normalize("jezyce"), Normalize("Jeżyce"))
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
		ok   bool
	}{
		{"plain", "70", 70, true},
		{"thousands space", "800 000", 800000, true},
		{"thousands nbsp", "800 000", 800000, true},
		{"decimal comma", "1,5", 2, true},
		{"k suffix", "800k", 800000, true},
		{"tys suffix", "900 tys", 900000, true},
		{"mln suffix", "1.2 mln", 1200000, true},
		{"decimal comma mln", "1,2mln", 1200000, true},
		{"currency noise", "750000 zł", 750000, true},
		{"no number", "balkon", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"plain", "64.5", 64.5, true},
		{"decimal comma", "64,5", 64.5, true},
		{"thousands space", "750 000", 750000, true},
		{"integer", "3", 3, true},
		{"garbage", "brak danych", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
		ok   bool
	}{
		{"tak", true, true},
		{"TAK", true, true},
		{"1", true, true},
		{"z balkonem", true, true},
		{"posiada", true, true},
		{"ma windę", true, true},
		{"nie", false, true},
		{"0", false, true},
		{"brak", false, true},
		{"bez balkonu", false, true},
		{"bez windy", false, true},
		{"", false, false},
		{"nieznane?", false, false},
		{"45", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseBool(tt.in)
			assert.Equal(t, tt.ok, ok, "ok for %q", tt.in)
			if tt.ok {
				assert.Equal(t, tt.want, got, "value for %q", tt.in)
			}
		})
	}
}

func TestFormatPLN(t *testing.T) {
	assert.Equal(t, "750 000 zł", FormatPLN(750000))
	assert.Equal(t, "1 200 000 zł", FormatPLN(1200000))
	assert.Equal(t, "999 zł", FormatPLN(999))
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "70 m²", FormatArea(70))
	assert.Equal(t, "46 m²", FormatArea(45.7))
}
