package answer

import (
	"fmt"
	"strings"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
)

// Reply styles understood by the prompt builder.
const (
	StyleConcise    = "zwięzły"
	StyleConsultant = "konsultant"
	StyleSales      = "handlowy"
	StyleTechnical  = "techniczny"
)

// Reply lengths understood by the prompt builder.
const (
	LengthShort  = "krótka"
	LengthMedium = "średnia"
	LengthLong   = "dłuższa"
)

var styleTones = map[string]string{
	StyleConcise:    "krótko, konkretnie, zero marketingu",
	StyleConsultant: "empatycznie i klarownie, ale rzeczowo",
	StyleSales:      "zachęcająco, ale bez przesady; nadal rzeczowo",
	StyleTechnical:  "suche fakty i liczby, jak raport",
}

var lengthWords = map[string]int{
	LengthShort:  80,
	LengthMedium: 140,
	LengthLong:   220,
}

// BuildPrompt assembles the Polish prompt handed to the language model:
// tone and word-count instructions, the active criteria, the top candidate
// lines and the expected reply structure.
func BuildPrompt(fs *model.FilterSet, results []model.ScoredListing, topK int, style, length string) string {
	tone, ok := styleTones[style]
	if !ok {
		tone = "krótko i konkretnie"
	}
	maxWords, ok := lengthWords[length]
	if !ok {
		maxWords = 120
	}
	if topK <= 0 {
		topK = 3
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Odpowiedz po polsku (maks ~%d słów), styl: %s.\n", maxWords, tone)
	b.WriteString("Kryteria: " + header(fs) + "\n")
	b.WriteString("Kandydaci:\n")
	for i, r := range results {
		if i >= topK {
			break
		}
		b.WriteString(FormatRowShort(r.Listing) + "\n")
	}
	b.WriteString("W treści zawrzyj: 1) jednozdaniowy nagłówek dopasowany do kryteriów; " +
		"2) listę 2–3 najlepszych; 3) 1 wskazówkę co doprecyzować.")
	return b.String()
}
