// Package dataset loads the listings CSV into an immutable in-memory
// repository. The loader is deliberately forgiving: real exports arrive
// with BOMs, Windows-1250 encodings, mixed separators and broken rows,
// and a bad row must never take the whole dataset down with it.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/textutil"
)

// columnMap translates the Polish CSV headers onto logical field names.
// Keys are normalized, so "Metraż" and "Metraz" both land on "metraz".
var columnMap = map[string]string{
	"id":          "id",
	"miasto":      "miasto",
	"lokalizacja": "lokalizacja",
	"dzielnica":   "lokalizacja",
	"metraz":      "metraz",
	"pokoje":      "pokoje",
	"balkon":      "balkon",
	"cena":        "cena",
	"pietro":      "pietro",
	"winda":       "winda",
	"garaz":       "garaz",
}

// Load reads the CSV at path and builds a Repository. Rows that cannot be
// parsed are skipped and counted, never fatal; an unreadable file or a
// header with no recognizable columns is.
func Load(path string, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	text := decode(raw)
	sep := sniffSeparator(text)

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	cols := mapHeader(header)
	if len(cols) == 0 {
		return nil, fmt.Errorf("dataset %s: no recognizable columns in header %v", path, header)
	}

	var (
		listings []model.Listing
		skipped  int
		nextID   int64 = 1
	)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		l, ok := parseRow(rec, cols)
		if !ok {
			skipped++
			continue
		}
		if l.ID == 0 {
			l.ID = nextID
		}
		nextID = l.ID + 1
		listings = append(listings, l)
	}

	logger.Info("dataset loaded",
		"path", path,
		"rows", len(listings),
		"skipped", skipped,
		"separator", string(sep),
	)
	return newRepository(listings), nil
}

// decode strips a UTF-8 BOM and falls back to Windows-1250 when the bytes
// are not valid UTF-8.
func decode(raw []byte) string {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.Windows1250.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// sniffSeparator picks the delimiter by counting candidates in the header
// line. Semicolon wins ties, being the usual choice of Polish spreadsheet
// exports.
func sniffSeparator(text string) rune {
	head := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		head = text[:i]
	}
	if strings.Count(head, ";") >= strings.Count(head, ",") {
		return ';'
	}
	return ','
}

// mapHeader resolves each header cell to a logical column name, keyed by
// field index. Unknown headers are ignored.
func mapHeader(header []string) map[int]string {
	cols := make(map[int]string)
	for i, h := range header {
		if name, ok := columnMap[textutil.Normalize(h)]; ok {
			cols[i] = name
		}
	}
	return cols
}

// parseRow coerces one CSV record into a listing. Unparseable cells become
// unknown values; the row is rejected only when it has no usable content
// at all.
func parseRow(rec []string, cols map[int]string) (model.Listing, bool) {
	var l model.Listing
	any := false
	for i, name := range cols {
		if i >= len(rec) {
			continue
		}
		cell := strings.TrimSpace(rec[i])
		if cell == "" {
			continue
		}
		switch name {
		case "id":
			if v, ok := textutil.ToFloat(cell); ok && v > 0 {
				l.ID = int64(math.Round(v))
				any = true
			}
		case "miasto":
			l.City = cell
			any = true
		case "lokalizacja":
			l.District = cell
			any = true
		case "metraz":
			if v, ok := textutil.ToFloat(cell); ok {
				l.AreaM2 = &v
				any = true
			}
		case "pokoje":
			if v, ok := textutil.ToFloat(cell); ok {
				n := int(math.Round(v))
				l.Rooms = &n
				any = true
			}
		case "cena":
			if v, ok := textutil.ToFloat(cell); ok {
				l.Price = &v
				any = true
			}
		case "pietro":
			if v, ok := textutil.ToFloat(cell); ok {
				n := int(math.Round(v))
				l.Floor = &n
				any = true
			}
		case "balkon":
			l.HasBalcony = parseTri(cell)
		case "winda":
			l.HasElevator = parseTri(cell)
		case "garaz":
			l.HasGarage = parseTri(cell)
		}
	}
	if !any {
		return model.Listing{}, false
	}
	if l.Price != nil && l.AreaM2 != nil && *l.AreaM2 > 0 {
		ppm := math.Round(*l.Price / *l.AreaM2)
		l.PricePerM2 = &ppm
	}
	return l, true
}

func parseTri(cell string) model.Tristate {
	if v, ok := textutil.ParseBool(cell); ok {
		return model.TriFromBool(v)
	}
	return model.TriUnknown
}
