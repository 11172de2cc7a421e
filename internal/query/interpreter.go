package query

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/textutil"
)

// personaRule pairs a keyword predicate with the default ranges the persona
// implies. Rules are evaluated in declared order, first match wins, so the
// priority contract (family > students > couple > single) is explicit.
type personaRule struct {
	persona  model.Persona
	keywords []string
	rooms    *model.Range
	area     *model.Range
}

var personaRules = []personaRule{
	{
		persona:  model.PersonaFamily,
		keywords: []string{"rodzina", "rodzinne", "dla rodziny", "dzieci", "2+1", "2+2", "3+1"},
		rooms:    model.RangeOf(3, 5),
		area:     model.RangeOf(60, 120),
	},
	{
		persona:  model.PersonaStudents,
		keywords: []string{"student", "studenci", "dla studenta", "dla studentów", "dla studentow", "stud"},
		rooms:    model.RangeOf(1, 4),
		area:     model.RangeOf(15, 50),
	},
	{
		persona:  model.PersonaCouple,
		keywords: []string{"para", "pary", "dla pary", "we dwoje", "dla dwojga", "małżeństwo", "malzenstwo"},
		rooms:    model.RangeOf(2, 2),
		area:     model.RangeOf(40, 60),
	},
	{
		persona:  model.PersonaSingle,
		keywords: []string{"singiel", "singla", "singlowe", "singlem", "solo", "dla singla", "dla singli"},
		rooms:    model.RangeOf(1, 2),
		area:     model.RangeOf(25, 45),
	},
}

// sortRules map sort-intent phrases to orderings, first match wins.
var sortRules = []struct {
	keywords []string
	sort     model.Sort
}{
	{[]string{"najtańsz", "cena rosn", "po cenie"}, model.SortPriceAsc},
	{[]string{"najdroż", "cena malej"}, model.SortPriceDesc},
	{[]string{"największ", "metraż malej"}, model.SortAreaDesc},
	{[]string{"najmniejsz", "metraż rosn"}, model.SortAreaAsc},
}

var roommateKeywords = []string{
	"współlokator", "wspollokator", "roommate", "co-living", "coliving",
	"pokój", "pokoj", "pokojowe", "na pokój",
}

// Interpreter translates a raw query into a FilterSet using ordered city
// and district dictionaries taken from the dataset. Matching is
// order-sensitive: the first dictionary entry wins on overlapping names.
type Interpreter struct {
	cities        []string
	districts     []string
	normCities    []string
	normDistricts []string
	districtRes   []*regexp.Regexp
	logger        *slog.Logger
}

// NewInterpreter builds an interpreter over the known city and district
// dictionaries. The input slices are scanned in the given order.
func NewInterpreter(cities, districts []string, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	in := &Interpreter{
		cities:        cities,
		districts:     districts,
		normCities:    make([]string, len(cities)),
		normDistricts: make([]string, len(districts)),
		districtRes:   make([]*regexp.Regexp, len(districts)),
		logger:        logger.With("component", "interpreter"),
	}
	for i, c := range cities {
		in.normCities[i] = textutil.Normalize(c)
	}
	for i, d := range districts {
		nd := textutil.Normalize(d)
		in.normDistricts[i] = nd
		if nd != "" {
			// Word-boundary forms: "na Jeżycach", "w Śródmieściu".
			in.districtRes[i] = regexp.MustCompile(`\b(?:na|w)\s+` + regexp.QuoteMeta(nd) + `\b`)
		}
	}
	return in
}

// Interpret parses a free-text query into a FilterSet. The result is
// deterministic for identical input text and dictionaries; no external
// calls are made.
func (in *Interpreter) Interpret(query string) *model.FilterSet {
	t := textutil.Normalize(query)
	fs := model.NewFilterSet()

	// Location: ordered dictionary scan, first match wins. City and
	// district matching are independent.
	for i, c := range in.normCities {
		if c != "" && strings.Contains(t, c) {
			fs.City = in.cities[i]
			break
		}
	}
	for i, d := range in.normDistricts {
		if d == "" {
			continue
		}
		if strings.Contains(t, d) || in.districtRes[i].MatchString(t) {
			fs.District = in.districts[i]
			break
		}
	}

	fs.Price = ParsePriceRange(t)
	fs.Area = ParseAreaRange(t)
	if strings.Contains(t, "poko") {
		fs.Rooms = ParseRoomsRange(t)
	}
	if strings.Contains(t, "pietr") || strings.Contains(t, "parter") {
		fs.Floor = ParseFloorRange(t)
	}

	// Amenities: keyword presence sets the constraint; "bez" anywhere in
	// the query negates it.
	negated := strings.Contains(t, "bez")
	if strings.Contains(t, "balkon") {
		fs.Balcony = model.TriFromBool(!negated)
	}
	if strings.Contains(t, "wind") {
		fs.Elevator = model.TriFromBool(!negated)
	}

	// Persona defaults never override explicitly parsed ranges.
	for _, rule := range personaRules {
		if containsAny(t, rule.keywords) {
			fs.Persona = rule.persona
			if fs.Rooms == nil {
				fs.Rooms = rule.rooms
			}
			if fs.Area == nil {
				fs.Area = rule.area
			}
			break
		}
	}

	fs.RoommateIntent = containsAny(t, roommateKeywords)

	for _, rule := range sortRules {
		if containsAny(t, rule.keywords) {
			fs.Sort = rule.sort
			break
		}
	}

	in.logger.Debug("interpreted query",
		"city", fs.City, "district", fs.District,
		"persona", fs.Persona, "sort", fs.Sort, "roommate", fs.RoommateIntent)
	return fs
}

// containsAny reports whether the normalized text contains any of the
// keywords; keywords are normalized before comparison so accented and
// diacritics-free spellings behave identically.
func containsAny(t string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(t, textutil.Normalize(k)) {
			return true
		}
	}
	return false
}
