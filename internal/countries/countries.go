// Package countries resolves free-text nationality strings to ISO 3166-1
// alpha-2 country codes.
package countries

import (
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UnknownCode is returned whenever a nationality cannot be resolved. It is a
// renderable sentinel, never an error.
const UnknownCode = "UN"

type entry struct {
	demonym string
	code    string
}

// Lookup order matters for the partial-match fallback, so the table is an
// ordered slice rather than a bare map.
var entries = []entry{
	// European
	{"British", "GB"},
	{"Finnish", "FI"},
	{"German", "DE"},
	{"Dutch", "NL"},
	{"Spanish", "ES"},
	{"French", "FR"},
	{"Italian", "IT"},
	{"Danish", "DK"},
	{"Swiss", "CH"},
	{"Swedish", "SE"},
	{"Belgian", "BE"},
	{"Austrian", "AT"},
	{"Portuguese", "PT"},
	{"Polish", "PL"},
	{"Russian", "RU"},
	{"Croatian", "HR"},
	{"Czech", "CZ"},
	{"Greek", "GR"},

	// North American
	{"American", "US"},
	{"Canadian", "CA"},
	{"Mexican", "MX"},

	// South American
	{"Brazilian", "BR"},
	{"Argentinian", "AR"},
	{"Colombian", "CO"},
	{"Venezuelan", "VE"},
	{"Chilean", "CL"},

	// Asian
	{"Japanese", "JP"},
	{"Chinese", "CN"},
	{"Thai", "TH"},
	{"Malaysian", "MY"},
	{"Indian", "IN"},
	{"Korean", "KR"},
	{"Vietnamese", "VN"},
	{"Singaporean", "SG"},

	// Oceania
	{"Australian", "AU"},
	{"New Zealander", "NZ"},

	// Middle Eastern
	{"Saudi Arabian", "SA"},
	{"Emirati", "AE"},
	{"Bahraini", "BH"},
	{"Qatari", "QA"},

	// African
	{"South African", "ZA"},
	{"Moroccan", "MA"},
	{"Egyptian", "EG"},

	// Additional Formula 1 nationalities
	{"Monégasque", "MC"},
	{"Monegasque", "MC"},
	{"Monacoan", "MC"},
	{"Liechtensteiner", "LI"},
	{"Slovenian", "SI"},
}

var exact = func() map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[normalize(e.demonym)] = e.code
	}
	return m
}()

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	loggerMu sync.RWMutex
	logger   *slog.Logger
)

// SetLogger installs the logger used for partial-match and unknown-nationality
// warnings. A nil logger silences them.
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// CodeFor maps a free-text nationality to a two-letter country code. It never
// fails: unknown or empty input yields UnknownCode. Unresolved and
// partially-matched inputs emit a warning through the configured logger.
func CodeFor(nationality string) string {
	if strings.TrimSpace(nationality) == "" {
		return UnknownCode
	}

	normalized := normalize(nationality)
	if code, ok := exact[normalized]; ok {
		return code
	}

	// Permissive substring fallback: first table entry wins. Known heuristic,
	// hence the warning.
	for _, e := range entries {
		key := normalize(e.demonym)
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			warn("partial nationality match",
				slog.String("nationality", nationality),
				slog.String("matched", e.demonym),
			)
			return e.code
		}
	}

	warn("unknown nationality", slog.String("nationality", nationality))
	return UnknownCode
}

// normalize strips diacritics, capitalizes the first rune, and trims
// surrounding whitespace, so that "monégasque" and "Monegasque" hit the same
// table entry.
func normalize(nationality string) string {
	stripped, _, err := transform.String(stripAccents, nationality)
	if err != nil {
		stripped = nationality
	}
	stripped = strings.TrimSpace(stripped)
	if stripped == "" {
		return stripped
	}
	r := []rune(stripped)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func warn(msg string, args ...any) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		l.Warn(msg, args...)
	}
}
