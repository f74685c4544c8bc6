package domain

// CareerHighlights holds the numeric career fields scraped from a driver's
// article. Parse failures degrade to zero values, never errors.
type CareerHighlights struct {
	Championships int     `json:"championships"`
	Entries       int     `json:"entries"`
	Wins          int     `json:"wins"`
	Podiums       int     `json:"podiums"`
	CareerPoints  float64 `json:"careerPoints"`
	PolePositions int     `json:"polePositions"`
	FastestLaps   int     `json:"fastestLaps"`
	FirstEntry    string  `json:"firstEntry"`
	FirstWin      string  `json:"firstWin"`
	LastWin       string  `json:"lastWin"`
	LastEntry     string  `json:"lastEntry"`
	LastPosition  string  `json:"lastPosition"`
}

// Enrichment carries the supplementary attributes scraped from a driver's
// encyclopedia article. Text fields fall back to "N/A" and TeamHistory to an
// empty list when the article is unreachable or malformed.
type Enrichment struct {
	Height           string           `json:"height"`
	Weight           string           `json:"weight"`
	TeamHistory      []string         `json:"teamHistory"`
	CurrentTeam      string           `json:"currentTeam"`
	CareerHighlights CareerHighlights `json:"careerHighlights"`
}

// DefaultEnrichment returns the fully-defaulted enrichment used when a
// driver's article lookup fails.
func DefaultEnrichment() Enrichment {
	return Enrichment{
		Height:      "N/A",
		Weight:      "N/A",
		TeamHistory: []string{},
		CurrentTeam: "N/A",
		CareerHighlights: CareerHighlights{
			FirstEntry:   "N/A",
			FirstWin:     "N/A",
			LastWin:      "N/A",
			LastEntry:    "N/A",
			LastPosition: "N/A",
		},
	}
}
