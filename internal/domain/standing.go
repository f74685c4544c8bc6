package domain

// FlagURLs is the set of rendered flag assets derived from a nationality.
type FlagURLs struct {
	Flat  string `json:"flat"`
	Shiny string `json:"shiny"`
}

// ConstructorStanding is one row of the constructor championship table.
// ConstructorID carries the current-season asset naming (the "sauber" remap
// is applied at extraction). ArticleLogo stays empty until the aggregator
// resolves a logo from the constructor's article.
type ConstructorStanding struct {
	TeamName      string   `json:"teamName"`
	Nationality   string   `json:"nationality"`
	Points        string   `json:"points"`
	Wins          string   `json:"wins"`
	Position      string   `json:"position"`
	ConstructorID string   `json:"constructorId"`
	WikipediaURL  string   `json:"url"`
	Logo          string   `json:"logo"`
	FlagURLs      FlagURLs `json:"flagUrls"`
	ArticleLogo   string   `json:"articleLogo,omitempty"`
}

// StandingsResponse is the payload returned by /standings.
type StandingsResponse struct {
	Season    string                `json:"season"`
	Round     string                `json:"round"`
	Standings []ConstructorStanding `json:"standings"`
}
