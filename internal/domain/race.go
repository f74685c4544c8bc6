package domain

// Location identifies where a race is held. Country keeps the raw upstream
// value; asset lookups apply their own spelling overrides without touching it.
type Location struct {
	Locality string `json:"locality"`
	Country  string `json:"country"`
	Lat      string `json:"latitude,omitempty"`
	Long     string `json:"longitude,omitempty"`
}

// Circuit describes the venue of a race.
type Circuit struct {
	CircuitID  string `json:"circuitId"`
	CircuitRef string `json:"circuitRef"`
	Name       string `json:"circuitName"`
}

// Race is one entry of a season's schedule. Round is assigned by 1-based
// ingestion order. CircuitImage stays empty until the aggregator resolves it.
type Race struct {
	Season       string   `json:"season"`
	Round        int      `json:"round"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Circuit      Circuit  `json:"circuit"`
	Location     Location `json:"location"`
	WikipediaURL string   `json:"wikipediaUrl"`
	CircuitImage string   `json:"circuitImage,omitempty"`
}
