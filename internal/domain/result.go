package domain

// RaceHeader carries the race-level fields of a results document. Round here
// is the upstream round attribute as raw text; the schedule's ingestion-order
// round stays the canonical join key.
type RaceHeader struct {
	RaceName string   `json:"raceName"`
	Season   string   `json:"season"`
	Round    string   `json:"round"`
	Date     string   `json:"raceDate"`
	Time     string   `json:"raceTime"`
	Circuit  Circuit  `json:"circuit"`
	Location Location `json:"location"`
}

// DriverSnapshot is an immutable copy of the driver fields embedded in a
// result, decoupled from the season's Driver records.
type DriverSnapshot struct {
	DriverID        string `json:"driverId"`
	Code            string `json:"driverCode"`
	PermanentNumber string `json:"permanentNumber"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Nationality     string `json:"nationality"`
}

// ConstructorSnapshot is the constructor as recorded on one result row.
type ConstructorSnapshot struct {
	ConstructorID string `json:"constructorId"`
	Name          string `json:"constructorName"`
	Nationality   string `json:"constructorNationality"`
}

// FastestLap is the optional fastest-lap sub-record of a result.
type FastestLap struct {
	Rank         string `json:"fastestLapRank"`
	Lap          string `json:"fastestLapLap"`
	Time         string `json:"fastestLapTime"`
	AverageSpeed string `json:"fastestLapAverageSpeed"`
	SpeedUnits   string `json:"fastestLapSpeedUnits"`
}

// RaceResult is one classified (or retired) entry of a race. Position keeps
// the "N/A" sentinel when absent, which is distinct from any classified
// position text. RaceTimeMillis is empty when the upstream row carries no
// millis attribute.
type RaceResult struct {
	Position       string `json:"position"`
	PositionText   string `json:"positionText"`
	Points         string `json:"points"`
	GridPosition   string `json:"gridPosition"`
	Laps           string `json:"laps"`
	Status         string `json:"status"`
	StatusID       string `json:"statusId"`
	RaceTimeMillis string `json:"raceTime,omitempty"`
	RaceTimeText   string `json:"raceTimeText"`

	Driver      DriverSnapshot      `json:"driver"`
	Constructor ConstructorSnapshot `json:"constructor"`
	FastestLap  *FastestLap         `json:"fastestLap,omitempty"`

	DriverName string `json:"driverName"`
	Team       string `json:"team"`
}

// ResultsResponse is the payload returned by /races/results.
type ResultsResponse struct {
	Race    RaceHeader   `json:"raceDetails"`
	Results []RaceResult `json:"allResults"`
}
