package extract

import (
	"f1-data-service/internal/doctree"
	"f1-data-service/internal/domain"
	"f1-data-service/internal/format"
)

// RaceResults extracts one round's results document. The header keeps the
// feed's round attribute as raw text for display; it is not used as a join
// key.
func RaceResults(root *doctree.Node) (*domain.ResultsResponse, error) {
	race := root.FirstByTag("Race")
	if race == nil {
		return nil, &StructuralError{Document: "race_results", Element: "Race"}
	}

	// Direct-child lookups: the result rows below carry their own Time
	// records, which a recursive search could hit first.
	header := domain.RaceHeader{
		RaceName: directText(race, "N/A", "RaceName", "raceName"),
		Season:   attr(race, "N/A", "season"),
		Round:    attr(race, "N/A", "round"),
		Date:     directText(race, "N/A", "Date", "date"),
		Time:     directText(race, "N/A", "Time", "time"),
		Circuit:  circuitFromNode(race.FirstByTag("Circuit")),
		Location: locationFromNode(race.FirstByTag("Location")),
	}

	nodes := race.ElementsByTag("Result")
	results := make([]domain.RaceResult, 0, len(nodes))
	for _, node := range nodes {
		results = append(results, resultFromNode(node))
	}

	return &domain.ResultsResponse{Race: header, Results: results}, nil
}

func resultFromNode(node *doctree.Node) domain.RaceResult {
	driver := driverSnapshotFromNode(node.FirstByTag("Driver"))
	constructor := constructorSnapshotFromNode(node.FirstByTag("Constructor"))
	status := child(node, "Status", "status")
	// The row's own Time record, not the fastest lap's nested one. The JSON
	// upstream nests the display text inside the record; markup carries it as
	// element text.
	raceTime := child(node, "Time", "time")
	raceTimeText := raceTime.Text()
	if raceTimeText == "" {
		raceTimeText = raceTime.Attr("time")
	}

	result := domain.RaceResult{
		Position:       attr(node, "N/A", "position"),
		PositionText:   attr(node, "N/A", "positionText"),
		Points:         attr(node, "0", "points"),
		GridPosition:   childText(node, "N/A", "Grid", "grid"),
		Laps:           childText(node, "N/A", "Laps", "laps"),
		Status:         status.Text(),
		StatusID:       status.AttrOr("statusId", "N/A"),
		RaceTimeMillis: raceTime.Attr("millis"),
		RaceTimeText:   raceTimeText,

		Driver:      driver,
		Constructor: constructor,

		DriverName: format.DriverName(driver.GivenName, driver.FamilyName),
		Team:       constructor.Name,
	}
	if result.Status == "" {
		result.Status = "N/A"
	}
	if result.RaceTimeText == "" {
		result.RaceTimeText = "N/A"
	}

	if lap := node.FirstByTag("FastestLap"); lap != nil {
		speed := lap.FirstByTag("AverageSpeed")
		avgSpeed := speed.Text()
		if avgSpeed == "" {
			avgSpeed = speed.Attr("speed")
		}
		result.FastestLap = &domain.FastestLap{
			Rank:         lap.AttrOr("rank", "N/A"),
			Lap:          lap.AttrOr("lap", "N/A"),
			Time:         childText(lap, "N/A", "Time", "time"),
			AverageSpeed: avgSpeed,
			SpeedUnits:   speed.AttrOr("units", "N/A"),
		}
		if result.FastestLap.AverageSpeed == "" {
			result.FastestLap.AverageSpeed = "N/A"
		}
	}

	return result
}

func driverSnapshotFromNode(node *doctree.Node) domain.DriverSnapshot {
	return domain.DriverSnapshot{
		DriverID:        attr(node, "N/A", "driverId"),
		Code:            attr(node, "N/A", "code"),
		PermanentNumber: childText(node, "N/A", "PermanentNumber", "permanentNumber"),
		GivenName:       childText(node, "N/A", "GivenName", "givenName"),
		FamilyName:      childText(node, "N/A", "FamilyName", "familyName"),
		DateOfBirth:     childText(node, "N/A", "DateOfBirth", "dateOfBirth"),
		Nationality:     childText(node, "N/A", "Nationality", "nationality"),
	}
}

func constructorSnapshotFromNode(node *doctree.Node) domain.ConstructorSnapshot {
	return domain.ConstructorSnapshot{
		ConstructorID: attr(node, "N/A", "constructorId"),
		Name:          childText(node, "N/A", "Name", "name"),
		Nationality:   childText(node, "N/A", "Nationality", "nationality"),
	}
}
