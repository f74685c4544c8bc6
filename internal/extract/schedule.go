package extract

import (
	"f1-data-service/internal/doctree"
	"f1-data-service/internal/domain"
)

// Races extracts the season schedule. Round is assigned by 1-based ingestion
// order, which is the canonical round used to look up results later; the
// feed's own round attribute is not trusted for cross-referencing.
func Races(root *doctree.Node) ([]domain.Race, error) {
	nodes := root.ElementsByTag("Race")
	if len(nodes) == 0 {
		return nil, &StructuralError{Document: "race_schedule", Element: "Race"}
	}

	races := make([]domain.Race, 0, len(nodes))
	for i, node := range nodes {
		races = append(races, raceFromNode(node, i+1))
	}
	return races, nil
}

func raceFromNode(node *doctree.Node, round int) domain.Race {
	return domain.Race{
		Season:       attr(node, "N/A", "season"),
		Round:        round,
		Date:         childText(node, "N/A", "Date", "date"),
		Time:         childText(node, "N/A", "Time", "time"),
		Circuit:      circuitFromNode(node.FirstByTag("Circuit")),
		Location:     locationFromNode(node.FirstByTag("Location")),
		WikipediaURL: attr(node, "N/A", "url"),
	}
}

func circuitFromNode(node *doctree.Node) domain.Circuit {
	return domain.Circuit{
		CircuitID:  attr(node, "N/A", "circuitId"),
		CircuitRef: attr(node, "N/A", "circuitRef"),
		Name:       childText(node, "N/A", "CircuitName", "circuitName"),
	}
}

func locationFromNode(node *doctree.Node) domain.Location {
	return domain.Location{
		Locality: childText(node, "N/A", "Locality", "locality"),
		Country:  childText(node, "N/A", "Country", "country"),
		Lat:      attr(node, "", "lat"),
		Long:     attr(node, "", "long"),
	}
}
