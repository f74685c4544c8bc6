package extract

import (
	"f1-data-service/internal/assets"
	"f1-data-service/internal/countries"
	"f1-data-service/internal/doctree"
	"f1-data-service/internal/domain"
)

// ConstructorStandings extracts one round's constructor championship table.
func ConstructorStandings(root *doctree.Node) (*domain.StandingsResponse, error) {
	nodes := root.ElementsByTag("ConstructorStanding")
	if len(nodes) == 0 {
		return nil, &StructuralError{Document: "constructor_standings", Element: "ConstructorStanding"}
	}

	list := root.FirstByTag("StandingsList")
	resp := &domain.StandingsResponse{
		Season:    attr(list, "N/A", "season"),
		Round:     attr(list, "N/A", "round"),
		Standings: make([]domain.ConstructorStanding, 0, len(nodes)),
	}
	for _, node := range nodes {
		resp.Standings = append(resp.Standings, standingFromNode(node))
	}
	return resp, nil
}

func standingFromNode(node *doctree.Node) domain.ConstructorStanding {
	constructor := node.FirstByTag("Constructor")
	constructorID := attr(constructor, "N/A", "constructorId")
	if mapped, ok := constructorIDOverrides[constructorID]; ok {
		constructorID = mapped
	}
	nationality := childText(node, "Unknown", "Nationality", "nationality")

	return domain.ConstructorStanding{
		TeamName:      childText(node, "N/A", "Name", "name"),
		Nationality:   nationality,
		Points:        attr(node, "0", "points"),
		Wins:          attr(node, "0", "wins"),
		Position:      attr(node, "0", "position"),
		ConstructorID: constructorID,
		WikipediaURL:  attr(constructor, "N/A", "url"),
		Logo:          assets.TeamLogoURL(constructorID),
		FlagURLs:      assets.FlagURLs(countries.CodeFor(nationality)),
	}
}
