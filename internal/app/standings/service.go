// Package standings serves the constructor championship table on demand.
package standings

import (
	"context"
	"fmt"
	"log/slog"

	"f1-data-service/internal/doctree"
	"f1-data-service/internal/domain"
	"f1-data-service/internal/extract"
	"f1-data-service/internal/feed"
)

// Enricher resolves article logos for a standings collection.
type Enricher interface {
	Standings(ctx context.Context, standings []domain.ConstructorStanding) []domain.ConstructorStanding
}

// Service coordinates constructor standings operations.
type Service struct {
	feed     feed.Client
	enricher Enricher
	logger   *slog.Logger
}

// NewService constructs a Service. The enricher may be nil, in which case
// standings are served without article logos.
func NewService(client feed.Client, enricher Enricher, logger *slog.Logger) *Service {
	return &Service{feed: client, enricher: enricher, logger: logger}
}

// Standings fetches and extracts one round's constructor table on demand.
func (s *Service) Standings(ctx context.Context, season, round string) (*domain.StandingsResponse, error) {
	raw, err := s.feed.FetchConstructorStandings(ctx, season, round)
	if err != nil {
		return nil, fmt.Errorf("fetch constructor standings: %w", err)
	}
	doc, err := doctree.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse constructor standings: %w", err)
	}
	resp, err := extract.ConstructorStandings(doc)
	if err != nil {
		return nil, fmt.Errorf("extract constructor standings: %w", err)
	}

	if s.enricher != nil {
		resp.Standings = s.enricher.Standings(ctx, resp.Standings)
	}
	return resp, nil
}
