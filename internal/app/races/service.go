// Package races coordinates the schedule pipeline and on-demand race results.
package races

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"f1-data-service/internal/doctree"
	"f1-data-service/internal/domain"
	"f1-data-service/internal/extract"
	"f1-data-service/internal/feed"
	"f1-data-service/internal/logging"
)

// Store defines the contract for persisting and retrieving races.
type Store interface {
	ListRaces() []domain.Race
	GetRace(round int) (domain.Race, bool)
	SetRaces(races []domain.Race)
}

// Enricher resolves circuit images for a race collection.
type Enricher interface {
	Races(ctx context.Context, races []domain.Race) []domain.Race
}

// Service coordinates schedule and results operations.
type Service struct {
	feed     feed.Client
	store    Store
	enricher Enricher
	logger   *slog.Logger
}

// NewService constructs a Service. The enricher may be nil, in which case
// races are served without verified circuit images.
func NewService(client feed.Client, store Store, enricher Enricher, logger *slog.Logger) *Service {
	return &Service{feed: client, store: store, enricher: enricher, logger: logger}
}

// Refresh fetches the season schedule, extracts and enriches the races, and
// replaces the stored snapshot.
func (s *Service) Refresh(ctx context.Context, season string) error {
	raw, err := s.feed.FetchRaceSchedule(ctx, season)
	if err != nil {
		return fmt.Errorf("fetch race schedule: %w", err)
	}
	doc, err := doctree.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse race schedule: %w", err)
	}
	extracted, err := extract.Races(doc)
	if err != nil {
		return fmt.Errorf("extract race schedule: %w", err)
	}

	if s.enricher != nil {
		extracted = s.enricher.Races(ctx, extracted)
	}
	s.store.SetRaces(extracted)

	logging.Info(s.logger, "schedule snapshot refreshed",
		slog.String(logging.FieldSeason, season),
		slog.Int("races", len(extracted)),
	)
	return nil
}

// Races returns the current schedule snapshot.
func (s *Service) Races() []domain.Race {
	return s.store.ListRaces()
}

// RaceByRound returns a single race by its canonical round.
func (s *Service) RaceByRound(round int) (domain.Race, bool) {
	return s.store.GetRace(round)
}

// Results fetches and extracts one round's results on demand. Results are
// not cached; every call reaches the feed.
func (s *Service) Results(ctx context.Context, season string, round int) (*domain.ResultsResponse, error) {
	raw, err := s.feed.FetchRaceResults(ctx, season, strconv.Itoa(round))
	if err != nil {
		return nil, fmt.Errorf("fetch race results: %w", err)
	}
	doc, err := doctree.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse race results: %w", err)
	}
	resp, err := extract.RaceResults(doc)
	if err != nil {
		return nil, fmt.Errorf("extract race results: %w", err)
	}
	return resp, nil
}
