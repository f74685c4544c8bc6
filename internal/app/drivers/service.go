// Package drivers coordinates the season driver pipeline: fetch, extract,
// enrich, and serve from the store.
package drivers

import (
	"context"
	"fmt"
	"log/slog"

	"f1-data-service/internal/doctree"
	"f1-data-service/internal/domain"
	"f1-data-service/internal/extract"
	"f1-data-service/internal/feed"
	"f1-data-service/internal/logging"
)

// Store defines the contract for persisting and retrieving drivers.
type Store interface {
	ListDrivers() []domain.Driver
	GetDriver(id string) (domain.Driver, bool)
	SetDrivers(drivers []domain.Driver)
}

// Enricher attaches supplementary details to a driver collection.
type Enricher interface {
	Drivers(ctx context.Context, drivers []domain.Driver) []domain.Driver
}

// Service coordinates driver operations.
type Service struct {
	feed     feed.Client
	store    Store
	enricher Enricher
	logger   *slog.Logger
}

// NewService constructs a Service. The enricher may be nil, in which case
// drivers are served without supplementary details.
func NewService(client feed.Client, store Store, enricher Enricher, logger *slog.Logger) *Service {
	return &Service{feed: client, store: store, enricher: enricher, logger: logger}
}

// Refresh fetches the season's driver document, extracts and enriches the
// drivers, and replaces the stored snapshot.
func (s *Service) Refresh(ctx context.Context, season string) error {
	raw, err := s.feed.FetchDrivers(ctx, season)
	if err != nil {
		return fmt.Errorf("fetch drivers: %w", err)
	}
	doc, err := doctree.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse drivers: %w", err)
	}
	extracted, err := extract.Drivers(doc)
	if err != nil {
		return fmt.Errorf("extract drivers: %w", err)
	}

	if s.enricher != nil {
		extracted = s.enricher.Drivers(ctx, extracted)
	}
	s.store.SetDrivers(extracted)

	logging.Info(s.logger, "driver snapshot refreshed",
		slog.String(logging.FieldSeason, season),
		slog.Int("drivers", len(extracted)),
	)
	return nil
}

// Drivers returns the current driver snapshot.
func (s *Service) Drivers() []domain.Driver {
	return s.store.ListDrivers()
}

// DriverByID returns a single driver if present.
func (s *Service) DriverByID(id string) (domain.Driver, bool) {
	return s.store.GetDriver(id)
}
