package server

import (
	"log/slog"
	"strings"

	"f1-data-service/internal/config"
	"f1-data-service/internal/feed"
	"f1-data-service/internal/feed/ergast"
	"f1-data-service/internal/feed/fixture"
	"f1-data-service/internal/logging"
	"f1-data-service/internal/metrics"
)

const (
	feedErgast  = "ergast"
	feedFixture = "fixture"
)

// feedFactory assembles the feed client with the shared retry wrapper.
type feedFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newFeedFactory(logger *slog.Logger, metrics *metrics.Recorder) feedFactory {
	return feedFactory{logger: logger, metrics: metrics}
}

func (f feedFactory) build(cfg config.Config) feed.Client {
	return feed.NewRetryingClient(f.selectFeed(cfg), f.logger, f.metrics, 0, 0)
}

func (f feedFactory) selectFeed(cfg config.Config) feed.Client {
	switch strings.ToLower(strings.TrimSpace(cfg.Feed)) {
	case feedErgast:
		return ergast.NewClient(ergast.Config{BaseURL: cfg.Ergast.BaseURL})
	case feedFixture, "":
		return fixture.New()
	default:
		logging.Warn(f.logger, "unknown feed, using bundled fixture data",
			slog.String(logging.FieldFeed, cfg.Feed),
		)
		return fixture.New()
	}
}
