package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %q, got %q", defaultPort, cfg.Port)
	}
	if cfg.Season != defaultSeason {
		t.Fatalf("expected default season %q, got %q", defaultSeason, cfg.Season)
	}
	if cfg.Feed != defaultFeed {
		t.Fatalf("expected default feed %q, got %q", defaultFeed, cfg.Feed)
	}
	if cfg.Ergast.BaseURL != defaultErgastBaseURL {
		t.Fatalf("expected default ergast base, got %q", cfg.Ergast.BaseURL)
	}
	if cfg.Wikipedia.BaseURL != defaultWikipediaBaseURL {
		t.Fatalf("expected default wikipedia base, got %q", cfg.Wikipedia.BaseURL)
	}
	if cfg.Enrichment.MaxInFlight != defaultEnrichMaxInFlight {
		t.Fatalf("expected default max in flight, got %d", cfg.Enrichment.MaxInFlight)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envSeason, "2023")
	t.Setenv(envFeed, "ergast")
	t.Setenv(envPollInterval, "5m")
	t.Setenv(envEnrichMaxInFlight, "3")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected overridden port, got %q", cfg.Port)
	}
	if cfg.Season != "2023" {
		t.Fatalf("expected overridden season, got %q", cfg.Season)
	}
	if cfg.Feed != "ergast" {
		t.Fatalf("expected overridden feed, got %q", cfg.Feed)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("expected 5m poll interval, got %v", cfg.PollInterval)
	}
	if cfg.Enrichment.MaxInFlight != 3 {
		t.Fatalf("expected overridden max in flight, got %d", cfg.Enrichment.MaxInFlight)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
}

func TestEnvHelpersRejectInvalidValues(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")
	t.Setenv(envEnrichMaxInFlight, "-2")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval for invalid input, got %v", cfg.PollInterval)
	}
	if cfg.Enrichment.MaxInFlight != defaultEnrichMaxInFlight {
		t.Fatalf("expected default max in flight for invalid input, got %d", cfg.Enrichment.MaxInFlight)
	}
}
