package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Season       string
	PollInterval Duration
	Feed         string
	Ergast       ErgastConfig
	Wikipedia    WikipediaConfig
	Enrichment   EnrichmentConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Season:       envOrDefault(envSeason, defaultSeason),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Feed:         envOrDefault(envFeed, defaultFeed),
		Ergast:       loadErgast(),
		Wikipedia:    loadWikipedia(),
		Enrichment:   loadEnrichment(),
		Metrics:      loadMetrics(),
	}
}
