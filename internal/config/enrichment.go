package config

const (
	envEnrichMaxInFlight = "ENRICH_MAX_IN_FLIGHT"

	// Bounded fan-out keeps the article fetches from hammering the proxy.
	defaultEnrichMaxInFlight = 8
)

// EnrichmentConfig bounds the enrichment fan-out.
type EnrichmentConfig struct {
	MaxInFlight int
}

func loadEnrichment() EnrichmentConfig {
	return EnrichmentConfig{
		MaxInFlight: intEnvOrDefault(envEnrichMaxInFlight, defaultEnrichMaxInFlight),
	}
}
