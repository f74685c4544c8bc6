package config

const (
	envWikipediaBaseURL = "WIKIPEDIA_PROXY_BASE_URL"

	defaultWikipediaBaseURL = "https://en.wikipedia.org"
)

// WikipediaConfig controls the article-fetch proxy. Articles are requested
// as <BaseURL>/wiki/<segment>; in deployments fronted by a same-origin proxy
// the base points at the proxy prefix instead of the encyclopedia host.
type WikipediaConfig struct {
	BaseURL string
}

func loadWikipedia() WikipediaConfig {
	return WikipediaConfig{
		BaseURL: envOrDefault(envWikipediaBaseURL, defaultWikipediaBaseURL),
	}
}
