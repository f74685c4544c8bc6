package config

const (
	envErgastBaseURL = "ERGAST_BASE_URL"

	defaultErgastBaseURL = "https://ergast.com/api/f1"
)

// ErgastConfig controls how we talk to the Ergast feed.
type ErgastConfig struct {
	BaseURL string
}

func loadErgast() ErgastConfig {
	return ErgastConfig{
		BaseURL: envOrDefault(envErgastBaseURL, defaultErgastBaseURL),
	}
}
