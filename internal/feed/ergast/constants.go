package ergast

import "time"

const (
	defaultBaseURL     = "https://ergast.com/api/f1"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
)
