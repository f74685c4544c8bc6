// Package ergast fetches raw season documents from an Ergast-compatible API.
// The drivers and standings endpoints serve XML markup; the schedule and
// results endpoints serve JSON. Callers hand the payload to the parse step
// unchanged.
package ergast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"f1-data-service/internal/feed"
)

// Config controls how the ergast client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches raw feed documents from the Ergast API.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an ergast client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchDrivers retrieves the season's driver list as XML markup.
func (c *Client) FetchDrivers(ctx context.Context, season string) (feed.RawDocument, error) {
	return c.get(ctx, feed.EndpointDrivers, fmt.Sprintf("%s/%s/drivers", c.baseURL, season))
}

// FetchRaceSchedule retrieves the season's race schedule as JSON.
func (c *Client) FetchRaceSchedule(ctx context.Context, season string) (feed.RawDocument, error) {
	return c.get(ctx, feed.EndpointRaceSchedule, fmt.Sprintf("%s/%s.json", c.baseURL, season))
}

// FetchRaceResults retrieves one round's results as JSON.
func (c *Client) FetchRaceResults(ctx context.Context, season, round string) (feed.RawDocument, error) {
	return c.get(ctx, feed.EndpointRaceResults, fmt.Sprintf("%s/%s/%s/results.json", c.baseURL, season, round))
}

// FetchConstructorStandings retrieves one round's constructor standings as XML markup.
func (c *Client) FetchConstructorStandings(ctx context.Context, season, round string) (feed.RawDocument, error) {
	return c.get(ctx, feed.EndpointConstructorStandings, fmt.Sprintf("%s/%s/%s/constructorStandings", c.baseURL, season, round))
}

func (c *Client) get(ctx context.Context, endpoint, url string) (feed.RawDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &feed.StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return feed.RawDocument(doc), nil
}
