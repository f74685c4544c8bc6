// Package feed defines how raw upstream documents are fetched. The pipeline
// parses and extracts; clients here only move bytes.
package feed

import "context"

// RawDocument is an unparsed upstream payload, XML markup or JSON depending
// on endpoint.
type RawDocument []byte

// Endpoint names used for logs and metrics.
const (
	EndpointDrivers              = "drivers"
	EndpointRaceSchedule         = "race_schedule"
	EndpointRaceResults          = "race_results"
	EndpointConstructorStandings = "constructor_standings"
)

// Client fetches raw season documents from an upstream feed.
type Client interface {
	FetchDrivers(ctx context.Context, season string) (RawDocument, error)
	FetchRaceSchedule(ctx context.Context, season string) (RawDocument, error)
	FetchRaceResults(ctx context.Context, season, round string) (RawDocument, error)
	FetchConstructorStandings(ctx context.Context, season, round string) (RawDocument, error)
}
