package testutil

import (
	"context"
	"sync/atomic"

	"f1-data-service/internal/feed"
)

// GoodFeed returns the configured documents with no error.
type GoodFeed struct {
	Drivers   feed.RawDocument
	Schedule  feed.RawDocument
	Results   feed.RawDocument
	Standings feed.RawDocument
}

func (f GoodFeed) FetchDrivers(ctx context.Context, season string) (feed.RawDocument, error) {
	_ = ctx
	_ = season
	return f.Drivers, nil
}

func (f GoodFeed) FetchRaceSchedule(ctx context.Context, season string) (feed.RawDocument, error) {
	_ = ctx
	_ = season
	return f.Schedule, nil
}

func (f GoodFeed) FetchRaceResults(ctx context.Context, season, round string) (feed.RawDocument, error) {
	_ = ctx
	_ = season
	_ = round
	return f.Results, nil
}

func (f GoodFeed) FetchConstructorStandings(ctx context.Context, season, round string) (feed.RawDocument, error) {
	_ = ctx
	_ = season
	_ = round
	return f.Standings, nil
}

// ErrFeed always returns the provided error.
type ErrFeed struct {
	Err error
}

func (f ErrFeed) FetchDrivers(ctx context.Context, season string) (feed.RawDocument, error) {
	return nil, f.Err
}

func (f ErrFeed) FetchRaceSchedule(ctx context.Context, season string) (feed.RawDocument, error) {
	return nil, f.Err
}

func (f ErrFeed) FetchRaceResults(ctx context.Context, season, round string) (feed.RawDocument, error) {
	return nil, f.Err
}

func (f ErrFeed) FetchConstructorStandings(ctx context.Context, season, round string) (feed.RawDocument, error) {
	return nil, f.Err
}

// FlakyFeed fails the first FailCount calls to each endpoint, then delegates.
type FlakyFeed struct {
	Inner     feed.Client
	Err       error
	FailCount int32

	calls atomic.Int32
}

func (f *FlakyFeed) attempt() error {
	if f.calls.Add(1) <= f.FailCount {
		return f.Err
	}
	return nil
}

// Calls reports the total number of fetches seen across all endpoints.
func (f *FlakyFeed) Calls() int {
	return int(f.calls.Load())
}

func (f *FlakyFeed) FetchDrivers(ctx context.Context, season string) (feed.RawDocument, error) {
	if err := f.attempt(); err != nil {
		return nil, err
	}
	return f.Inner.FetchDrivers(ctx, season)
}

func (f *FlakyFeed) FetchRaceSchedule(ctx context.Context, season string) (feed.RawDocument, error) {
	if err := f.attempt(); err != nil {
		return nil, err
	}
	return f.Inner.FetchRaceSchedule(ctx, season)
}

func (f *FlakyFeed) FetchRaceResults(ctx context.Context, season, round string) (feed.RawDocument, error) {
	if err := f.attempt(); err != nil {
		return nil, err
	}
	return f.Inner.FetchRaceResults(ctx, season, round)
}

func (f *FlakyFeed) FetchConstructorStandings(ctx context.Context, season, round string) (feed.RawDocument, error) {
	if err := f.attempt(); err != nil {
		return nil, err
	}
	return f.Inner.FetchConstructorStandings(ctx, season, round)
}
