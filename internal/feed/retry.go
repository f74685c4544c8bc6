package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"f1-data-service/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingClient wraps a Client with retry/backoff behavior per fetch.
type retryingClient struct {
	inner       Client
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	initial     time.Duration
}

// NewRetryingClient wraps the given client with exponential-backoff retries.
// If maxAttempts/initialInterval are <= 0, defaults are used.
func NewRetryingClient(inner Client, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, initialInterval time.Duration) Client {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingClient{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		initial:     initialInterval,
	}
}

func (r *retryingClient) FetchDrivers(ctx context.Context, season string) (RawDocument, error) {
	return r.fetch(ctx, EndpointDrivers, func() (RawDocument, error) {
		return r.inner.FetchDrivers(ctx, season)
	})
}

func (r *retryingClient) FetchRaceSchedule(ctx context.Context, season string) (RawDocument, error) {
	return r.fetch(ctx, EndpointRaceSchedule, func() (RawDocument, error) {
		return r.inner.FetchRaceSchedule(ctx, season)
	})
}

func (r *retryingClient) FetchRaceResults(ctx context.Context, season, round string) (RawDocument, error) {
	return r.fetch(ctx, EndpointRaceResults, func() (RawDocument, error) {
		return r.inner.FetchRaceResults(ctx, season, round)
	})
}

func (r *retryingClient) FetchConstructorStandings(ctx context.Context, season, round string) (RawDocument, error) {
	return r.fetch(ctx, EndpointConstructorStandings, func() (RawDocument, error) {
		return r.inner.FetchConstructorStandings(ctx, season, round)
	})
}

func (r *retryingClient) fetch(ctx context.Context, endpoint string, fn func() (RawDocument, error)) (RawDocument, error) {
	if r.inner == nil {
		return nil, ErrFeedUnavailable
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initial
	// maxAttempts counts the first call, so retries are one fewer.
	wrapped := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)

	var doc RawDocument
	start := time.Now()
	err := backoff.RetryNotify(
		func() error {
			var fetchErr error
			doc, fetchErr = fn()
			return fetchErr
		},
		wrapped,
		func(err error, next time.Duration) {
			logWithEndpoint(ctx, r.logger, slog.LevelWarn, endpoint, "feed fetch retry",
				slog.Duration("next_attempt_in", next),
				slog.Any("error", err),
			)
		},
	)

	if r.metrics != nil {
		r.metrics.RecordFeedAttempt(endpoint, time.Since(start), err)
	}
	if err != nil {
		logWithEndpoint(ctx, r.logger, slog.LevelWarn, endpoint, "feed fetch failed", slog.Any("error", err))
		return nil, err
	}
	return doc, nil
}
