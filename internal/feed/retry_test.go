package feed_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"f1-data-service/internal/feed"
	"f1-data-service/internal/feed/fixture"
	"f1-data-service/internal/metrics"
	"f1-data-service/internal/testutil"
)

func TestRetryingClientSucceedsFirstTry(t *testing.T) {
	client := feed.NewRetryingClient(fixture.New(), nil, nil, 3, time.Millisecond)

	doc, err := client.FetchDrivers(context.Background(), "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("expected a document")
	}
}

func TestRetryingClientRecoversAfterFailures(t *testing.T) {
	flaky := &testutil.FlakyFeed{
		Inner:     fixture.New(),
		Err:       errors.New("upstream hiccup"),
		FailCount: 2,
	}
	logger, buf := testutil.NewBufferLogger()
	recorder := metrics.NewRecorder()
	client := feed.NewRetryingClient(flaky, logger, recorder, 3, time.Millisecond)

	doc, err := client.FetchRaceSchedule(context.Background(), "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("expected a document")
	}
	if flaky.Calls() != 3 {
		t.Fatalf("expected 3 fetch attempts, got %d", flaky.Calls())
	}
	if got := buf.String(); got == "" {
		t.Fatal("expected retry warnings to be logged")
	}
	snap := recorder.FeedSnapshot(feed.EndpointRaceSchedule)
	if snap.Calls != 1 || snap.Errors != 0 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestRetryingClientGivesUpAfterMaxAttempts(t *testing.T) {
	wantErr := errors.New("upstream down")
	flaky := &testutil.FlakyFeed{
		Inner:     fixture.New(),
		Err:       wantErr,
		FailCount: 100,
	}
	recorder := metrics.NewRecorder()
	client := feed.NewRetryingClient(flaky, nil, recorder, 3, time.Millisecond)

	_, err := client.FetchRaceResults(context.Background(), "2024", "1")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if flaky.Calls() != 3 {
		t.Fatalf("expected 3 fetch attempts, got %d", flaky.Calls())
	}
	snap := recorder.FeedSnapshot(feed.EndpointRaceResults)
	if snap.Calls != 1 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestRetryingClientNilInner(t *testing.T) {
	client := feed.NewRetryingClient(nil, nil, nil, 1, time.Millisecond)

	_, err := client.FetchConstructorStandings(context.Background(), "2024", "24")
	if !errors.Is(err, feed.ErrFeedUnavailable) {
		t.Fatalf("expected ErrFeedUnavailable, got %v", err)
	}
}
