package ergast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"f1-data-service/internal/feed"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
}

func TestClientBuildsEndpointPaths(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`ok`))
	})

	ctx := context.Background()
	if _, err := client.FetchDrivers(ctx, "2024"); err != nil {
		t.Fatalf("FetchDrivers: %v", err)
	}
	if _, err := client.FetchRaceSchedule(ctx, "2024"); err != nil {
		t.Fatalf("FetchRaceSchedule: %v", err)
	}
	if _, err := client.FetchRaceResults(ctx, "2024", "5"); err != nil {
		t.Fatalf("FetchRaceResults: %v", err)
	}
	if _, err := client.FetchConstructorStandings(ctx, "2024", "24"); err != nil {
		t.Fatalf("FetchConstructorStandings: %v", err)
	}

	want := []string{
		"/2024/drivers",
		"/2024.json",
		"/2024/5/results.json",
		"/2024/24/constructorStandings",
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d requests, got %d", len(want), len(paths))
	}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("request %d: expected path %q, got %q", i, p, paths[i])
		}
	}
}

func TestClientReturnsDocumentBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<MRData></MRData>`))
	})

	doc, err := client.FetchDrivers(context.Background(), "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(doc) != `<MRData></MRData>` {
		t.Fatalf("unexpected document: %s", doc)
	}
}

func TestClientNonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.FetchRaceResults(context.Background(), "2024", "99")
	if err == nil {
		t.Fatal("expected an error")
	}
	statusErr, ok := feed.AsStatusError(err)
	if !ok {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", statusErr.StatusCode)
	}
	if statusErr.Endpoint != feed.EndpointRaceResults {
		t.Fatalf("unexpected endpoint: %s", statusErr.Endpoint)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base url, got %q", got)
	}
	if got := normalizeBaseURL("http://example.test/api/"); got != "http://example.test/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", got)
	}
}
