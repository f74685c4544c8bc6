package wiki

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestArticleSegment(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"http://en.wikipedia.org/wiki/Max_Verstappen", "Max_Verstappen"},
		{"https://en.wikipedia.org/wiki/McLaren", "McLaren"},
		{"/wikipedia/wiki/Charles_Leclerc", "Charles_Leclerc"},
	}
	for _, tc := range cases {
		got, err := ArticleSegment(tc.url)
		if err != nil {
			t.Fatalf("ArticleSegment(%q): unexpected error: %v", tc.url, err)
		}
		if got != tc.want {
			t.Fatalf("ArticleSegment(%q): expected %q, got %q", tc.url, tc.want, got)
		}
	}
}

func TestArticleSegmentMissing(t *testing.T) {
	_, err := ArticleSegment("https://example.org/nothing-here")
	if !errors.Is(err, ErrNoArticleSegment) {
		t.Fatalf("expected ErrNoArticleSegment, got %v", err)
	}
}

func TestClientFetchesArticlePath(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`<html><body><h1>Article</h1></body></html>`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/", HTTPClient: server.Client()})
	doc, err := client.FetchArticle(context.Background(), "Max_Verstappen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/wiki/Max_Verstappen" {
		t.Fatalf("unexpected path %q", path)
	}
	if doc.Find("h1").Text() != "Article" {
		t.Fatal("expected parsed article content")
	}
}

func TestClientRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if _, err := client.FetchArticle(context.Background(), "Missing_Article"); err == nil {
		t.Fatal("expected an error for a missing article")
	}
}
