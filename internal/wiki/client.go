// Package wiki fetches encyclopedia articles and scrapes the driver and
// constructor details that the feed does not carry.
package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultFetchTimeout = 10 * time.Second

// ErrNoArticleSegment is returned when a reference URL has no wiki path.
var ErrNoArticleSegment = errors.New("wiki: no article segment in url")

var articlePattern = regexp.MustCompile(`wiki/(.+)`)

// ArticleSegment pulls the article path segment out of a reference URL.
func ArticleSegment(url string) (string, error) {
	match := articlePattern.FindStringSubmatch(url)
	if match == nil {
		return "", fmt.Errorf("%w: %s", ErrNoArticleSegment, url)
	}
	return match[1], nil
}

// Fetcher retrieves a parsed article document for a wiki path segment.
type Fetcher interface {
	FetchArticle(ctx context.Context, segment string) (*goquery.Document, error)
}

// Config controls how articles are fetched. BaseURL may point at the
// encyclopedia host directly or at a same-origin proxy prefix.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches articles over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an article fetch client.
func NewClient(cfg Config) *Client {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: client,
	}
}

// FetchArticle retrieves <base>/wiki/<segment> and parses the markup.
func (c *Client) FetchArticle(ctx context.Context, segment string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/wiki/"+segment, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wiki: unexpected status %d for article %s", resp.StatusCode, segment)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}
