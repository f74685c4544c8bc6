package assets

import (
	"context"
	"image"
	"net/http"
	"strings"
	"time"

	// Decoders for the formats the CDN serves.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const defaultProbeTimeout = 5 * time.Second

// Prober reports whether a URL serves a loadable image. Implementations must
// treat every failure as "no", never as an error.
type Prober interface {
	ProbeImage(ctx context.Context, url string) bool
}

// HTTPProber checks a candidate with a HEAD request and, when the content
// type claims an image, confirms by decoding the image header from a GET.
type HTTPProber struct {
	client *http.Client
}

// NewHTTPProber builds a prober around the given client, or a default one
// with a short timeout when nil.
func NewHTTPProber(client *http.Client) *HTTPProber {
	if client == nil {
		client = &http.Client{Timeout: defaultProbeTimeout}
	}
	return &HTTPProber{client: client}
}

func (p *HTTPProber) ProbeImage(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return false
	}
	return p.decodes(ctx, url)
}

func (p *HTTPProber) decodes(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	_, _, err = image.DecodeConfig(resp.Body)
	return err == nil
}
