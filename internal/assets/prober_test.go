package assets

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestHTTPProberAcceptsRealImage(t *testing.T) {
	payload := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		if r.Method == http.MethodGet {
			w.Write(payload)
		}
	}))
	defer server.Close()

	prober := NewHTTPProber(server.Client())
	if !prober.ProbeImage(context.Background(), server.URL) {
		t.Fatal("expected probe to succeed")
	}
}

func TestHTTPProberRejectsNonImageContentType(t *testing.T) {
	var gets int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets++
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	prober := NewHTTPProber(server.Client())
	if prober.ProbeImage(context.Background(), server.URL) {
		t.Fatal("expected probe to fail")
	}
	if gets != 0 {
		t.Fatal("expected no decode fetch after content-type rejection")
	}
}

func TestHTTPProberRejectsBogusImageBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		if r.Method == http.MethodGet {
			w.Write([]byte("not an image at all"))
		}
	}))
	defer server.Close()

	prober := NewHTTPProber(server.Client())
	if prober.ProbeImage(context.Background(), server.URL) {
		t.Fatal("expected probe to fail on undecodable body")
	}
}

func TestHTTPProberRejectsMissingAsset(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	prober := NewHTTPProber(server.Client())
	if prober.ProbeImage(context.Background(), server.URL+"/missing.png") {
		t.Fatal("expected probe to fail on 404")
	}
}
