package assets

import (
	"context"
	"strings"
	"testing"

	"f1-data-service/internal/metrics"
	"f1-data-service/internal/testutil"
)

// scriptedProber answers probes in call order from a fixed script.
type scriptedProber struct {
	answers []bool
	calls   []string
}

func (p *scriptedProber) ProbeImage(ctx context.Context, url string) bool {
	_ = ctx
	p.calls = append(p.calls, url)
	if len(p.calls) > len(p.answers) {
		return false
	}
	return p.answers[len(p.calls)-1]
}

func TestResolveCircuitImageShortCircuitsOnFirstTier(t *testing.T) {
	prober := &scriptedProber{answers: []bool{true}}
	recorder := metrics.NewRecorder()
	resolver := NewResolver(prober, nil, recorder)

	url, verified := resolver.ResolveCircuitImage(context.Background(), "Bahrain", "Sakhir")
	if !verified {
		t.Fatal("expected a verified url")
	}
	if !strings.HasSuffix(url, "/Bahrain") {
		t.Fatalf("expected tier-1 country url, got %q", url)
	}
	if len(prober.calls) != 1 {
		t.Fatalf("expected 1 probe, got %d", len(prober.calls))
	}
	if recorder.ProbeAttempts(1) != 1 || recorder.ProbeAttempts(2) != 0 {
		t.Fatal("expected only tier 1 to be recorded")
	}
}

func TestResolveCircuitImageFallsThroughToLocality(t *testing.T) {
	prober := &scriptedProber{answers: []bool{false, false, false, true}}
	resolver := NewResolver(prober, nil, nil)

	url, verified := resolver.ResolveCircuitImage(context.Background(), "United States", "Las Vegas")
	if !verified {
		t.Fatal("expected a verified url")
	}
	if !strings.HasSuffix(url, "/Las Vegas") {
		t.Fatalf("expected tier-4 locality url, got %q", url)
	}
	if len(prober.calls) != 4 {
		t.Fatalf("expected 4 probes, got %d", len(prober.calls))
	}
	if !strings.HasSuffix(prober.calls[0], "/United_States") {
		t.Fatalf("tier 1 should use underscored country, got %q", prober.calls[0])
	}
	if !strings.HasSuffix(prober.calls[2], "/Las_Vegas") {
		t.Fatalf("tier 3 should use underscored locality, got %q", prober.calls[2])
	}
}

func TestResolveCircuitImageExhaustionReturnsLastCandidate(t *testing.T) {
	prober := &scriptedProber{}
	logger, buf := testutil.NewBufferLogger()
	recorder := metrics.NewRecorder()
	resolver := NewResolver(prober, logger, recorder)

	url, verified := resolver.ResolveCircuitImage(context.Background(), "Nowhere", "Elsewhere")
	if verified {
		t.Fatal("expected an unverified url")
	}
	if !strings.HasSuffix(url, "/Elsewhere") {
		t.Fatalf("expected the last candidate, got %q", url)
	}
	if len(prober.calls) != 4 {
		t.Fatalf("expected 4 probes, got %d", len(prober.calls))
	}
	if recorder.CascadesExhausted() != 1 {
		t.Fatalf("expected 1 exhausted cascade, got %d", recorder.CascadesExhausted())
	}
	if !strings.Contains(buf.String(), "no verified circuit image") {
		t.Fatalf("expected an exhaustion warning, got %q", buf.String())
	}
}

func TestCircuitImageCandidatesOrder(t *testing.T) {
	candidates := CircuitImageCandidates("great britain", "Silverstone")
	if len(candidates) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(candidates))
	}
	wantSuffixes := []string{"/great_britain", "/great britain", "/Silverstone", "/Silverstone"}
	for i, suffix := range wantSuffixes {
		if !strings.HasSuffix(candidates[i], suffix) {
			t.Fatalf("candidate %d: expected suffix %q, got %q", i, suffix, candidates[i])
		}
	}
}
