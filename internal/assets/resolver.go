package assets

import (
	"context"
	"log/slog"

	"f1-data-service/internal/metrics"
)

// Resolver walks the circuit image cascade against a Prober. Probes within
// one cascade are strictly sequential; a later tier is only tried after the
// earlier tier failed.
type Resolver struct {
	prober  Prober
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewResolver builds a cascade resolver. Logger and recorder may be nil.
func NewResolver(prober Prober, logger *slog.Logger, recorder *metrics.Recorder) *Resolver {
	return &Resolver{prober: prober, logger: logger, metrics: recorder}
}

// ResolveCircuitImage probes the four candidate URLs for a circuit header
// image in order and returns the first verified one. When every tier fails it
// returns the last candidate unverified; a URL always comes back.
func (r *Resolver) ResolveCircuitImage(ctx context.Context, country, locality string) (string, bool) {
	candidates := CircuitImageCandidates(country, locality)

	var last string
	for i, candidate := range candidates {
		last = candidate
		ok := r.prober != nil && r.prober.ProbeImage(ctx, candidate)
		r.metrics.RecordProbe(i+1, ok)
		if ok {
			return candidate, true
		}
	}

	r.metrics.RecordCascadeExhausted()
	if r.logger != nil {
		r.logger.WarnContext(ctx, "no verified circuit image",
			slog.String("country", country),
			slog.String("locality", locality),
			slog.String("fallback_url", last),
		)
	}
	return last, false
}
