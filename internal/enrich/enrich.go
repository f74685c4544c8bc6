// Package enrich fans enrichment work out over extracted collections. Each
// item's lookup is independent; a failed lookup degrades that item alone and
// output order always matches input order.
package enrich

import (
	"context"
	"sync"

	"f1-data-service/internal/domain"
	"f1-data-service/internal/extract"
)

const defaultMaxInFlight = 8

// DriverDetailer scrapes supplementary driver attributes from an article.
type DriverDetailer interface {
	DriverDetails(ctx context.Context, articleURL string) domain.Enrichment
}

// LogoFinder locates a constructor logo on the team's article.
type LogoFinder interface {
	TeamLogo(ctx context.Context, articleURL string) string
}

// CircuitImageResolver verifies a circuit header image through the cascade.
type CircuitImageResolver interface {
	ResolveCircuitImage(ctx context.Context, country, locality string) (string, bool)
}

// Aggregator attaches enrichment results to extracted collections.
type Aggregator struct {
	details     DriverDetailer
	logos       LogoFinder
	circuits    CircuitImageResolver
	maxInFlight int
}

// New builds an aggregator. maxInFlight bounds concurrent lookups per batch;
// values <= 0 use the default.
func New(details DriverDetailer, logos LogoFinder, circuits CircuitImageResolver, maxInFlight int) *Aggregator {
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}
	return &Aggregator{
		details:     details,
		logos:       logos,
		circuits:    circuits,
		maxInFlight: maxInFlight,
	}
}

// Drivers resolves supplementary details for every driver concurrently and
// attaches them. The returned slice preserves the input order.
func (a *Aggregator) Drivers(ctx context.Context, drivers []domain.Driver) []domain.Driver {
	out := make([]domain.Driver, len(drivers))
	copy(out, drivers)
	if a.details == nil {
		return out
	}
	a.forEach(ctx, len(out), func(ctx context.Context, i int) {
		enrichment := a.details.DriverDetails(ctx, out[i].WikipediaURL)
		out[i].Enrichment = &enrichment
	})
	return out
}

// Races resolves a verified circuit image for every race concurrently. The
// asset lookup applies the country spelling overrides; the race's displayed
// location is untouched.
func (a *Aggregator) Races(ctx context.Context, races []domain.Race) []domain.Race {
	out := make([]domain.Race, len(races))
	copy(out, races)
	if a.circuits == nil {
		return out
	}
	a.forEach(ctx, len(out), func(ctx context.Context, i int) {
		country := extract.AssetCountry(out[i].Location.Country)
		url, _ := a.circuits.ResolveCircuitImage(ctx, country, out[i].Location.Locality)
		out[i].CircuitImage = url
	})
	return out
}

// Standings resolves an article logo for every constructor concurrently.
// Constructors whose article yields no logo keep an empty ArticleLogo.
func (a *Aggregator) Standings(ctx context.Context, standings []domain.ConstructorStanding) []domain.ConstructorStanding {
	out := make([]domain.ConstructorStanding, len(standings))
	copy(out, standings)
	if a.logos == nil {
		return out
	}
	a.forEach(ctx, len(out), func(ctx context.Context, i int) {
		out[i].ArticleLogo = a.logos.TeamLogo(ctx, out[i].WikipediaURL)
	})
	return out
}

// forEach runs fn for every index with bounded concurrency. Each goroutine
// writes only its own index, so no locking is needed.
func (a *Aggregator) forEach(ctx context.Context, n int, fn func(context.Context, int)) {
	sem := make(chan struct{}, a.maxInFlight)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(ctx, i)
		}(i)
	}
	wg.Wait()
}
