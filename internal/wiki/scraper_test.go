package wiki

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"f1-data-service/internal/domain"
	"f1-data-service/internal/metrics"
	"f1-data-service/internal/testutil"
)

const driverArticleHTML = `<html><body>
<div class="mw-parser-output">
  <table class="infobox">
    <tr><th>Height</th><td>1.81 m</td></tr>
    <tr><th>Weight</th><td>72 kg</td></tr>
    <tr><th>Championships</th><td>4 (2021, 2022, 2023, 2024)</td></tr>
    <tr><th>Entries</th><td>209 (209 starts)</td></tr>
    <tr><th>Wins</th><td>63</td></tr>
    <tr><th>Podiums</th><td>112</td></tr>
    <tr><th>Career points</th><td>3023.5</td></tr>
    <tr><th>Pole positions</th><td>40</td></tr>
    <tr><th>Fastest laps</th><td>33</td></tr>
    <tr><th>First entry</th><td>2015 Australian Grand Prix</td></tr>
    <tr><th>First win</th><td>2016 Spanish Grand Prix</td></tr>
    <tr><th>Last win</th><td>2024 Sao Paulo Grand Prix</td></tr>
    <tr><th>Last entry</th><td>2024 Abu Dhabi Grand Prix</td></tr>
    <tr><th>2024 team</th><td>Red Bull Racing[a]</td></tr>
    <tr><th>2024 position</th><td>1st (437 pts)</td></tr>
  </table>
  <h2>Formula One career</h2>
  <ul>
    <li>2015-2016 with Toro Rosso</li>
    <li>2016-present with Red Bull Racing</li>
    <li>Four consecutive championships</li>
  </ul>
</div>
</body></html>`

const teamArticleHTML = `<html><body>
<table class="infobox">
  <tr><td><img src="//upload.example.org/banner.png" width="400" height="400"></td></tr>
  <tr><td><img src="//upload.example.org/crest.svg.png" width="120" height="80"></td></tr>
</table>
</body></html>`

const teamArticleWithAltHTML = `<html><body>
<img src="//upload.example.org/team-logo.png" alt="Team logo" width="500" height="500">
</body></html>`

// stubFetcher serves one in-memory article regardless of segment.
type stubFetcher struct {
	html     string
	err      error
	segments []string
}

func (f *stubFetcher) FetchArticle(ctx context.Context, segment string) (*goquery.Document, error) {
	_ = ctx
	f.segments = append(f.segments, segment)
	if f.err != nil {
		return nil, f.err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(f.html))
}

func TestDriverDetailsScrape(t *testing.T) {
	fetcher := &stubFetcher{html: driverArticleHTML}
	scraper := NewScraper(fetcher, "2024", nil, nil)

	got := scraper.DriverDetails(context.Background(), "http://en.wikipedia.org/wiki/Max_Verstappen")

	if len(fetcher.segments) != 1 || fetcher.segments[0] != "Max_Verstappen" {
		t.Fatalf("unexpected fetched segments: %v", fetcher.segments)
	}
	if got.Height != "1.81 m" || got.Weight != "72 kg" {
		t.Fatalf("unexpected physique: %+v", got)
	}
	if got.CurrentTeam != "Red Bull Racing" {
		t.Fatalf("expected footnote marker stripped, got %q", got.CurrentTeam)
	}

	highlights := got.CareerHighlights
	if highlights.Championships != 4 {
		t.Fatalf("expected 4 championships from %q-style text, got %d", "4 (2021...)", highlights.Championships)
	}
	if highlights.Entries != 209 || highlights.Wins != 63 || highlights.Podiums != 112 {
		t.Fatalf("unexpected counts: %+v", highlights)
	}
	if highlights.CareerPoints != 3023.5 {
		t.Fatalf("expected 3023.5 career points, got %v", highlights.CareerPoints)
	}
	if highlights.PolePositions != 40 || highlights.FastestLaps != 33 {
		t.Fatalf("unexpected pole/fastest counts: %+v", highlights)
	}
	if highlights.FirstEntry != "2015 Australian Grand Prix" || highlights.LastPosition != "1st (437 pts)" {
		t.Fatalf("unexpected entry fields: %+v", highlights)
	}
}

func TestDriverDetailsTeamHistoryFilter(t *testing.T) {
	scraper := NewScraper(&stubFetcher{html: driverArticleHTML}, "2024", nil, nil)

	got := scraper.DriverDetails(context.Background(), "http://en.wikipedia.org/wiki/Max_Verstappen")

	want := []string{"2015-2016 with Toro Rosso", "2016-present with Red Bull Racing"}
	if len(got.TeamHistory) != len(want) {
		t.Fatalf("expected %d history entries, got %v", len(want), got.TeamHistory)
	}
	for i, entry := range want {
		if got.TeamHistory[i] != entry {
			t.Fatalf("history entry %d: expected %q, got %q", i, entry, got.TeamHistory[i])
		}
	}
}

func TestDriverDetailsFollowConfiguredSeason(t *testing.T) {
	article := `<html><body>
<table class="infobox">
  <tr><th>2024 team</th><td>Red Bull Racing</td></tr>
  <tr><th>2024 position</th><td>1st (437 pts)</td></tr>
  <tr><th>2025 team</th><td>Aston Martin[b]</td></tr>
  <tr><th>2025 position</th><td>4th (212 pts)</td></tr>
</table>
</body></html>`
	scraper := NewScraper(&stubFetcher{html: article}, "2025", nil, nil)

	got := scraper.DriverDetails(context.Background(), "http://en.wikipedia.org/wiki/Max_Verstappen")

	if got.CurrentTeam != "Aston Martin" {
		t.Fatalf("expected the configured season's team row, got %q", got.CurrentTeam)
	}
	if got.CareerHighlights.LastPosition != "4th (212 pts)" {
		t.Fatalf("expected the configured season's position row, got %q", got.CareerHighlights.LastPosition)
	}
}

func TestDriverDetailsMissingRowsFallBack(t *testing.T) {
	scraper := NewScraper(&stubFetcher{html: `<html><body><table class="infobox"></table></body></html>`}, "2024", nil, nil)

	got := scraper.DriverDetails(context.Background(), "http://en.wikipedia.org/wiki/Nobody")

	if got.Height != "N/A" || got.Weight != "N/A" || got.CurrentTeam != "N/A" {
		t.Fatalf("expected N/A text fields, got %+v", got)
	}
	if got.CareerHighlights.Championships != 0 || got.CareerHighlights.CareerPoints != 0 {
		t.Fatalf("expected zero numeric fields, got %+v", got.CareerHighlights)
	}
	if len(got.TeamHistory) != 0 {
		t.Fatalf("expected empty team history, got %v", got.TeamHistory)
	}
}

func TestDriverDetailsFetchFailureYieldsDefaults(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	recorder := metrics.NewRecorder()
	scraper := NewScraper(&stubFetcher{err: errors.New("proxy down")}, "2024", logger, recorder)

	got := scraper.DriverDetails(context.Background(), "http://en.wikipedia.org/wiki/Max_Verstappen")

	if got.Height != domain.DefaultEnrichment().Height {
		t.Fatalf("expected default enrichment, got %+v", got)
	}
	if got.TeamHistory == nil || len(got.TeamHistory) != 0 {
		t.Fatalf("expected empty, non-nil team history, got %#v", got.TeamHistory)
	}
	if !strings.Contains(buf.String(), "driver details lookup failed") {
		t.Fatalf("expected a warning, got %q", buf.String())
	}
	snap := recorder.EnrichmentSnapshot(KindDriverDetails)
	if snap.Calls != 1 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestDriverDetailsBadArticleURL(t *testing.T) {
	scraper := NewScraper(&stubFetcher{html: driverArticleHTML}, "2024", nil, nil)

	got := scraper.DriverDetails(context.Background(), "not a wiki url")
	if got.Height != "N/A" {
		t.Fatalf("expected defaults for an unparsable url, got %+v", got)
	}
}

func TestTeamLogoFromAltText(t *testing.T) {
	scraper := NewScraper(&stubFetcher{html: teamArticleWithAltHTML}, "2024", nil, nil)

	got := scraper.TeamLogo(context.Background(), "http://en.wikipedia.org/wiki/McLaren")
	if got != "https://upload.example.org/team-logo.png" {
		t.Fatalf("unexpected logo %q", got)
	}
}

func TestTeamLogoFromInfoboxBoundingBox(t *testing.T) {
	scraper := NewScraper(&stubFetcher{html: teamArticleHTML}, "2024", nil, nil)

	got := scraper.TeamLogo(context.Background(), "http://en.wikipedia.org/wiki/McLaren")
	if got != "https://upload.example.org/crest.svg.png" {
		t.Fatalf("expected the logo-sized infobox image, got %q", got)
	}
}

func TestTeamLogoNotFound(t *testing.T) {
	scraper := NewScraper(&stubFetcher{html: `<html><body><p>No images here.</p></body></html>`}, "2024", nil, nil)

	if got := scraper.TeamLogo(context.Background(), "http://en.wikipedia.org/wiki/McLaren"); got != "" {
		t.Fatalf("expected no logo, got %q", got)
	}
}

func TestTeamLogoFetchFailure(t *testing.T) {
	recorder := metrics.NewRecorder()
	scraper := NewScraper(&stubFetcher{err: errors.New("proxy down")}, "2024", nil, recorder)

	if got := scraper.TeamLogo(context.Background(), "http://en.wikipedia.org/wiki/McLaren"); got != "" {
		t.Fatalf("expected no logo on failure, got %q", got)
	}
	snap := recorder.EnrichmentSnapshot(KindTeamLogo)
	if snap.Calls != 1 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestLeadingNumberParsing(t *testing.T) {
	cases := []struct {
		in      string
		wantInt int
	}{
		{"4 (2021, 2022)", 4},
		{"209 (209 starts)", 209},
		{"63", 63},
		{"N/A", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := leadingInt(tc.in); got != tc.wantInt {
			t.Fatalf("leadingInt(%q): expected %d, got %d", tc.in, tc.wantInt, got)
		}
	}

	if got := leadingFloat("3023.5 career points"); got != 3023.5 {
		t.Fatalf("leadingFloat: expected 3023.5, got %v", got)
	}
	if got := leadingFloat("N/A"); got != 0 {
		t.Fatalf("leadingFloat: expected 0, got %v", got)
	}
}
