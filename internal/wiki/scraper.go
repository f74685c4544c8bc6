package wiki

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"f1-data-service/internal/domain"
	"f1-data-service/internal/metrics"
)

// Enrichment kinds recorded against the metrics recorder.
const (
	KindDriverDetails = "driver_details"
	KindTeamLogo      = "team_logo"
)

const defaultSeason = "2024"

// Scraper extracts driver details and team logos from fetched articles. Any
// fetch or parse failure degrades to defaults; the scraper never returns an
// error to its caller. The season names the year-prefixed info-table rows
// ("<season> team", "<season> position").
type Scraper struct {
	fetcher Fetcher
	season  string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewScraper builds a scraper for the given season. Logger and recorder may
// be nil; an empty season uses the default.
func NewScraper(fetcher Fetcher, season string, logger *slog.Logger, recorder *metrics.Recorder) *Scraper {
	if season == "" {
		season = defaultSeason
	}
	return &Scraper{fetcher: fetcher, season: season, logger: logger, metrics: recorder}
}

// DriverDetails scrapes the info table and career sections of a driver's
// article. A failed lookup yields the fully-defaulted enrichment.
func (s *Scraper) DriverDetails(ctx context.Context, articleURL string) domain.Enrichment {
	start := time.Now()
	doc, err := s.fetch(ctx, articleURL)
	if err != nil {
		s.metrics.RecordEnrichment(KindDriverDetails, time.Since(start), err)
		s.warn(ctx, "driver details lookup failed", articleURL, err)
		return domain.DefaultEnrichment()
	}

	infobox := doc.Find(".infobox")
	detail := func(label string) string {
		return infoboxDetail(infobox, label)
	}

	enrichment := domain.Enrichment{
		Height:      detail("Height"),
		Weight:      detail("Weight"),
		TeamHistory: teamHistory(doc),
		CurrentTeam: strings.TrimSpace(strings.SplitN(detail(s.season+" team"), "[", 2)[0]),
		CareerHighlights: domain.CareerHighlights{
			Championships: leadingInt(detail("Championships")),
			Entries:       leadingInt(detail("Entries")),
			Wins:          leadingInt(detail("Wins")),
			Podiums:       leadingInt(detail("Podiums")),
			CareerPoints:  leadingFloat(detail("Career points")),
			PolePositions: leadingInt(detail("Pole positions")),
			FastestLaps:   leadingInt(detail("Fastest laps")),
			FirstEntry:    detail("First entry"),
			FirstWin:      detail("First win"),
			LastWin:       detail("Last win"),
			LastEntry:     detail("Last entry"),
			LastPosition:  detail(s.season + " position"),
		},
	}
	s.metrics.RecordEnrichment(KindDriverDetails, time.Since(start), nil)
	return enrichment
}

// TeamLogo locates a constructor logo on the team's article. It returns ""
// when no plausible logo is found or the article is unreachable.
func (s *Scraper) TeamLogo(ctx context.Context, articleURL string) string {
	start := time.Now()
	doc, err := s.fetch(ctx, articleURL)
	if err != nil {
		s.metrics.RecordEnrichment(KindTeamLogo, time.Since(start), err)
		s.warn(ctx, "team logo lookup failed", articleURL, err)
		return ""
	}

	src, found := doc.Find(`img[alt*="logo"], img.logo, .logo img`).First().Attr("src")
	if !found {
		// Fall back to an infobox image inside a plausible logo bounding box.
		src, found = doc.Find(".infobox img").FilterFunction(func(_ int, img *goquery.Selection) bool {
			width := leadingInt(img.AttrOr("width", ""))
			height := leadingInt(img.AttrOr("height", ""))
			return width > 50 && width < 300 && height > 30 && height < 200
		}).First().Attr("src")
	}

	s.metrics.RecordEnrichment(KindTeamLogo, time.Since(start), nil)
	if !found {
		return ""
	}
	return absoluteURL(src)
}

func (s *Scraper) fetch(ctx context.Context, articleURL string) (*goquery.Document, error) {
	segment, err := ArticleSegment(articleURL)
	if err != nil {
		return nil, err
	}
	return s.fetcher.FetchArticle(ctx, segment)
}

func (s *Scraper) warn(ctx context.Context, msg, articleURL string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.WarnContext(ctx, msg,
		slog.String("article_url", articleURL),
		slog.Any("error", err),
	)
}

// infoboxDetail returns the trimmed data-cell text of the first info-table
// row whose header cell contains the label, or "N/A".
func infoboxDetail(infobox *goquery.Selection, label string) string {
	row := infobox.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return strings.Contains(tr.Find("th").Text(), label)
	}).First()
	if text := strings.TrimSpace(row.Find("td").Text()); text != "" {
		return text
	}
	return "N/A"
}

// teamHistory returns the list entries under the "Formula One career"
// heading that read as team affiliations.
func teamHistory(doc *goquery.Document) []string {
	history := []string{}
	heading := doc.Find(".mw-parser-output h2").FilterFunction(func(_ int, h *goquery.Selection) bool {
		return strings.Contains(h.Text(), "Formula One career")
	}).First()
	heading.NextFiltered("ul").Find("li").Each(func(_ int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())
		if strings.Contains(text, "with") {
			history = append(history, text)
		}
	})
	return history
}

// absoluteURL forces a scheme onto protocol-relative article image sources.
func absoluteURL(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

// numericPrefix returns the leading signed number of a trimmed string, with
// at most one decimal point when allowDot is set.
func numericPrefix(s string, allowDot bool) string {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	seenDot := false
	for i < len(s) {
		if s[i] >= '0' && s[i] <= '9' {
			i++
			continue
		}
		if allowDot && s[i] == '.' && !seenDot {
			seenDot = true
			i++
			continue
		}
		break
	}
	return s[:i]
}

// leadingInt parses the leading integer of a string, ignoring whatever
// follows, so "2 (2024)" reads as 2. Anything unparsable is 0.
func leadingInt(s string) int {
	n, err := strconv.Atoi(numericPrefix(s, false))
	if err != nil {
		return 0
	}
	return n
}

// leadingFloat parses the leading decimal number of a string, so
// "3098.5 points" reads as 3098.5. Anything unparsable is 0.
func leadingFloat(s string) float64 {
	f, err := strconv.ParseFloat(numericPrefix(s, true), 64)
	if err != nil {
		return 0
	}
	return f
}
