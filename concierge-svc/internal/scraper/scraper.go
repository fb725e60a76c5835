// Package scraper extracts priced menu items from arbitrary restaurant pages.
//
// The extraction is a single-pass heuristic: every list item, generic
// container and table row whose flattened text looks like one menu entry
// and contains a dollar price becomes a candidate item. There are no
// correctness guarantees beyond best effort.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"hotel-concierge/apperr"
	"hotel-concierge/concierge-svc/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultNameMaxLen = 50
	DefaultMaxItems   = 20
	DefaultMinTextLen = 5
	DefaultMaxTextLen = 200
	DefaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	candidateSelector = "li, div, tr"
	maxBodyBytes      = 5 << 20
)

var (
	currencyPattern = regexp.MustCompile(`(?i)(\$|USD)\s?(\d{1,3}(\.\d{2})?)`)
	lineBreaks      = regexp.MustCompile(`[\r\n]+`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Options holds the thresholds of the heuristic. Text length bounds are exclusive.
type Options struct {
	Timeout    time.Duration
	NameMaxLen int
	MaxItems   int
	MinTextLen int
	MaxTextLen int
	UserAgent  string
}

func DefaultOptions() Options {
	return Options{
		Timeout:    DefaultTimeout,
		NameMaxLen: DefaultNameMaxLen,
		MaxItems:   DefaultMaxItems,
		MinTextLen: DefaultMinTextLen,
		MaxTextLen: DefaultMaxTextLen,
		UserAgent:  DefaultUserAgent,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Timeout <= 0 {
		o.Timeout = def.Timeout
	}
	if o.NameMaxLen <= 0 {
		o.NameMaxLen = def.NameMaxLen
	}
	if o.MaxItems <= 0 {
		o.MaxItems = def.MaxItems
	}
	if o.MinTextLen <= 0 {
		o.MinTextLen = def.MinTextLen
	}
	if o.MaxTextLen <= 0 {
		o.MaxTextLen = def.MaxTextLen
	}
	if o.UserAgent == "" {
		o.UserAgent = def.UserAgent
	}
	return o
}

type Scraper struct {
	client *http.Client
	opts   Options
}

func New(opts Options) *Scraper {
	opts = opts.withDefaults()
	return &Scraper{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
	}
}

// Scrape fetches pageURL and extracts its menu. Every fetch or parse failure
// is reported as apperr.ErrUpstreamFetch; a page without prices is not an error.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (domain.ScrapeResult, error) {
	body, err := s.fetch(ctx, pageURL)
	if err != nil {
		return domain.ScrapeResult{}, fmt.Errorf("%w: %v", apperr.ErrUpstreamFetch, err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return domain.ScrapeResult{}, fmt.Errorf("%w: parse %s: %v", apperr.ErrUpstreamFetch, pageURL, err)
	}

	items := Extract(doc, s.opts)
	if len(items) == 0 {
		return Fallback(pageURL), nil
	}
	return domain.ScrapeResult{
		Success: true,
		Source:  domain.SourceWebScrape,
		Menu:    items,
	}, nil
}

func (s *Scraper) fetch(ctx context.Context, pageURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %d", pageURL, resp.StatusCode)
	}
	return resp.Body, nil
}

// Extract walks the candidate elements in document order and returns at most
// opts.MaxItems items, deduplicated by exact name.
func Extract(doc *goquery.Document, opts Options) []domain.ScrapedMenuItem {
	opts = opts.withDefaults()
	items := []domain.ScrapedMenuItem{}
	seen := make(map[string]struct{})

	doc.Find(candidateSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		item, ok := parseCandidate(flattenText(sel), opts)
		if !ok {
			return true
		}
		if _, dup := seen[item.Name]; dup {
			return true
		}
		seen[item.Name] = struct{}{}
		items = append(items, item)
		return len(items) < opts.MaxItems
	})

	return items
}

func parseCandidate(text string, opts Options) (domain.ScrapedMenuItem, bool) {
	text = strings.TrimSpace(text)
	length := utf8.RuneCountInString(text)
	if length <= opts.MinTextLen || length >= opts.MaxTextLen {
		return domain.ScrapedMenuItem{}, false
	}

	match := currencyPattern.FindStringSubmatch(text)
	if match == nil {
		return domain.ScrapedMenuItem{}, false
	}
	price, err := decimal.NewFromString(match[2])
	if err != nil {
		return domain.ScrapedMenuItem{}, false
	}

	remainder := strings.Replace(text, match[0], "", 1)
	var segments []string
	for _, line := range lineBreaks.Split(remainder, -1) {
		line = strings.TrimSpace(whitespaceRuns.ReplaceAllString(line, " "))
		if line != "" {
			segments = append(segments, line)
		}
	}
	if len(segments) == 0 {
		return domain.ScrapedMenuItem{}, false
	}

	name := strings.TrimSpace(truncate(segments[0], opts.NameMaxLen))
	if name == "" {
		return domain.ScrapedMenuItem{}, false
	}

	item := domain.ScrapedMenuItem{Name: name, Price: price}
	if len(segments) > 1 {
		item.Description = segments[1]
	}
	return item, true
}

// flattenText concatenates the text nodes under sel; <br> becomes a line break
// and script/style content is skipped.
func flattenText(sel *goquery.Selection) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "br":
				sb.WriteByte('\n')
				return
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return sb.String()
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// Fallback is the canned result returned when a page yields no priced items.
func Fallback(pageURL string) domain.ScrapeResult {
	return domain.ScrapeResult{
		Success: true,
		Source:  domain.SourceDemoFallback,
		Menu: []domain.ScrapedMenuItem{
			{Name: "Scraped Burger", Price: decimal.RequireFromString("14.00"), Description: "Imported from " + pageURL},
			{Name: "Website Special Pizza", Price: decimal.RequireFromString("18.00")},
			{Name: "Soup of the Day", Price: decimal.RequireFromString("8.50")},
		},
	}
}
