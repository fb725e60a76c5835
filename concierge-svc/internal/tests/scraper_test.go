package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel-concierge/apperr"
	"hotel-concierge/concierge-svc/internal/domain"
	"hotel-concierge/concierge-svc/internal/scraper"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func extract(t *testing.T, page string, opts scraper.Options) []domain.ScrapedMenuItem {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return scraper.Extract(doc, opts)
}

func TestScraper_ListItemWithBreak(t *testing.T) {
	srv := newPageServer(t, `<html><body><ul><li>Caesar Salad $14.00<br>Fresh romaine</li></ul></body></html>`)

	result, err := scraper.New(scraper.DefaultOptions()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, domain.SourceWebScrape, result.Source)
	require.Len(t, result.Menu, 1)
	assert.Equal(t, "Caesar Salad", result.Menu[0].Name)
	assert.True(t, decimal.RequireFromString("14.00").Equal(result.Menu[0].Price))
	assert.Equal(t, "Fresh romaine", result.Menu[0].Description)
}

func TestScraper_FallbackWhenNoPrices(t *testing.T) {
	srv := newPageServer(t, `<html><body><div><p>Welcome to our restaurant, call us to order.</p></div></body></html>`)

	result, err := scraper.New(scraper.DefaultOptions()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, domain.SourceDemoFallback, result.Source)
	require.Len(t, result.Menu, 3)
	assert.Equal(t, "Scraped Burger", result.Menu[0].Name)
	assert.Equal(t, "Imported from "+srv.URL, result.Menu[0].Description)
	assert.Equal(t, "Website Special Pizza", result.Menu[1].Name)
	assert.Equal(t, "Soup of the Day", result.Menu[2].Name)
	assert.True(t, decimal.RequireFromString("8.50").Equal(result.Menu[2].Price))
}

func TestScraper_SendsBrowserUserAgent(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.UserAgent()
		io.WriteString(w, `<li>Club Sandwich $18.00</li>`)
	}))
	defer srv.Close()

	_, err := scraper.New(scraper.DefaultOptions()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, scraper.DefaultUserAgent, gotAgent)
}

func TestScraper_FetchFailures(t *testing.T) {
	forbidden := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer forbidden.Close()

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		io.WriteString(w, `<li>Club Sandwich $18.00</li>`)
	}))
	defer slow.Close()

	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name string
		url  string
	}{
		{name: "non-2xx", url: forbidden.URL},
		{name: "timeout", url: slow.URL},
		{name: "connection refused", url: closedURL},
	}

	s := scraper.New(scraper.Options{Timeout: 50 * time.Millisecond})
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result, err := s.Scrape(context.Background(), testCase.url)
			assert.True(t, errors.Is(err, apperr.ErrUpstreamFetch))
			assert.Empty(t, result.Menu)
		})
	}
}

func TestExtract_DeduplicatesExactNamesOnly(t *testing.T) {
	items := extract(t, `<ul>
		<li>Club Sandwich $18.00</li>
		<li>Club Sandwich $18.00</li>
		<li>club sandwich $17.00</li>
	</ul>`, scraper.DefaultOptions())

	require.Len(t, items, 2)
	assert.Equal(t, "Club Sandwich", items[0].Name)
	assert.Equal(t, "club sandwich", items[1].Name)

	names := map[string]bool{}
	for _, item := range items {
		assert.False(t, names[item.Name], "duplicate name %q", item.Name)
		names[item.Name] = true
	}
}

func TestExtract_PriceMatchesSubstring(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		wantName  string
		wantPrice string
	}{
		{name: "whole dollars", page: `<li>Diet Coke $4</li>`, wantName: "Diet Coke", wantPrice: "4"},
		{name: "cents", page: `<li>Iced Tea $ 3.75</li>`, wantName: "Iced Tea", wantPrice: "3.75"},
		{name: "usd token", page: `<div>Sparkling Water USD 6.00</div>`, wantName: "Sparkling Water", wantPrice: "6.00"},
		{name: "lowercase usd in table row", page: `<table><tr><td>Espresso</td><td>usd 2.50</td></tr></table>`, wantName: "Espresso", wantPrice: "2.50"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			items := extract(t, testCase.page, scraper.DefaultOptions())
			require.Len(t, items, 1)
			assert.Equal(t, testCase.wantName, items[0].Name)
			assert.True(t, decimal.RequireFromString(testCase.wantPrice).Equal(items[0].Price),
				"price %s, want %s", items[0].Price, testCase.wantPrice)
		})
	}
}

func TestExtract_TextLengthWindow(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantName string
	}{
		{name: "price only", text: "$1"},
		{name: "five runes", text: "Ab $1"},
		{name: "six runes", text: "Abc $1", wantName: "Abc"},
		{name: "five runes of multibyte text", text: "Çà $1"},
		{name: "six runes of multibyte text", text: "Çàé $1", wantName: "Çàé"},
		{name: "199 runes", text: strings.Repeat("a", 193) + " $9.00", wantName: strings.Repeat("a", 50)},
		{name: "200 runes", text: strings.Repeat("a", 194) + " $9.00"},
		{name: "padding is trimmed", text: "  Abc $1  ", wantName: "Abc"},
		{name: "long prose", text: strings.Repeat("word ", 45) + "$9.00"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			items := extract(t, `<ul><li>`+testCase.text+`</li></ul>`, scraper.DefaultOptions())
			if testCase.wantName == "" {
				assert.Empty(t, items)
				return
			}
			require.Len(t, items, 1)
			assert.Equal(t, testCase.wantName, items[0].Name)
		})
	}
}

func TestExtract_TruncatesName(t *testing.T) {
	name := strings.Repeat("A", 60)

	items := extract(t, `<li>`+name+` $5.00</li>`, scraper.DefaultOptions())
	require.Len(t, items, 1)
	assert.Equal(t, strings.Repeat("A", 50), items[0].Name)

	opts := scraper.DefaultOptions()
	opts.NameMaxLen = 10
	items = extract(t, `<li>`+name+` $5.00</li>`, opts)
	require.Len(t, items, 1)
	assert.Equal(t, strings.Repeat("A", 10), items[0].Name)
}

func TestExtract_CapsItemsInDocumentOrder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "<li>Dish %02d $%d.00</li>", i, 10+i)
	}
	sb.WriteString("</ul>")

	items := extract(t, sb.String(), scraper.DefaultOptions())
	require.Len(t, items, 20)
	assert.Equal(t, "Dish 00", items[0].Name)
	assert.Equal(t, "Dish 19", items[19].Name)
}

func TestExtract_SkipsScriptContent(t *testing.T) {
	items := extract(t, `<div><script>var price = "$5.00";</script>Opening hours</div>`, scraper.DefaultOptions())
	assert.Empty(t, items)
}

func TestScrapeResult_JSONShape(t *testing.T) {
	result := scraper.Fallback("https://example.com")
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	payload := string(raw)

	assert.Contains(t, payload, `"success":true`)
	assert.Contains(t, payload, `"source":"demo_fallback"`)
	assert.Contains(t, payload, `{"name":"Scraped Burger","price":14,"description":"Imported from https://example.com"}`)
	assert.Contains(t, payload, `{"name":"Soup of the Day","price":8.5}`)
}
