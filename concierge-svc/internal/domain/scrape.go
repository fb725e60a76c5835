package domain

import "github.com/shopspring/decimal"

type ScrapeSource string

const (
	SourceWebScrape    ScrapeSource = "web_scrape"
	SourceDemoFallback ScrapeSource = "demo_fallback"
)

type ScrapedMenuItem struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

// ScrapeResult with Source == SourceDemoFallback means nothing priced was found on the page.
type ScrapeResult struct {
	Success bool              `json:"success"`
	Source  ScrapeSource      `json:"source"`
	Menu    []ScrapedMenuItem `json:"menu"`
}

type ScrapeRequest struct {
	URL string `json:"url" validate:"required,http_url"`
}
