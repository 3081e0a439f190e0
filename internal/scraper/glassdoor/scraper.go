package glassdoor

import (
	"context"
	"fmt"
	"log"
	"time"

	"glassdoor-scraper/internal/config"
	"glassdoor-scraper/internal/scraper"
)

// SeenCache remembers listing URLs across runs.
type SeenCache interface {
	IsSeen(url string) bool
	Add(urls []string)
}

// Stats describes the last Scrape call.
type Stats struct {
	Links   int
	Seen    int
	Scraped int
	Skipped int
}

var _ scraper.Scraper = (*GlassdoorScraper)(nil)

type GlassdoorScraper struct {
	loader scraper.PageLoader
	sels   Selectors
	delay  time.Duration
	cache  SeenCache
	stats  Stats
}

// NewGlassdoorScraper builds a scraper over loader. cache may be nil.
func NewGlassdoorScraper(cfg *config.Config, loader scraper.PageLoader, cache SeenCache) (*GlassdoorScraper, error) {
	sels, err := cfg.Selectors.Compile()
	if err != nil {
		return nil, err
	}
	return &GlassdoorScraper{
		loader: loader,
		sels:   sels,
		delay:  cfg.PageDelay(),
		cache:  cache,
	}, nil
}

func (s *GlassdoorScraper) Name() string {
	return "Glassdoor"
}

func (s *GlassdoorScraper) Stats() Stats {
	return s.stats
}

// Scrape visits every listing linked from the search results, one at a time.
// A listing that fails to load or parse is logged and skipped.
// On cancellation the listings collected so far are returned with ctx.Err().
func (s *GlassdoorScraper) Scrape(ctx context.Context, keyword, place string) ([]scraper.Listing, error) {
	s.stats = Stats{}
	listings := make([]scraper.Listing, 0)

	searchURL := SearchURL(keyword, place)
	log.Printf("🔍 Searching Glassdoor: %s", searchURL)

	page, err := s.loadResults(ctx, searchURL)
	if err != nil {
		return listings, fmt.Errorf("load search page: %w", err)
	}
	links, err := ExtractLinks(page, searchURL, s.sels.Links)
	if err != nil {
		return listings, fmt.Errorf("parse search page: %w", err)
	}
	s.stats.Links = len(links)
	log.Printf("📦 Found %d job links for '%s' in '%s'", len(links), keyword, place)

	links = s.unseen(links)

	var scrapedURLs []string
	defer func() {
		if s.cache != nil && len(scrapedURLs) > 0 {
			s.cache.Add(scrapedURLs)
		}
	}()

	for i, link := range links {
		if err := ctx.Err(); err != nil {
			return listings, err
		}

		listing, err := s.scrapeListing(ctx, link)
		if err != nil {
			s.stats.Skipped++
			log.Printf("  ⚠️ [%d/%d] Failed to load page %s: %v", i+1, len(links), link, err)
			continue
		}

		listings = append(listings, listing)
		scrapedURLs = append(scrapedURLs, listing.URL)
		s.stats.Scraped++
		log.Printf("  ✅ [%d/%d] %s - %s", i+1, len(links), listing.Name, listing.Company)

		if err := wait(ctx, s.delay); err != nil {
			return listings, err
		}
	}

	return listings, nil
}

func (s *GlassdoorScraper) scrapeListing(ctx context.Context, link string) (scraper.Listing, error) {
	page, err := s.loader.Load(ctx, link)
	if err != nil {
		return scraper.Listing{}, err
	}
	listing, err := ParseListing(page, link, s.sels)
	if err != nil {
		if rec, ok := s.loader.(scraper.FailureRecorder); ok {
			rec.RecordFailure(link, page)
		}
		return scraper.Listing{}, err
	}
	return listing, nil
}

func (s *GlassdoorScraper) loadResults(ctx context.Context, url string) ([]byte, error) {
	if rl, ok := s.loader.(scraper.ResultsLoader); ok {
		return rl.LoadResults(ctx, url)
	}
	return s.loader.Load(ctx, url)
}

func (s *GlassdoorScraper) unseen(links []string) []string {
	if s.cache == nil {
		return links
	}
	out := make([]string, 0, len(links))
	for _, link := range links {
		if s.cache.IsSeen(link) {
			s.stats.Seen++
			continue
		}
		out = append(out, link)
	}
	if s.stats.Seen > 0 {
		log.Printf("🔁 Skipping %d listings seen in previous runs", s.stats.Seen)
	}
	return out
}

// wait pauses for d unless ctx ends first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
