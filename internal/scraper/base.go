// Shared types for every site scraper

package scraper

import "context"

// SalaryNotAvailable marks a listing whose detail page carries no salary estimate.
const SalaryNotAvailable = "N/A"

// Listing is one scraped job record.
type Listing struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	City     string `json:"city"`
	State    string `json:"state"`
	Salary   string `json:"salary"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// PageLoader loads a URL in a browser and returns the rendered markup.
type PageLoader interface {
	Load(ctx context.Context, url string) ([]byte, error)
}

// ResultsLoader is implemented by loaders that treat search result pages
// differently from detail pages (e.g. scrolling to render lazy cards).
type ResultsLoader interface {
	LoadResults(ctx context.Context, url string) ([]byte, error)
}

// FailureRecorder is implemented by loaders that can keep evidence of a page
// that loaded but could not be parsed.
type FailureRecorder interface {
	RecordFailure(url string, page []byte)
}

// Scraper collects listings for a keyword in a place.
type Scraper interface {
	Scrape(ctx context.Context, keyword, place string) ([]Listing, error)

	//Name is the site name (Glassdoor, ...)
	Name() string
}
