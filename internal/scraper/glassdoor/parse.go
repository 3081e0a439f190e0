package glassdoor

import (
	"bytes"
	"errors"
	"fmt"

	"glassdoor-scraper/internal/config"
	"glassdoor-scraper/internal/scraper"
	"glassdoor-scraper/internal/selector"
)

// ErrFieldMissing is returned when a required field has no match on a detail page.
var ErrFieldMissing = errors.New("field missing")

// Selectors are the compiled config selectors for one site.
type Selectors = config.CompiledSelectors

// ExtractLinks returns the absolute detail-page links of a result page,
// in page order, without duplicates.
func ExtractLinks(page []byte, pageURL string, links selector.Selector) ([]string, error) {
	doc, err := selector.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []string
	for _, href := range doc.Attrs(links, "href") {
		href = cleanText(href)
		if href == "" {
			continue
		}
		abs := ResolveLink(pageURL, href)
		if seen[abs] {
			continue
		}
		seen[abs] = true
		out = append(out, abs)
	}
	return out, nil
}

// ParseListing pulls one listing out of a detail page.
// Company, role and location are required; a missing salary becomes "N/A".
func ParseListing(page []byte, url string, sels Selectors) (scraper.Listing, error) {
	doc, err := selector.Parse(bytes.NewReader(page))
	if err != nil {
		return scraper.Listing{}, err
	}

	required := func(name string, sel selector.Selector) (string, error) {
		text, ok := doc.First(sel)
		text = cleanText(text)
		if !ok || text == "" {
			return "", fmt.Errorf("%s (%s): %w", name, sel, ErrFieldMissing)
		}
		return text, nil
	}

	company, err := required("company", sels.Company)
	if err != nil {
		return scraper.Listing{}, err
	}
	role, err := required("role", sels.Role)
	if err != nil {
		return scraper.Listing{}, err
	}
	location, err := required("location", sels.Location)
	if err != nil {
		return scraper.Listing{}, err
	}
	city, state := SplitLocation(location)

	salary, _ := doc.First(sels.Salary)

	return scraper.Listing{
		Name:     role,
		Company:  company,
		City:     city,
		State:    state,
		Salary:   NormalizeSalary(salary),
		Location: location,
		URL:      url,
	}, nil
}
