package glassdoor

import (
	"regexp"
	"strings"

	"glassdoor-scraper/internal/scraper"

	"golang.org/x/text/unicode/norm"
)

var trailingParenRegex = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// cleanText folds compatibility characters (NBSP, full-width) and collapses whitespace.
func cleanText(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}

// SplitLocation splits "City, ST" on the first comma.
// Without a comma the whole text is the city.
func SplitLocation(location string) (city, state string) {
	location = cleanText(location)
	before, after, found := strings.Cut(location, ",")
	if !found {
		return location, ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// NormalizeSalary keeps the figures of a salary estimate:
// "$85K - $120K (Employer est.)" -> "85K - 120K".
func NormalizeSalary(raw string) string {
	s := cleanText(raw)
	if i := strings.Index(s, "$"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = trailingParenRegex.ReplaceAllString(s, "")
	s = cleanText(s)
	if s == "" {
		return scraper.SalaryNotAvailable
	}
	return s
}
