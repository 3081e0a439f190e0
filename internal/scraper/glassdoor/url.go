package glassdoor

import (
	"fmt"
	"net/url"
	"unicode/utf8"
)

// SearchURL builds the result page URL for keyword in place.
// The KO segment holds the keyword's character offsets inside "{place}-{keyword}".
// IL.0,12 and IC1154532 are fixed by the site's scheme.
func SearchURL(keyword, place string) string {
	placeLen := utf8.RuneCountInString(place) + 1
	urlLen := utf8.RuneCountInString(keyword+place) + 1
	return fmt.Sprintf("https://www.glassdoor.com/Job/%s-%s-jobs-SRCH_IL.0,12_IC1154532_KO%d,%d.htm",
		place, keyword, placeLen, urlLen)
}

// ResolveLink makes href absolute against the page it was found on.
func ResolveLink(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}
