package scraper

import (
	"fmt"
	"time"

	"sjsage522/kijijiworker/pkg/errors"
)

// Listing timestamps come in two shapes, with and without fractional
// seconds. The Z suffix is trusted as UTC.
var listingDateLayouts = []string{
	"2006-01-02T15:04:05.999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
}

// ParseListingDate parses a listing timestamp string. An empty string is
// not an error and yields the zero time; callers treat the zero time as
// an absent date. Any other unparseable input is a contract violation
// upstream and fails with a parse error.
func ParseListingDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range listingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errors.NewParse("date", fmt.Sprintf("unrecognized listing date %q", s), nil)
}
