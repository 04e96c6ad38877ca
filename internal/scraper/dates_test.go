package scraper

import (
	"testing"
	"time"

	"sjsage522/kijijiworker/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseListingDateWithFraction(t *testing.T) {
	parsed, err := ParseListingDate("2024-06-01T12:30:45.123456Z")
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 12, parsed.Hour())
	assert.Equal(t, 123456000, parsed.Nanosecond())
}

func TestParseListingDateWithoutFraction(t *testing.T) {
	parsed, err := ParseListingDate("2024-01-01T00:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseListingDateEmpty(t *testing.T) {
	// An absent date is not an error
	parsed, err := ParseListingDate("")
	assert.NoError(t, err)
	assert.True(t, parsed.IsZero())
}

func TestParseListingDateMalformed(t *testing.T) {
	for _, input := range []string{"yesterday", "2024-06-01", "01/06/2024 12:30"} {
		_, err := ParseListingDate(input)
		assert.Error(t, err, input)
		assert.True(t, errors.IsParse(err), input)
	}
}
