package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

func baseRecord() map[string]any {
	return map[string]any{
		"title":          "2014 Honda Civic",
		"description":    "Runs great",
		"url":            "https://www.kijiji.ca/v-cars-trucks/sudbury/1",
		"imageUrls":      []any{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"},
		"activationDate": "2024-06-01T00:00:00Z",
		"sortingDate":    "2024-06-01T12:00:00Z",
		"price":          map[string]any{"amount": float64(12345)},
		"attributes": map[string]any{
			"all": []any{
				map[string]any{"canonicalName": "carmake", "canonicalValues": []any{"Honda", "Other"}},
				map[string]any{"canonicalName": "carmodel", "canonicalValues": []any{"Civic"}},
				map[string]any{"canonicalName": "caryear", "canonicalValues": []any{"2014"}},
				map[string]any{"canonicalName": "cartransmission", "canonicalValues": []any{}},
			},
		},
	}
}

func TestNormalizeListing(t *testing.T) {
	car, err := NormalizeListing("AutosListing:123", baseRecord(), testNow)
	assert.NoError(t, err)

	assert.Equal(t, "123", car.ID)
	assert.Equal(t, "2014 Honda Civic", *car.Title)
	assert.Equal(t, "Runs great", *car.Description)
	assert.Equal(t, "CAD", car.Currency)
	assert.Equal(t, []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"}, car.Images)
	assert.Equal(t, "Honda", *car.Brand)
	assert.Equal(t, "Civic", *car.Model)
	assert.Equal(t, "2014", *car.Year)
	assert.Equal(t, "2024-06-01T00:00:00Z", *car.ActivationDate)
	assert.Equal(t, "2024-06-01T12:00:00Z", *car.SortingDate)
	assert.Equal(t, "24h0m0s", *car.TimeSinceActivation)
}

func TestNormalizeListingNumericPrice(t *testing.T) {
	car, err := NormalizeListing("AutosListing:1", baseRecord(), testNow)
	assert.NoError(t, err)
	// amount 12345 floor-divides to 123
	assert.Equal(t, int64(123), car.Price)
}

func TestNormalizeListingNonNumericPrice(t *testing.T) {
	record := baseRecord()
	record["price"] = map[string]any{"amount": "N/A"}

	car, err := NormalizeListing("AutosListing:1", record, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "N/A", car.Price)
}

func TestNormalizeListingNullPrice(t *testing.T) {
	record := baseRecord()
	record["price"] = map[string]any{"amount": nil}

	car, err := NormalizeListing("AutosListing:1", record, testNow)
	assert.NoError(t, err)
	assert.Nil(t, car.Price)

	record = baseRecord()
	delete(record, "price")
	car, err = NormalizeListing("AutosListing:1", record, testNow)
	assert.NoError(t, err)
	assert.Nil(t, car.Price)
}

func TestNormalizeListingAbsentFields(t *testing.T) {
	car, err := NormalizeListing("AutosListing:1", map[string]any{}, testNow)
	assert.NoError(t, err)

	assert.Nil(t, car.Title)
	assert.Nil(t, car.Description)
	assert.Nil(t, car.URL)
	assert.Nil(t, car.Brand)
	assert.Nil(t, car.ActivationDate)
	assert.Nil(t, car.SortingDate)
	assert.Nil(t, car.TimeSinceActivation)
	// images default to an empty sequence, not null
	assert.NotNil(t, car.Images)
	assert.Empty(t, car.Images)
}

func TestNormalizeListingMalformedDate(t *testing.T) {
	record := baseRecord()
	record["activationDate"] = "not a date"

	_, err := NormalizeListing("AutosListing:1", record, testNow)
	assert.Error(t, err)
}

func TestGetAttr(t *testing.T) {
	attributes := listingAttributes(baseRecord())

	// First canonical value of the matched entry
	assert.Equal(t, "Honda", *getAttr(attributes, "carmake"))
	// Absent name
	assert.Nil(t, getAttr(attributes, "carcolor"))
	// Matched entry with an empty values sequence
	assert.Nil(t, getAttr(attributes, "cartransmission"))
}
