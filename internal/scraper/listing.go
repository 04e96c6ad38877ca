package scraper

import (
	"math"
	"time"

	"sjsage522/kijijiworker/helpers"
)

// attributeNames maps output fields to the canonical attribute names used
// by the listing data.
var attributeNames = struct {
	brand, model, year, mileage, bodyType, color, doors, fuelType, transmission string
}{
	brand:        "carmake",
	model:        "carmodel",
	year:         "caryear",
	mileage:      "carmileageinkms",
	bodyType:     "carbodytype",
	color:        "carcolor",
	doors:        "noofdoors",
	fuelType:     "carfueltype",
	transmission: "cartransmission",
}

// NormalizeListing flattens one raw listing record into a Car. now is
// captured once per batch so every listing shares the same reference
// instant. Malformed date strings propagate as parse errors.
func NormalizeListing(key string, record map[string]any, now time.Time) (Car, error) {
	id, _ := helpers.GetSplitPart(key, ":", 1)

	activation, err := ParseListingDate(rawString(record, "activationDate"))
	if err != nil {
		return Car{}, err
	}
	sorting, err := ParseListingDate(rawString(record, "sortingDate"))
	if err != nil {
		return Car{}, err
	}

	attributes := listingAttributes(record)

	car := Car{
		ID:           id,
		Title:        stringField(record, "title"),
		Description:  stringField(record, "description"),
		Price:        normalizePrice(record),
		Currency:     "CAD",
		URL:          stringField(record, "url"),
		Images:       imageURLs(record),
		Brand:        getAttr(attributes, attributeNames.brand),
		Model:        getAttr(attributes, attributeNames.model),
		Year:         getAttr(attributes, attributeNames.year),
		MileageKM:    getAttr(attributes, attributeNames.mileage),
		BodyType:     getAttr(attributes, attributeNames.bodyType),
		Color:        getAttr(attributes, attributeNames.color),
		Doors:        getAttr(attributes, attributeNames.doors),
		FuelType:     getAttr(attributes, attributeNames.fuelType),
		Transmission: getAttr(attributes, attributeNames.transmission),
	}

	if !activation.IsZero() {
		formatted := activation.Format(time.RFC3339)
		car.ActivationDate = &formatted
		since := now.Sub(activation).String()
		car.TimeSinceActivation = &since
	}
	if !sorting.IsZero() {
		formatted := sorting.Format(time.RFC3339)
		car.SortingDate = &formatted
	}

	return car, nil
}

// normalizePrice applies the source's pricing scale: a numeric amount is
// floor-divided by 100, anything else passes through untouched. The
// scale is preserved as observed on the live site.
func normalizePrice(record map[string]any) any {
	price, ok := record["price"].(map[string]any)
	if !ok {
		return nil
	}
	amount := price["amount"]
	if n, ok := amount.(float64); ok {
		return int64(math.Floor(n / 100))
	}
	return amount
}

// getAttr returns the first canonical value of the first attribute entry
// whose canonicalName equals name, or nil when no entry matches or the
// matched entry carries no values.
func getAttr(attributes []any, name string) *string {
	for _, entry := range attributes {
		attr, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if attr["canonicalName"] != name {
			continue
		}
		values, _ := attr["canonicalValues"].([]any)
		if len(values) == 0 {
			return nil
		}
		if value, ok := values[0].(string); ok {
			return &value
		}
		return nil
	}
	return nil
}

func listingAttributes(record map[string]any) []any {
	attributes, ok := record["attributes"].(map[string]any)
	if !ok {
		return nil
	}
	all, _ := attributes["all"].([]any)
	return all
}

func imageURLs(record map[string]any) []string {
	images := make([]string, 0)
	raw, _ := record["imageUrls"].([]any)
	for _, item := range raw {
		if url, ok := item.(string); ok {
			images = append(images, url)
		}
	}
	return images
}

func stringField(record map[string]any, key string) *string {
	if value, ok := record[key].(string); ok {
		return &value
	}
	return nil
}

func rawString(record map[string]any, key string) string {
	value, _ := record[key].(string)
	return value
}
