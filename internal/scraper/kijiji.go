package scraper

import (
	"context"
	"sort"
	"time"

	"sjsage522/kijijiworker/config"
	"sjsage522/kijijiworker/helpers"
)

// KijijiScraper scrapes car listings from a single Kijiji search page
type KijijiScraper struct {
	url     string
	timeout time.Duration
}

// NewKijijiScraper creates a new Kijiji scraper for the configured page
func NewKijijiScraper(cfg *config.Config) *KijijiScraper {
	return &KijijiScraper{
		url:     cfg.KijijiURL,
		timeout: config.FetchTimeout,
	}
}

// GetName returns the scraper name
func (s *KijijiScraper) GetName() string {
	return "KijijiScraper"
}

// FetchCars runs the full pipeline once: fetch the page, extract the
// embedded JSON, collect listing records, normalize each one against a
// single batch timestamp, and sort by recency. A failure at any stage
// aborts the batch; no partial results are returned.
func (s *KijijiScraper) FetchCars(ctx context.Context) ([]Car, error) {
	page, err := helpers.FetchPage(ctx, helpers.FetchTarget{
		URL:   s.url,
		Query: config.SearchQuery(),
		Headers: map[string]string{
			"User-Agent": config.UserAgent,
			"Accept":     config.AcceptHeader,
		},
		Cookies: map[string]string{
			config.SessionCookieName: config.SessionCookieValue,
		},
		Timeout: s.timeout,
	})
	if err != nil {
		return nil, err
	}

	tree, err := ExtractEmbeddedJSON(page)
	if err != nil {
		return nil, err
	}

	listings, err := FindListings(tree, config.ListingKeyPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	cars := make([]Car, 0, len(listings))
	for key, record := range listings {
		car, err := NormalizeListing(key, record, now)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}

	SortByRecency(cars)

	return cars, nil
}

// SortByRecency sorts cars descending by sorting date. A missing sorting
// date sorts as the empty string, placing those listings last.
func SortByRecency(cars []Car) {
	sort.SliceStable(cars, func(i, j int) bool {
		return sortingKey(cars[i]) > sortingKey(cars[j])
	})
}

func sortingKey(car Car) string {
	if car.SortingDate != nil {
		return *car.SortingDate
	}
	return ""
}
