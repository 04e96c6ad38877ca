package scraper

// Car is a normalized car listing extracted from the embedded page data.
// Nullable fields are pointers so that absent values serialize as JSON null.
// Price is either an integer (dollars), the raw non-numeric source value,
// or null.
type Car struct {
	ID                  string   `json:"id"`
	Title               *string  `json:"title"`
	Description         *string  `json:"description"`
	Price               any      `json:"price"`
	Currency            string   `json:"currency"`
	URL                 *string  `json:"url"`
	Images              []string `json:"images"`
	Brand               *string  `json:"brand"`
	Model               *string  `json:"model"`
	Year                *string  `json:"year"`
	MileageKM           *string  `json:"mileage_km"`
	BodyType            *string  `json:"body_type"`
	Color               *string  `json:"color"`
	Doors               *string  `json:"doors"`
	FuelType            *string  `json:"fuel_type"`
	Transmission        *string  `json:"transmission"`
	ActivationDate      *string  `json:"activation_date"`
	SortingDate         *string  `json:"sorting_date"`
	TimeSinceActivation *string  `json:"time_since_activation"`
}

// ResultEnvelope is the response body of the scrape endpoint
type ResultEnvelope struct {
	Count int   `json:"count"`
	Cars  []Car `json:"cars"`
}
