package amadeus

// FareQuery is one flight-offers request. Dates are YYYY-MM-DD.
type FareQuery struct {
	Origin          string
	Destination     string
	DepartureDate   string
	ReturnDate      string
	Adults          int
	IncludeAirlines string
	NonStop         bool
	Max             int
}

// Offer is a single priced itinerary. Only the per-adult total survives the
// response parsing, nothing else is consumed downstream.
type Offer struct {
	PricePerAdult float64
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type fareResponse struct {
	Data []struct {
		OfferItems []struct {
			PricePerAdult struct {
				Total string `json:"total"`
			} `json:"pricePerAdult"`
		} `json:"offerItems"`
	} `json:"data"`
}
