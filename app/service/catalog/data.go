package catalog

// Destination is one reference record, keyed by lowercase destination name.
type Destination struct {
	AirportCode string   `json:"airportCode"`
	DisplayName string   `json:"displayName"`
	CountryName string   `json:"countryName"`
	Similar     []string `json:"similar"`
	ImageURL    string   `json:"imageUrl"`
}
