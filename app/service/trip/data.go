package trip

// DateRange is a fuzzy or explicit date window extracted from an utterance.
// Both endpoints are ISO-8601 timestamps as sent by the dialogue platform.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Duration is an explicit trip length, e.g. "for two weeks".
type Duration struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ResolutionInput holds the temporal parameters of a single turn.
// At most one of Date, Period and PeriodFromTo may be set.
type ResolutionInput struct {
	Date         string
	Period       *DateRange
	PeriodFromTo *DateRange
	Duration     *Duration
}

// Resolved is a concrete departure/return pair, both formatted YYYY-MM-DD.
// The return date is always strictly after the departure date.
type Resolved struct {
	DepartureDate string
	ReturnDate    string
}
