package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"farebot/app/client/amadeus"
	"farebot/app/client/booking"
	"farebot/app/config"
	"farebot/app/service/catalog"
	"farebot/app/service/trip"

	"github.com/samber/do"
)

const (
	intentRequestFare = "requestFlightFare"
	intentWelcome     = "Default Welcome Intent"
	intentFallback    = "Default Fallback Intent"
)

// FareFinder is the pricing collaborator. Authentication happens fresh on
// every turn and must complete before the fare search.
type FareFinder interface {
	Authenticate(ctx context.Context) (string, error)
	SearchFares(ctx context.Context, token string, query amadeus.FareQuery) ([]amadeus.Offer, error)
}

// DestinationCatalog is the reference-data collaborator.
type DestinationCatalog interface {
	Lookup(name string) (catalog.Destination, error)
}

type Service struct {
	cfg        *config.Config
	catalog    DestinationCatalog
	fares      FareFinder
	classifier TurnClassifier
	now        func() time.Time
}

func New(di *do.Injector) (*Service, error) {
	return NewService(
		do.MustInvoke[*config.Config](di),
		do.MustInvoke[*catalog.Service](di),
		do.MustInvoke[*amadeus.Client](di),
		LengthClassifier{},
		time.Now,
	), nil
}

func NewService(cfg *config.Config, destinations DestinationCatalog, fares FareFinder,
	classifier TurnClassifier, now func() time.Time) *Service {
	return &Service{
		cfg:        cfg,
		catalog:    destinations,
		fares:      fares,
		classifier: classifier,
		now:        now,
	}
}

// HandleTurn processes one webhook turn. Every failure is converted into a
// user-facing reply, a broken turn never breaks the next one.
func (s *Service) HandleTurn(ctx context.Context, req *WebhookRequest) *WebhookResponse {
	switch req.QueryResult.Intent.DisplayName {
	case intentRequestFare:
		return s.handleFareRequest(ctx, req)
	case intentWelcome:
		return welcomeResponse()
	case intentFallback:
		return fallbackResponse()
	default:
		slog.Warn("Unknown intent", "intent", req.QueryResult.Intent.DisplayName)
		return fallbackResponse()
	}
}

func (s *Service) handleFareRequest(ctx context.Context, req *WebhookRequest) *WebhookResponse {
	params := parseParameters(req.QueryResult.Parameters)

	record, err := s.catalog.Lookup(params.Destination)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			slog.Error("Catalog lookup failed", "destination", params.Destination, "error", err)
		}

		return &WebhookResponse{
			FulfillmentMessages: []Message{
				textMessage(fmt.Sprintf("%s is not in my database. Sorry. Try another destination.", params.Destination)),
				suggestionChips(defaultSuggestions),
			},
		}
	}

	// A short query means a suggestion-chip tap: the turn carries no
	// temporal parameters of its own, reuse the snapshot of the earlier
	// full request. Either way the active set is re-persisted.
	class := s.classifier.Classify(req.QueryResult.QueryText)

	active := params
	if class.Source == SourceCarried {
		if carried := carriedParameters(req.QueryResult.OutputContexts); carried != nil {
			preserved := parseParameters(carried)
			active.Date = preserved.Date
			active.Period = preserved.Period
			active.PeriodFromTo = preserved.PeriodFromTo
			active.Duration = preserved.Duration
		}
	}

	snapshot := snapshotContext(req.Session, class.Lifespan, active)

	resolved, err := trip.ResolveDates(active.resolutionInput(), s.now())
	if err != nil {
		slog.Warn("Date resolution failed",
			"destination", params.Destination,
			"query", req.QueryResult.QueryText,
			"error", err,
		)

		return &WebhookResponse{
			FulfillmentMessages: []Message{
				textMessage("Sorry, I don't understand those dates yet. Try a single date, a month, or a from/to range."),
				suggestionChips(defaultSuggestions),
			},
			OutputContexts: []Context{snapshot},
		}
	}

	fare, err := s.fetchFare(ctx, record.AirportCode, resolved)
	if err != nil {
		slog.Error("Fare search failed",
			"destination", params.Destination,
			"airport", record.AirportCode,
			"departure", resolved.DepartureDate,
			"return", resolved.ReturnDate,
			"error", err,
		)

		return &WebhookResponse{
			FulfillmentMessages: []Message{
				textMessage(fmt.Sprintf(
					"Sorry, I couldn't find any flight to %s from %s to %s. Ask for different dates or try another destination.",
					record.DisplayName, resolved.DepartureDate, resolved.ReturnDate)),
				suggestionChips(defaultSuggestions),
			},
			OutputContexts: []Context{snapshot},
		}
	}

	link := booking.BuildLink(s.cfg.Booking.BaseURL, booking.LinkParams{
		Origin:       s.cfg.Search.Origin,
		Destination:  record.AirportCode,
		OutboundDate: resolved.DepartureDate,
		InboundDate:  resolved.ReturnDate,
		AdultCount:   s.cfg.Search.Adults,
	})

	messages := []Message{
		textMessage(fmt.Sprintf("Fly to %s from %d pounds", record.DisplayName, fare)),
		{Card: &Card{
			Title:    fmt.Sprintf("%s from £%d", record.DisplayName, fare),
			ImageURI: record.ImageURL,
			Buttons: []CardButton{
				{Text: "Book flights", Postback: link},
			},
		}},
	}

	if chips := similarChips(record.Similar, s.cfg.Search.HomeCity); chips != nil {
		messages = append(messages, suggestionChips(chips))
	}

	return &WebhookResponse{
		FulfillmentMessages: messages,
		OutputContexts:      []Context{snapshot},
	}
}

// fetchFare authenticates, runs the fare search and returns the first
// offer's per-adult price in whole pounds.
func (s *Service) fetchFare(ctx context.Context, airportCode string, resolved trip.Resolved) (int, error) {
	token, err := s.fares.Authenticate(ctx)
	if err != nil {
		return 0, fmt.Errorf("authenticate: %w", err)
	}

	offers, err := s.fares.SearchFares(ctx, token, amadeus.FareQuery{
		Origin:          s.cfg.Search.Origin,
		Destination:     airportCode,
		DepartureDate:   resolved.DepartureDate,
		ReturnDate:      resolved.ReturnDate,
		Adults:          s.cfg.Search.Adults,
		IncludeAirlines: s.cfg.Search.Airline,
		NonStop:         !s.cfg.Search.AllowStopovers,
		Max:             s.cfg.Search.MaxOffers,
	})
	if err != nil {
		return 0, fmt.Errorf("searchFares: %w", err)
	}

	if len(offers) == 0 {
		return 0, fmt.Errorf("%w: no offers", amadeus.ErrBadResponse)
	}

	return int(offers[0].PricePerAdult), nil
}
