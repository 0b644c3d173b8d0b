package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"farebot/app/config"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/do"
)

const requestTimeout = 15 * time.Second

var (
	ErrAuthFailed  = errors.New("amadeus authentication failed")
	ErrTimeout     = errors.New("amadeus request timed out")
	ErrBadResponse = errors.New("unexpected amadeus response")
)

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	return New(do.MustInvoke[*config.Config](di)), nil
}

func New(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Authenticate exchanges the client credentials for a bearer token. Tokens
// are not cached, every turn fetches a fresh one.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.Amadeus.ClientID)
	form.Set("client_secret", c.cfg.Amadeus.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.Amadeus.BaseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err, ErrAuthFailed)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	}

	var token tokenResponse
	if err = json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuthFailed)
	}

	return token.AccessToken, nil
}

// SearchFares runs one flight-offers query and returns the priced offers in
// the order the API ranked them.
func (c *Client) SearchFares(ctx context.Context, token string, query FareQuery) ([]Offer, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("origin", query.Origin)
	params.Set("destination", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("includeAirlines", query.IncludeAirlines)
	params.Set("nonStop", strconv.FormatBool(query.NonStop))
	params.Set("max", strconv.Itoa(query.Max))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.Amadeus.BaseURL+"/v1/shopping/flight-offers?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fare request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, ErrBadResponse)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var parsed fareResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	offers := make([]Offer, 0, len(parsed.Data))
	for _, item := range parsed.Data {
		if len(item.OfferItems) == 0 {
			continue
		}

		total, err := strconv.ParseFloat(item.OfferItems[0].PricePerAdult.Total, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed price %q", ErrBadResponse, item.OfferItems[0].PricePerAdult.Total)
		}

		offers = append(offers, Offer{PricePerAdult: total})
	}

	return offers, nil
}

func classifyTransportError(err error, fallback error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
