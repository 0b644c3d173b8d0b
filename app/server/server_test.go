package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farebot/app/client/amadeus"
	"farebot/app/config"
	"farebot/app/server"
	"farebot/app/service/catalog"
	"farebot/app/service/dialog"
)

type stubCatalog struct{}

func (stubCatalog) Lookup(name string) (catalog.Destination, error) {
	if strings.ToLower(name) != "madrid" {
		return catalog.Destination{}, catalog.ErrNotFound
	}
	return catalog.Destination{
		AirportCode: "MAD",
		DisplayName: "Madrid",
		Similar:     []string{"valencia", "barcelona", "lisbon", "seville"},
	}, nil
}

type stubFareFinder struct{}

func (stubFareFinder) Authenticate(_ context.Context) (string, error) {
	return "tok", nil
}

func (stubFareFinder) SearchFares(_ context.Context, _ string, _ amadeus.FareQuery) ([]amadeus.Offer, error) {
	return []amadeus.Offer{{PricePerAdult: 88}}, nil
}

func newTestServer() *server.Server {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	now := func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	svc := dialog.NewService(cfg, stubCatalog{}, stubFareFinder{}, dialog.LengthClassifier{}, now)

	return server.NewServer(cfg, svc)
}

func TestHealth(t *testing.T) {
	resp, err := newTestServer().App().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWebhook_FareTurn(t *testing.T) {
	body := `{
		"responseId": "r1",
		"session": "projects/test/agent/sessions/s1",
		"queryResult": {
			"queryText": "I want to fly to Madrid",
			"parameters": {"destination": "Madrid"},
			"intent": {"displayName": "requestFlightFare"}
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := newTestServer().App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed dialog.WebhookResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.NotEmpty(t, parsed.FulfillmentMessages)
	require.NotNil(t, parsed.FulfillmentMessages[0].Text)
	assert.Equal(t, "Fly to Madrid from 88 pounds", parsed.FulfillmentMessages[0].Text.Text[0])

	require.Len(t, parsed.OutputContexts, 1)
	assert.Equal(t, 1, parsed.OutputContexts[0].LifespanCount)
}

func TestWebhook_InvalidPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := newTestServer().App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
