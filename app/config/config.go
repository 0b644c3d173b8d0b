package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Log     Log     `yaml:"log"`
	Amadeus Amadeus `yaml:"amadeus"`
	Search  Search  `yaml:"search"`
	Booking Booking `yaml:"booking"`
	Catalog Catalog `yaml:"catalog"`
}

type Server struct {
	// Address the webhook listens on
	Listen string `yaml:"listen" example:":8080"`
}

type Amadeus struct {
	// Amadeus API base url, defaults to the self-service test environment
	BaseURL string `yaml:"base_url" example:"https://test.api.amadeus.com"`
	// API key of the Amadeus self-service application
	ClientID string `yaml:"client_id" example:"aBcDeF0123456789gHiJkLmN" validate:"required"`
	// API secret of the Amadeus self-service application
	ClientSecret string `yaml:"client_secret" example:"zYxWvU9876543210tSrQ" validate:"required"`
}

type Search struct {
	// IATA code of the only supported origin airport
	Origin string `yaml:"origin" example:"LHR"`
	// IATA code of the only supported carrier
	Airline string `yaml:"airline" example:"BA"`
	// City the origin airport belongs to, filtered out of suggestion chips
	HomeCity string `yaml:"home_city" example:"london"`
	// Number of adult passengers per fare query
	Adults int `yaml:"adults" example:"1"`
	// Also consider itineraries with stopovers, direct only by default
	AllowStopovers bool `yaml:"allow_stopovers" example:"false"`
	// Maximum number of offers to request
	MaxOffers int `yaml:"max_offers" example:"1"`
}

type Booking struct {
	// Flight list page of the booking site, deep links are built on top of it
	BaseURL string `yaml:"base_url" example:"https://www.britishairways.com/travel/booking/public/en_gb/#/flightList"`
}

type Catalog struct {
	// Path to the destinations reference file
	Path string `yaml:"path" example:"data/destinations.json"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	ApplyDefaults(&result)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}

// ApplyDefaults fills in every optional field the config file omitted.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Amadeus.BaseURL == "" {
		cfg.Amadeus.BaseURL = "https://test.api.amadeus.com"
	}
	if cfg.Search.Origin == "" {
		cfg.Search.Origin = "LHR"
	}
	if cfg.Search.Airline == "" {
		cfg.Search.Airline = "BA"
	}
	if cfg.Search.HomeCity == "" {
		cfg.Search.HomeCity = "london"
	}
	if cfg.Search.Adults == 0 {
		cfg.Search.Adults = 1
	}
	if cfg.Search.MaxOffers == 0 {
		cfg.Search.MaxOffers = 1
	}
	if cfg.Booking.BaseURL == "" {
		cfg.Booking.BaseURL = "https://www.britishairways.com/travel/booking/public/en_gb/#/flightList"
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "data/destinations.json"
	}
}
