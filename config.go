package skypricebot

import (
	"os"

	"github.com/spf13/cast"
)

const defaultAmadeusHost = "https://test.api.amadeus.com"

type Config struct {
	BotToken      string
	ClientID      string
	ClientSecret  string
	BaseURL       string
	EtsBaseURL    string
	EtsCookie     string
	EtsNextToken  string
	Provider      string
	Currency      string
	Adults        int
	MaxResults    int
	CarrierFilter string
}

func (cfg *Config) SetBotToken(token string) {
	cfg.BotToken = token
}

func (cfg *Config) SetBaseUrl(url string) {
	cfg.BaseURL = url
}

func (cfg *Config) SetCredentials(clientID, clientSecret string) {
	cfg.ClientID = clientID
	cfg.ClientSecret = clientSecret
}

func (cfg *Config) SetProvider(provider string) {
	cfg.Provider = provider
}

func (cfg *Config) SetCarrierFilter(carrier string) {
	cfg.CarrierFilter = carrier
}

// LoadConfig reads the process environment. AMADEUS_HOST falls back to the
// sandbox host when unset, matching the deployment defaults.
func LoadConfig() *Config {
	var cfg = Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		ClientID:      os.Getenv("AMADEUS_CLIENT_ID"),
		ClientSecret:  os.Getenv("AMADEUS_CLIENT_SECRET"),
		BaseURL:       os.Getenv("AMADEUS_HOST"),
		EtsBaseURL:    os.Getenv("ETS_HOST"),
		EtsCookie:     os.Getenv("ETS_COOKIE"),
		EtsNextToken:  os.Getenv("ETS_NEXT_TOKEN"),
		Provider:      os.Getenv("PROVIDER"),
		Currency:      os.Getenv("CURRENCY"),
		Adults:        cast.ToInt(os.Getenv("ADULTS")),
		MaxResults:    cast.ToInt(os.Getenv("MAX_RESULTS")),
		CarrierFilter: os.Getenv("CARRIER_FILTER"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAmadeusHost
	}
	if cfg.Provider == "" {
		cfg.Provider = "amadeus"
	}
	if cfg.Currency == "" {
		cfg.Currency = "RUB"
	}
	if cfg.Adults <= 0 {
		cfg.Adults = 1
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 3
	}

	return &cfg
}
