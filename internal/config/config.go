package config

import (
	"os"
	"strings"
)

// Config is the read-only process configuration, built once at startup and
// injected everywhere it is needed.
type Config struct {
	Port        string
	FrontendURL string

	// Sources is the ordered adapter list; position is merge priority.
	Sources []string

	MarketPulseKey string
	FinnhubKey     string
	OpenAIKey      string
	AnthropicKey   string

	RelayURL    string
	RelayChatID string

	UpcomingOnly bool
}

func Load() Config {
	return Config{
		Port:           envOr("PORT", "8080"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		Sources:        splitList(envOr("CALENDAR_SOURCES", "investing,marketpulse,fxstreet,finnhub")),
		MarketPulseKey: os.Getenv("MARKETPULSE_API_KEY"),
		FinnhubKey:     os.Getenv("FINNHUB_API_KEY"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		RelayURL:       os.Getenv("RELAY_URL"),
		RelayChatID:    os.Getenv("RELAY_CHAT_ID"),
		UpcomingOnly:   os.Getenv("UPCOMING_ONLY") == "true",
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
