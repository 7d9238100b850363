package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jomarcello/tradingview-calendar/internal/config"
	"github.com/jomarcello/tradingview-calendar/internal/pipeline"
	"github.com/jomarcello/tradingview-calendar/internal/relay"
)

// One-shot run: build today's calendar and push it to the chat relay.
// Meant to be invoked from cron ahead of the trading day.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	if cfg.RelayURL == "" {
		log.Fatal("RELAY_URL is not set")
	}

	p, err := pipeline.Build(cfg)
	if err != nil {
		log.Fatalf("error building calendar pipeline: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	text, err := p.GetCalendar(ctx, time.Now().UTC())
	if err != nil {
		log.Fatalf("error building calendar: %v", err)
	}

	if text == "" {
		slog.Info("no economic events today, nothing to deliver")
		return
	}

	chatRelay := relay.NewTelegramRelay(cfg.RelayURL, cfg.RelayChatID)
	if err := chatRelay.Deliver(ctx, text); err != nil {
		log.Fatalf("error delivering calendar: %v", err)
	}

	slog.Info("calendar delivered", "chars", len(text))
}
