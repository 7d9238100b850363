package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jomarcello/tradingview-calendar/internal/config"
	"github.com/jomarcello/tradingview-calendar/pkg/calendar"
	"github.com/jomarcello/tradingview-calendar/pkg/llm"
)

// Pipeline is the single entry point the transport layer calls: fetch from
// every source, merge, and render. Each call is a pure function of
// (sources, date, now) aside from the read-only startup configuration.
type Pipeline struct {
	aggregator *calendar.Aggregator
	formatter  *calendar.Formatter
}

func New(aggregator *calendar.Aggregator, formatter *calendar.Formatter) *Pipeline {
	return &Pipeline{aggregator: aggregator, formatter: formatter}
}

// SourceCount reports how many adapters the pipeline fans out to.
func (p *Pipeline) SourceCount() int {
	return p.aggregator.SourceCount()
}

// GetCalendar returns the formatted calendar for now's UTC date. An empty
// string with a nil error means no events were found, which is a normal
// outcome; an error is returned only when the request context ends before
// the aggregate completes.
func (p *Pipeline) GetCalendar(ctx context.Context, now time.Time) (string, error) {
	date := now.UTC().Truncate(24 * time.Hour)

	events := p.aggregator.Aggregate(ctx, date, now)
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("calendar aggregation interrupted: %w", err)
	}
	if len(events) == 0 {
		return "", nil
	}

	return p.formatter.Format(ctx, events), nil
}

// Build assembles the pipeline from configuration: adapters in configured
// priority order (sources without credentials are skipped) and the
// summarizer decided once at startup.
func Build(cfg config.Config) (*Pipeline, error) {
	currencies := calendar.DefaultCurrencyTable()
	countries := calendar.DefaultCountryCodes()
	classifier := calendar.NewClassifier()

	var sources []calendar.SourceAdapter
	for _, name := range cfg.Sources {
		switch name {
		case "investing":
			sources = append(sources, calendar.NewInvestingClient(currencies, classifier))
		case "fxstreet":
			sources = append(sources, calendar.NewFXStreetClient(currencies, classifier))
		case "marketpulse":
			if cfg.MarketPulseKey == "" {
				slog.Warn("skipping source without API key", "source", name)
				continue
			}
			sources = append(sources, calendar.NewMarketPulseClient(cfg.MarketPulseKey, countries, classifier))
		case "finnhub":
			if cfg.FinnhubKey == "" {
				slog.Warn("skipping source without API key", "source", name)
				continue
			}
			sources = append(sources, calendar.NewFinnHubClient(cfg.FinnhubKey, currencies, classifier))
		default:
			slog.Warn("unknown calendar source, skipping", "source", name)
		}
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no calendar sources configured")
	}

	var summarizer calendar.Summarizer
	switch {
	case cfg.OpenAIKey != "":
		summarizer = llm.NewOpenAIClient(cfg.OpenAIKey)
	case cfg.AnthropicKey != "":
		summarizer = llm.NewAnthropicClient(cfg.AnthropicKey)
	}

	return New(
		calendar.NewAggregator(sources, cfg.UpcomingOnly),
		calendar.NewFormatter(summarizer),
	), nil
}
