package calendar

import (
	"context"
	"strconv"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnHubClient pulls the economic calendar through the official SDK.
type FinnHubClient struct {
	client     *finnhub.DefaultApiService
	currencies CurrencyTable
	classifier *Classifier
}

func NewFinnHubClient(apiKey string, currencies CurrencyTable, classifier *Classifier) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{
		client:     client,
		currencies: currencies,
		classifier: classifier,
	}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(ctx context.Context, date time.Time) ([]Event, error) {
	res, _, err := c.client.EconomicCalendar(ctx).Execute()
	if err != nil {
		return nil, err
	}

	var events []Event

	for _, item := range res.GetEconomicCalendar() {
		if item.Event == nil || strings.TrimSpace(*item.Event) == "" {
			continue
		}
		if item.Time == nil {
			continue
		}

		at, err := time.Parse("2006-01-02 15:04:05", *item.Time)
		if err != nil {
			continue
		}
		at = at.UTC()
		if !sameDay(at, date) {
			continue
		}

		ev := Event{
			Date:     at.Truncate(24 * time.Hour),
			Time:     at.Format("15:04"),
			Headline: strings.TrimSpace(*item.Event),
			Source:   c.Name(),
		}

		if item.Country != nil {
			ev.Currency = c.currencies.ResolveOrFallback(*item.Country)
		} else {
			ev.Currency = FallbackCode("")
		}

		unit := ""
		if item.Unit != nil {
			unit = *item.Unit
		}
		if item.Actual != nil {
			ev.Actual = formatMeasure(*item.Actual, unit)
		}
		if item.Estimate != nil {
			ev.Forecast = formatMeasure(*item.Estimate, unit)
		}

		impact := ImpactNone
		if item.Impact != nil {
			impact = c.classifier.FromLabel(*item.Impact)
		}
		if impact == ImpactNone {
			impact = c.classifier.FromKeywords(ev.Headline)
		}
		ev.Impact = impact

		events = append(events, ev)
	}

	return events, nil
}

func formatMeasure(value float32, unit string) *string {
	s := strconv.FormatFloat(float64(value), 'f', -1, 32) + unit
	return &s
}
