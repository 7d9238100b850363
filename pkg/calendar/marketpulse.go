package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const marketPulseURL = "https://api.marketpulse.io/v1/calendar"

// MarketPulseClient queries a JSON calendar API filtered to a single day.
type MarketPulseClient struct {
	apiKey     string
	httpClient *http.Client
	countries  CountryCodes
	classifier *Classifier
}

func NewMarketPulseClient(apiKey string, countries CountryCodes, classifier *Classifier) *MarketPulseClient {
	return &MarketPulseClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		countries:  countries,
		classifier: classifier,
	}
}

func (c *MarketPulseClient) Name() string {
	return "MarketPulse"
}

func (c *MarketPulseClient) Fetch(ctx context.Context, date time.Time) ([]Event, error) {
	day := date.UTC().Format("2006-01-02")
	body, err := json.Marshal(marketPulseRequest{From: day, To: day})
	if err != nil {
		return nil, fmt.Errorf("marketpulse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, marketPulseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("marketpulse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marketpulse fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("marketpulse fetch: unexpected status %d", resp.StatusCode)
	}

	var raw marketPulseResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("marketpulse decode: %w", err)
	}

	events := make([]Event, 0, len(raw.Events))
	for _, item := range raw.Events {
		ev, ok := c.parseItem(item, date)
		if !ok {
			slog.Warn("skipping malformed calendar item", "source", c.Name(), "title", item.Title)
			continue
		}
		events = append(events, ev)
	}

	return events, nil
}

func (c *MarketPulseClient) parseItem(item marketPulseEvent, date time.Time) (Event, bool) {
	headline := strings.TrimSpace(item.Title)
	if headline == "" {
		return Event{}, false
	}
	if _, err := time.Parse("15:04", item.Time); err != nil {
		return Event{}, false
	}
	day, err := time.Parse("2006-01-02", item.Date)
	if err != nil || !sameDay(day, date) {
		return Event{}, false
	}

	currency, ok := c.countries[item.CountryID]
	if !ok {
		// Unmapped country: derive a marked token rather than drop the event.
		currency = FallbackCode(item.Country)
	}

	return Event{
		Date:     day.UTC(),
		Time:     item.Time,
		Currency: currency,
		Headline: headline,
		Impact:   c.classifier.FromScore(item.Importance),
		Actual:   item.Actual,
		Forecast: item.Forecast,
		Source:   c.Name(),
	}, true
}

type marketPulseRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type marketPulseResponse struct {
	Events []marketPulseEvent `json:"events"`
}

type marketPulseEvent struct {
	CountryID  int     `json:"country_id"`
	Country    string  `json:"country"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Title      string  `json:"title"`
	Importance int     `json:"importance"`
	Actual     *string `json:"actual"`
	Forecast   *string `json:"forecast"`
}
