package calendar

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const fxStreetFeedURL = "https://www.fxstreet.com/rss/economic-calendar"

// FXStreetClient reads a syndication feed of calendar entries. Titles carry
// the currency as a leading parenthesised token, e.g. "(EU) ECB Rate Decision".
type FXStreetClient struct {
	httpClient *http.Client
	currencies CurrencyTable
	classifier *Classifier
}

func NewFXStreetClient(currencies CurrencyTable, classifier *Classifier) *FXStreetClient {
	return &FXStreetClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		currencies: currencies,
		classifier: classifier,
	}
}

func (c *FXStreetClient) Name() string {
	return "FXStreet"
}

func (c *FXStreetClient) Fetch(ctx context.Context, date time.Time) ([]Event, error) {
	parser := gofeed.NewParser()
	parser.Client = c.httpClient

	feed, err := parser.ParseURLWithContext(fxStreetFeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fxstreet fetch: %w", err)
	}

	events := []Event{}
	for _, item := range feed.Items {
		if item.PublishedParsed == nil {
			continue
		}
		published := item.PublishedParsed.UTC()
		if !sameDay(published, date) {
			continue
		}

		token, headline, ok := splitCurrencyToken(item.Title)
		if !ok || headline == "" {
			continue
		}

		events = append(events, Event{
			Date:     published.Truncate(24 * time.Hour),
			Time:     published.Format("15:04"),
			Currency: c.currencies.ResolveOrFallback(token),
			Headline: headline,
			Impact:   c.classifier.FromKeywords(item.Title, item.Description),
			Source:   c.Name(),
		})
	}

	return events, nil
}

// splitCurrencyToken extracts the leading "(XX)" token from a feed title and
// returns it together with the remaining headline.
func splitCurrencyToken(title string) (token, headline string, ok bool) {
	title = strings.TrimSpace(title)
	if !strings.HasPrefix(title, "(") {
		return "", "", false
	}
	end := strings.Index(title, ")")
	if end <= 1 {
		return "", "", false
	}
	return title[1:end], strings.TrimSpace(title[end+1:]), true
}
