package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const investingURL = "https://www.investing.com/economic-calendar/"

// InvestingClient scrapes the economic calendar HTML table. The upstream
// rejects non-browser clients, so every request carries a browser header set.
type InvestingClient struct {
	httpClient *http.Client
	currencies CurrencyTable
	classifier *Classifier
}

func NewInvestingClient(currencies CurrencyTable, classifier *Classifier) *InvestingClient {
	return &InvestingClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		currencies: currencies,
		classifier: classifier,
	}
}

func (c *InvestingClient) Name() string {
	return "Investing"
}

func (c *InvestingClient) Fetch(ctx context.Context, date time.Time) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, investingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("investing request: %w", err)
	}
	setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("investing fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("investing fetch: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("investing parse: %w", err)
	}

	table := doc.Find("#economicCalendarData")
	if table.Length() == 0 {
		return nil, fmt.Errorf("investing parse: calendar table not found")
	}

	// Date rows and event rows are interleaved: a date row carries no event
	// fields and moves the cursor for every following event row.
	events := []Event{}
	cursor := date.UTC()
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if day := row.Find("td.theDay"); day.Length() > 0 {
			parsed, err := time.Parse("Monday, January 2, 2006", strings.TrimSpace(day.Text()))
			if err != nil {
				slog.Warn("skipping unparseable date row", "source", c.Name(), "text", day.Text())
				return
			}
			cursor = parsed.UTC()
			return
		}

		ev, ok := c.parseEventRow(row, cursor)
		if !ok {
			return
		}
		if !sameDay(ev.Date, date) {
			return
		}
		events = append(events, ev)
	})

	return events, nil
}

func (c *InvestingClient) parseEventRow(row *goquery.Selection, cursor time.Time) (Event, bool) {
	timeCell := row.Find("td.js-time")
	currencyCell := row.Find("td.flagCur")
	impactCell := row.Find("td.sentiment")
	eventCell := row.Find("td.event")
	if timeCell.Length() == 0 || currencyCell.Length() == 0 ||
		impactCell.Length() == 0 || eventCell.Length() == 0 {
		return Event{}, false
	}

	clock := strings.TrimSpace(timeCell.Text())
	if _, err := time.Parse("15:04", clock); err != nil {
		return Event{}, false
	}

	headline := strings.TrimSpace(eventCell.Text())
	if headline == "" {
		return Event{}, false
	}

	currency := strings.TrimSpace(strings.ReplaceAll(currencyCell.Text(), " ", " "))
	filled := impactCell.Find("i.grayFullBullishIcon").Length()

	return Event{
		Date:     cursor,
		Time:     clock,
		Currency: c.currencies.ResolveOrFallback(currency),
		Headline: headline,
		Impact:   c.classifier.FromIndicators(filled),
		Actual:   cellValue(row.Find("td.act")),
		Forecast: cellValue(row.Find("td.fore")),
		Source:   c.Name(),
	}, true
}

// cellValue treats a missing or blank cell as an absent value.
func cellValue(cell *goquery.Selection) *string {
	if cell.Length() == 0 {
		return nil
	}
	text := strings.TrimSpace(strings.ReplaceAll(cell.Text(), " ", " "))
	if text == "" {
		return nil
	}
	return &text
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.investing.com/")
}
