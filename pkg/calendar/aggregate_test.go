package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type stubAdapter struct {
	name   string
	events []Event
	err    error
}

func (s *stubAdapter) Fetch(ctx context.Context, date time.Time) ([]Event, error) {
	return s.events, s.err
}

func (s *stubAdapter) Name() string {
	return s.name
}

var testDate = time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)

func testEvent(clock, currency, headline string, source string) Event {
	return Event{
		Date:     testDate,
		Time:     clock,
		Currency: currency,
		Headline: headline,
		Impact:   ImpactLow,
		Source:   source,
	}
}

func TestAggregateIsolatesFailingSource(t *testing.T) {
	broken := &stubAdapter{name: "broken", err: errors.New("connection refused")}
	healthy := &stubAdapter{name: "healthy", events: []Event{
		testEvent("14:30", "USD", "Core PCE", "healthy"),
		testEvent("09:00", "EUR", "ECB Speech", "healthy"),
		testEvent("12:00", "GBP", "BoE Minutes", "healthy"),
	}}

	agg := NewAggregator([]SourceAdapter{broken, healthy}, false)
	events := agg.Aggregate(context.Background(), testDate, testDate)

	assert.Equal(t, 3, len(events))
	assert.Equal(t, "09:00", events[0].Time)
	assert.Equal(t, "12:00", events[1].Time)
	assert.Equal(t, "14:30", events[2].Time)
}

func TestAggregateDeduplicatesAcrossSources(t *testing.T) {
	first := &stubAdapter{name: "first", events: []Event{
		testEvent("14:30", "USD", "Core PCE", "first"),
	}}
	second := &stubAdapter{name: "second", events: []Event{
		testEvent("14:30", "USD", "Core PCE", "second"),
		testEvent("15:00", "USD", "FOMC Minutes", "second"),
	}}

	agg := NewAggregator([]SourceAdapter{first, second}, false)
	events := agg.Aggregate(context.Background(), testDate, testDate)

	assert.Equal(t, 2, len(events))
	// Identical (time, currency, headline): first configured source wins.
	assert.Equal(t, "first", events[0].Source)
}

func TestAggregateUpcomingOnlyDropsPastEvents(t *testing.T) {
	src := &stubAdapter{name: "src", events: []Event{
		testEvent("09:00", "EUR", "ECB Speech", "src"),
		testEvent("12:00", "GBP", "BoE Minutes", "src"),
		testEvent("14:30", "USD", "Core PCE", "src"),
	}}

	now := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)

	agg := NewAggregator([]SourceAdapter{src}, true)
	events := agg.Aggregate(context.Background(), testDate, now)

	// 09:00 is strictly before the cursor; 12:00 is not.
	assert.Equal(t, 2, len(events))
	assert.Equal(t, "12:00", events[0].Time)
	assert.Equal(t, "14:30", events[1].Time)
}

func TestAggregateDropsOtherDates(t *testing.T) {
	leaky := testEvent("10:00", "USD", "Stale Event", "src")
	leaky.Date = testDate.AddDate(0, 0, -1)

	src := &stubAdapter{name: "src", events: []Event{
		leaky,
		testEvent("11:00", "USD", "Fresh Event", "src"),
	}}

	agg := NewAggregator([]SourceAdapter{src}, false)
	events := agg.Aggregate(context.Background(), testDate, testDate)

	assert.Equal(t, 1, len(events))
	assert.Equal(t, "Fresh Event", events[0].Headline)
}

func TestAggregateTieBreakByCurrency(t *testing.T) {
	src := &stubAdapter{name: "src", events: []Event{
		testEvent("14:30", "USD", "Core PCE", "src"),
		testEvent("14:30", "CAD", "Trade Balance", "src"),
	}}

	agg := NewAggregator([]SourceAdapter{src}, false)
	events := agg.Aggregate(context.Background(), testDate, testDate)

	assert.Equal(t, "CAD", events[0].Currency)
	assert.Equal(t, "USD", events[1].Currency)
}

func TestAggregateAllSourcesFailIsEmptyNotError(t *testing.T) {
	agg := NewAggregator([]SourceAdapter{
		&stubAdapter{name: "a", err: errors.New("down")},
		&stubAdapter{name: "b"},
	}, false)

	events := agg.Aggregate(context.Background(), testDate, testDate)
	assert.Equal(t, 0, len(events))
}

func TestAggregateCancelledContextDiscardsResults(t *testing.T) {
	src := &stubAdapter{name: "src", events: []Event{
		testEvent("10:00", "USD", "Some Event", "src"),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agg := NewAggregator([]SourceAdapter{src}, false)
	events := agg.Aggregate(ctx, testDate, testDate)

	assert.Equal(t, 0, len(events))
}

func TestAggregateDeterministic(t *testing.T) {
	srcA := &stubAdapter{name: "a", events: []Event{
		testEvent("14:30", "USD", "Core PCE", "a"),
		testEvent("09:00", "EUR", "ECB Speech", "a"),
	}}
	srcB := &stubAdapter{name: "b", events: []Event{
		testEvent("09:00", "GBP", "BoE Speech", "b"),
	}}

	agg := NewAggregator([]SourceAdapter{srcA, srcB}, false)

	first := agg.Aggregate(context.Background(), testDate, testDate)
	second := agg.Aggregate(context.Background(), testDate, testDate)

	assert.Equal(t, first, second)
}
