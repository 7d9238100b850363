package calendar

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Aggregator fans out to every configured source, merges their events in
// configured priority order, and returns one filtered, sorted, de-duplicated
// list. A failing source contributes zero events; it never aborts the call.
type Aggregator struct {
	sources      []SourceAdapter
	fetchTimeout time.Duration
	upcomingOnly bool
}

func NewAggregator(sources []SourceAdapter, upcomingOnly bool) *Aggregator {
	return &Aggregator{
		sources:      sources,
		fetchTimeout: 30 * time.Second,
		upcomingOnly: upcomingOnly,
	}
}

// SourceCount reports how many sources are configured.
func (a *Aggregator) SourceCount() int {
	return len(a.sources)
}

func (a *Aggregator) Aggregate(ctx context.Context, date, now time.Time) []Event {
	// Indexed by source so the merge keeps configured priority order no
	// matter which upstream answers first.
	results := make([][]Event, len(a.sources))

	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(i int, src SourceAdapter) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
			defer cancel()

			events, err := src.Fetch(fetchCtx, date)
			if err != nil {
				slog.Error("source fetch failed", "source", src.Name(), "error", err)
				return
			}
			if len(events) == 0 {
				slog.Info("source returned no events", "source", src.Name(), "date", date.Format("2006-01-02"))
				return
			}
			results[i] = events
		}(i, src)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil
	}

	nowMinute := now.UTC().Hour()*60 + now.UTC().Minute()

	merged := []Event{}
	seen := map[eventKey]bool{}
	for _, events := range results {
		for _, ev := range events {
			if !sameDay(ev.Date, date) {
				continue
			}
			if a.upcomingOnly && minuteOfDay(ev.Time) < nowMinute {
				continue
			}
			key := eventKey{ev.Time, ev.Currency, ev.Headline}
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, ev)
		}
	}

	// Stable sort on (time, currency); equal keys keep source priority order.
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Time != merged[j].Time {
			return merged[i].Time < merged[j].Time
		}
		return merged[i].Currency < merged[j].Currency
	})

	return merged
}

type eventKey struct {
	time     string
	currency string
	headline string
}
