package calendar

import (
	"context"
	"time"
)

// Impact is the ordinal market-impact tier assigned to an event.
type Impact int

const (
	ImpactNone Impact = iota
	ImpactLow
	ImpactMedium
	ImpactHigh
)

func (i Impact) String() string {
	switch i {
	case ImpactHigh:
		return "high"
	case ImpactMedium:
		return "medium"
	case ImpactLow:
		return "low"
	default:
		return "none"
	}
}

// Event is the normalized, source-agnostic shape of one scheduled
// macroeconomic release. Actual and Forecast are nil when the source did
// not report them, which is distinct from an empty string.
type Event struct {
	Date     time.Time
	Time     string // "HH:MM", UTC
	Currency string
	Headline string
	Impact   Impact
	Actual   *string
	Forecast *string
	Source   string
}

type SourceAdapter interface {
	Fetch(ctx context.Context, date time.Time) ([]Event, error)
	Name() string
}

// minuteOfDay converts a validated "HH:MM" string to minutes since midnight.
// Returns -1 for anything unparseable.
func minuteOfDay(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
