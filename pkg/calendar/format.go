package calendar

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// Summarizer rewrites the rendered calendar text. Implementations live in
// pkg/llm; the rule-based renderer below remains the contract of record.
type Summarizer interface {
	Summarize(ctx context.Context, calendarText string) (string, error)
}

// Formatter renders an ordered event list as display text. When a summarizer
// is configured its output replaces the rule-based text wholesale; any
// failure, timeout, or empty response falls back to the deterministic render.
type Formatter struct {
	summarizer Summarizer
	timeout    time.Duration
}

func NewFormatter(summarizer Summarizer) *Formatter {
	return &Formatter{
		summarizer: summarizer,
		timeout:    15 * time.Second,
	}
}

func (f *Formatter) Format(ctx context.Context, events []Event) string {
	text := RenderText(events)
	if f.summarizer == nil || len(events) == 0 {
		return text
	}

	sumCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	summary, err := f.summarizer.Summarize(sumCtx, text)
	if err != nil {
		slog.Warn("summarizer failed, using rule-based text", "error", err)
		return text
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		slog.Warn("summarizer returned empty text, using rule-based text")
		return text
	}
	return summary
}

// RenderText is the deterministic baseline renderer: events grouped by
// currency, groups in alphabetical order, events within a group by time.
func RenderText(events []Event) string {
	if len(events) == 0 {
		return ""
	}

	groups := map[string][]Event{}
	for _, ev := range events {
		groups[ev.Currency] = append(groups[ev.Currency], ev)
	}

	codes := make([]string, 0, len(groups))
	for code := range groups {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var b strings.Builder
	for i, code := range codes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(code)
		b.WriteString("\n")

		group := groups[code]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Time < group[j].Time
		})

		for _, ev := range group {
			b.WriteString(renderLine(ev))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderLine(ev Event) string {
	line := ev.Time + " " + impactMarker(ev.Impact) + " " + ev.Headline
	if ev.Actual == nil && ev.Forecast == nil {
		return line
	}
	return line + " | actual: " + valueOrNA(ev.Actual) + " | forecast: " + valueOrNA(ev.Forecast)
}

func impactMarker(impact Impact) string {
	switch impact {
	case ImpactHigh:
		return "[!!!]"
	case ImpactMedium:
		return "[!!]"
	case ImpactLow:
		return "[!]"
	default:
		return "[ ]"
	}
}

func valueOrNA(v *string) string {
	if v == nil {
		return "N/A"
	}
	return *v
}
