package calendar

import "strings"

// Classifier assigns an impact tier to an event when the source does not
// supply one directly. Keyword lists are fixed at construction.
type Classifier struct {
	highTerms   []string
	mediumTerms []string
}

func NewClassifier() *Classifier {
	return &Classifier{
		highTerms:   []string{"NFP", "CPI", "GDP", "PMI", "RATE", "EMPLOYMENT", "INTEREST"},
		mediumTerms: []string{"RETAIL", "TRADE", "MANUFACTURING", "CONSUMER", "PRODUCTION"},
	}
}

// FromIndicators maps a filled-indicator count (0-3) to a tier.
func (c *Classifier) FromIndicators(filled int) Impact {
	switch {
	case filled >= 3:
		return ImpactHigh
	case filled == 2:
		return ImpactMedium
	case filled == 1:
		return ImpactLow
	default:
		return ImpactNone
	}
}

// FromScore maps a 0-100 importance score to a tier.
func (c *Classifier) FromScore(score int) Impact {
	switch {
	case score >= 70:
		return ImpactHigh
	case score >= 40:
		return ImpactMedium
	case score > 0:
		return ImpactLow
	default:
		return ImpactNone
	}
}

// FromKeywords scans the given text parts for known market-moving terms,
// high-impact terms before medium-impact ones; the first matching set wins.
// Scheduled events with no recognized term still rank Low, never None.
func (c *Classifier) FromKeywords(parts ...string) Impact {
	text := strings.ToUpper(strings.Join(parts, " "))
	for _, term := range c.highTerms {
		if strings.Contains(text, term) {
			return ImpactHigh
		}
	}
	for _, term := range c.mediumTerms {
		if strings.Contains(text, term) {
			return ImpactMedium
		}
	}
	return ImpactLow
}

// FromLabel maps a vendor-supplied impact label; unknown labels fall through
// to None so callers can chain a keyword pass.
func (c *Classifier) FromLabel(label string) Impact {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high":
		return ImpactHigh
	case "medium":
		return ImpactMedium
	case "low":
		return ImpactLow
	default:
		return ImpactNone
	}
}
