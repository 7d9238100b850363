package calendar

import "strings"

// CurrencyTable maps source-specific tokens (country abbreviations, ISO
// codes, region tags) to the canonical 3-letter currency codes. It is built
// once at startup and read-only afterwards.
type CurrencyTable map[string]string

func DefaultCurrencyTable() CurrencyTable {
	return CurrencyTable{
		"US": "USD", "USA": "USD", "USD": "USD", "UNITED STATES": "USD",
		"EU": "EUR", "EMU": "EUR", "EUR": "EUR", "EUROZONE": "EUR", "EURO ZONE": "EUR",
		"UK": "GBP", "GB": "GBP", "GBP": "GBP", "UNITED KINGDOM": "GBP",
		"JP": "JPY", "JPY": "JPY", "JAPAN": "JPY",
		"AU": "AUD", "AUD": "AUD", "AUSTRALIA": "AUD",
		"CA": "CAD", "CAD": "CAD", "CANADA": "CAD",
		"CH": "CHF", "CHF": "CHF", "SWITZERLAND": "CHF",
		"NZ": "NZD", "NZD": "NZD", "NEW ZEALAND": "NZD",
	}
}

// Resolve maps a raw source token to a canonical code.
func (t CurrencyTable) Resolve(token string) (string, bool) {
	code, ok := t[strings.ToUpper(strings.TrimSpace(token))]
	return code, ok
}

// ResolveOrFallback returns the canonical code for token, or the lossy
// fallback token when unmapped.
func (t CurrencyTable) ResolveOrFallback(token string) string {
	if code, ok := t.Resolve(token); ok {
		return code
	}
	return FallbackCode(token)
}

// FallbackCode derives a 3-letter token from an unmapped country or currency
// string: the first three letters, uppercased, non-letters stripped. Lossy on
// purpose; it marks the event rather than guaranteeing a real ISO code.
func FallbackCode(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "XXX"
	}
	return b.String()
}

// CountryCodes maps a JSON upstream's numeric country identifiers to
// canonical currency codes.
type CountryCodes map[int]string

func DefaultCountryCodes() CountryCodes {
	return CountryCodes{
		5:  "USD",
		72: "EUR",
		4:  "GBP",
		35: "JPY",
		25: "AUD",
		6:  "CAD",
		12: "CHF",
		43: "NZD",
	}
}
