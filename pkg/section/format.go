package section

import (
	"fmt"
	"strconv"
	"time"
)

// Currency is one of the supported invoice currencies. The set is closed;
// extending it means adding both the constant and its symbol here.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	INR Currency = "INR"
)

var symbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	INR: "₹",
}

// Symbol returns the display symbol for the currency, or "" for an unknown
// code.
func (c Currency) Symbol() string {
	return symbols[c]
}

// ParseCurrency maps a form value onto the currency enumeration, falling back
// to USD for anything unrecognised.
func ParseCurrency(s string) Currency {
	c := Currency(s)
	if _, ok := symbols[c]; !ok {
		return USD
	}
	return c
}

// FormatCurrency renders an amount with the currency symbol prefixed and the
// amount fixed to two decimals, no thousands separator: FormatCurrency(1234.5,
// EUR) == "€1234.50".
func FormatCurrency(amount float64, c Currency) string {
	return fmt.Sprintf("%s%.2f", c.Symbol(), amount)
}

// FormatPercent renders a percentage with no trailing zeros, matching the
// literal value the user typed (10 -> "10", 7.5 -> "7.5").
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// FormatDate renders an ISO calendar date ("2025-03-09") long form in a fixed
// en-US locale: "March 9, 2025". Unparseable input is returned verbatim
// rather than failing.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}
