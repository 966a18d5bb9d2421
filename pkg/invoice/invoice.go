// Package invoice holds the invoice form record, its derived totals and the
// assembly into the shared section sequence.
package invoice

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/freelancer-docs/pkg/section"
)

// ErrLastItem is returned when removal would leave the invoice without any
// line item. An invoice always keeps at least one row.
var ErrLastItem = errors.New("invoice: cannot remove the last item")

// Party identifies one side of the invoice. All fields are free text.
type Party struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// Item is one invoice line. Quantity and UnitPrice are expected non-negative
// but are not enforced; out-of-range values propagate into the totals.
type Item struct {
	Description string
	Quantity    int
	UnitPrice   float64
}

// Invoice is the raw form record. Derived totals are never stored on it; they
// are recomputed from Items and TaxPercent on every use.
type Invoice struct {
	Freelancer Party
	Client     Party

	Number    string
	IssueDate string // ISO yyyy-mm-dd
	DueDate   string

	Items      []Item
	TaxPercent float64
	Currency   section.Currency
	Notes      string
}

// New returns an invoice with the page-load defaults: a generated number,
// issue date today, due date thirty days out, one empty line item and USD.
func New() *Invoice {
	now := time.Now()
	return &Invoice{
		Number:    generateNumber(now),
		IssueDate: now.Format("2006-01-02"),
		DueDate:   now.AddDate(0, 0, 30).Format("2006-01-02"),
		Items:     []Item{{Quantity: 1}},
		Currency:  section.USD,
	}
}

// generateNumber builds the default invoice number from the current year and
// month plus a random three-digit suffix. Not guaranteed unique; the user may
// overwrite it.
func generateNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d%02d%03d", now.Year(), int(now.Month()), rand.Intn(1000))
}

// AddItem appends an empty line item.
func (inv *Invoice) AddItem() {
	inv.Items = append(inv.Items, Item{Quantity: 1})
}

// RemoveItem deletes the item at index i, preserving the order of the
// remaining rows. Removing the last remaining item fails with ErrLastItem;
// an out-of-range index is a no-op.
func (inv *Invoice) RemoveItem(i int) error {
	if len(inv.Items) <= 1 {
		return ErrLastItem
	}
	if i < 0 || i >= len(inv.Items) {
		return nil
	}
	inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	return nil
}

// Totals are the derived fields of an invoice.
type Totals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// ComputeTotals derives subtotal, tax and total from the line items and the
// tax percentage. The sum is order-independent. Values are taken as given:
// negative prices and out-of-range percentages are not clamped.
func ComputeTotals(items []Item, taxPercent float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += float64(it.Quantity) * it.UnitPrice
	}
	tax := subtotal * taxPercent / 100
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal + tax,
	}
}

// Totals recomputes the derived fields for the invoice's current state.
func (inv *Invoice) Totals() Totals {
	return ComputeTotals(inv.Items, inv.TaxPercent)
}
