package invoice

import "github.com/freelancer-docs/pkg/section"

// Assemble turns the invoice and its derived totals into the ordered section
// sequence both renderers consume: header, from/to party blocks, one table
// row per item in input order, the totals summary, and a notes block only
// when notes are non-empty. Pure and deterministic.
func Assemble(inv *Invoice, t Totals) section.Document {
	secs := make([]section.Section, 0, len(inv.Items)+5)

	secs = append(secs, section.Header{
		Title: "INVOICE",
		Ref:   inv.Number,
		Dates: []section.DateLine{
			{Label: "Issue Date", Date: inv.IssueDate},
			{Label: "Due Date", Date: inv.DueDate},
		},
	})

	secs = append(secs, section.PartyBlock{
		Label:   "From:",
		Name:    inv.Freelancer.Name,
		Address: inv.Freelancer.Address,
		Lines:   contactLines(inv.Freelancer.Email, inv.Freelancer.Phone),
	})
	secs = append(secs, section.PartyBlock{
		Label:   "To:",
		Name:    inv.Client.Name,
		Address: inv.Client.Address,
		Lines:   contactLines(inv.Client.Email, ""),
	})

	for _, it := range inv.Items {
		secs = append(secs, section.TableRow{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      float64(it.Quantity) * it.UnitPrice,
			Currency:    inv.Currency,
		})
	}

	secs = append(secs, section.TotalsSummary{
		Subtotal:   t.Subtotal,
		TaxPercent: inv.TaxPercent,
		TaxAmount:  t.TaxAmount,
		Total:      t.Total,
		Currency:   inv.Currency,
	})

	if inv.Notes != "" {
		secs = append(secs, section.TextBlock{Heading: "Notes:", Body: inv.Notes})
	}

	return section.Document{
		Filename: inv.Number + ".pdf",
		Sections: secs,
	}
}

func contactLines(email, phone string) []string {
	var lines []string
	if email != "" {
		lines = append(lines, email)
	}
	if phone != "" {
		lines = append(lines, phone)
	}
	return lines
}
