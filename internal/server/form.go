package server

import (
	"net/url"

	"github.com/shockerli/cvt"

	"github.com/freelancer-docs/pkg/invoice"
	"github.com/freelancer-docs/pkg/nda"
	"github.com/freelancer-docs/pkg/proposal"
	"github.com/freelancer-docs/pkg/section"
)

// Form decoding follows the silent-degrade policy: numeric fields that fail
// to parse coerce to zero, never to an error. Out-of-range values pass
// through untouched; validation is not this layer's job.

func decodeInvoice(f url.Values) *invoice.Invoice {
	inv := invoice.New()

	inv.Freelancer = invoice.Party{
		Name:    f.Get("freelancer_name"),
		Address: f.Get("freelancer_address"),
		Email:   f.Get("freelancer_email"),
		Phone:   f.Get("freelancer_phone"),
	}
	inv.Client = invoice.Party{
		Name:    f.Get("client_name"),
		Address: f.Get("client_address"),
		Email:   f.Get("client_email"),
	}

	if v := f.Get("invoice_number"); v != "" {
		inv.Number = v
	}
	if v := f.Get("invoice_date"); v != "" {
		inv.IssueDate = v
	}
	if v := f.Get("due_date"); v != "" {
		inv.DueDate = v
	}
	if items := decodeItems(f); len(items) > 0 {
		inv.Items = items
	}
	inv.TaxPercent = cvt.Float64(f.Get("tax_percentage"))
	inv.Currency = section.ParseCurrency(f.Get("currency"))
	inv.Notes = f.Get("notes")
	return inv
}

// decodeItems reads the repeated item_* keys positionally. A missing column
// for a row coerces to its zero value.
func decodeItems(f url.Values) []invoice.Item {
	descs := f["item_description"]
	qtys := f["item_quantity"]
	prices := f["item_unit_price"]

	n := len(descs)
	if len(qtys) > n {
		n = len(qtys)
	}
	if len(prices) > n {
		n = len(prices)
	}

	items := make([]invoice.Item, 0, n)
	for i := 0; i < n; i++ {
		var it invoice.Item
		if i < len(descs) {
			it.Description = descs[i]
		}
		if i < len(qtys) {
			it.Quantity = cvt.Int(qtys[i])
		}
		if i < len(prices) {
			it.UnitPrice = cvt.Float64(prices[i])
		}
		items = append(items, it)
	}
	return items
}

var clauseKeys = []string{
	"clause_definition",
	"clause_obligations",
	"clause_exceptions",
	"clause_return",
	"clause_termination",
	"clause_survival",
}

func decodeNDA(f url.Values) *nda.NDA {
	n := nda.New()

	n.Disclosing = nda.Party{
		Name:           f.Get("disclosing_name"),
		Address:        f.Get("disclosing_address"),
		Representative: f.Get("disclosing_representative"),
	}
	n.Receiving = nda.Party{
		Name:           f.Get("receiving_name"),
		Address:        f.Get("receiving_address"),
		Representative: f.Get("receiving_representative"),
	}

	if v := f.Get("agreement_date"); v != "" {
		n.AgreementDate = v
	}
	if v := f.Get("confidentiality_period"); v != "" {
		n.ConfidentialityPeriod = v
	}
	n.Jurisdiction = f.Get("jurisdiction")
	n.CustomClauses = f.Get("custom_clauses")

	// Checkbox semantics: an unchecked box is absent from the form. Only
	// override the all-on defaults when the form carried any clause key at
	// all, so API callers who omit the toggles get the default set.
	if clausesPosted(f) {
		n.Clauses = nda.Toggles{
			Definition:  toggleOn(f, "clause_definition"),
			Obligations: toggleOn(f, "clause_obligations"),
			Exceptions:  toggleOn(f, "clause_exceptions"),
			Return:      toggleOn(f, "clause_return"),
			Termination: toggleOn(f, "clause_termination"),
			Survival:    toggleOn(f, "clause_survival"),
		}
	}
	return n
}

func clausesPosted(f url.Values) bool {
	for _, k := range clauseKeys {
		if _, ok := f[k]; ok {
			return true
		}
	}
	return false
}

func toggleOn(f url.Values, key string) bool {
	v, ok := f[key]
	if !ok {
		return false
	}
	return len(v) == 0 || (v[0] != "false" && v[0] != "0")
}

func decodeProposal(f url.Values) *proposal.Proposal {
	p := proposal.New()
	p.FreelancerName = f.Get("freelancer_name")
	p.ClientName = f.Get("client_name")
	p.ProjectTitle = f.Get("project_title")
	p.ProjectDescription = f.Get("project_description")
	p.Timeline = f.Get("timeline")
	p.Pricing = f.Get("pricing")
	p.Terms = f.Get("terms")
	return p
}
