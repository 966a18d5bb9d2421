// Package proposal holds the project proposal record, the simplest of the
// document tools: a handful of free-text fields assembled into text blocks.
package proposal

import "github.com/freelancer-docs/pkg/section"

// Proposal is the raw form record. Every field is free text.
type Proposal struct {
	FreelancerName     string
	ClientName         string
	ProjectTitle       string
	ProjectDescription string
	Timeline           string
	Pricing            string
	Terms              string
}

// New returns an empty proposal.
func New() *Proposal {
	return &Proposal{}
}

// Assemble turns the proposal into the ordered section sequence. Empty
// fields emit no section; the prepared-by and prepared-for blocks are always
// present.
func Assemble(p *Proposal) section.Document {
	title := p.ProjectTitle
	if title == "" {
		title = "Project Proposal"
	}

	secs := []section.Section{
		section.Header{Title: title},
		section.PartyBlock{Label: "Prepared by:", Name: p.FreelancerName},
		section.PartyBlock{Label: "Prepared for:", Name: p.ClientName},
	}

	optional := []struct {
		heading string
		body    string
	}{
		{"Project Description", p.ProjectDescription},
		{"Timeline", p.Timeline},
		{"Pricing", p.Pricing},
		{"Terms", p.Terms},
	}
	for _, o := range optional {
		if o.body != "" {
			secs = append(secs, section.TextBlock{Heading: o.heading, Body: o.body})
		}
	}

	return section.Document{
		Filename: "Proposal-" + title + ".pdf",
		Sections: secs,
	}
}
