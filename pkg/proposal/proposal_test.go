package proposal

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancer-docs/pkg/section"
)

func TestAssemble_FullProposal(t *testing.T) {
	p := &Proposal{
		FreelancerName:     "Ada Lovelace",
		ClientName:         "Acme Corp",
		ProjectTitle:       "Website Redesign",
		ProjectDescription: "Full redesign of the marketing site.",
		Timeline:           "6 weeks",
		Pricing:            "$12,000 fixed",
		Terms:              "50% upfront.",
	}

	doc := Assemble(p)

	require.Len(t, doc.Sections, 7)
	header, ok := doc.Sections[0].(section.Header)
	require.True(t, ok)
	assert.Equal(t, "Website Redesign", header.Title)

	headings := []string{}
	for _, s := range doc.Sections {
		if tb, ok := s.(section.TextBlock); ok {
			headings = append(headings, tb.Heading)
		}
	}
	assert.Equal(t, []string{"Project Description", "Timeline", "Pricing", "Terms"}, headings)

	assert.Equal(t, "Proposal-Website Redesign.pdf", doc.Filename)
}

func TestAssemble_EmptyFieldsOmitted(t *testing.T) {
	p := &Proposal{FreelancerName: "Ada Lovelace", ClientName: "Acme Corp"}

	doc := Assemble(p)

	// Header plus the two party blocks only.
	require.Len(t, doc.Sections, 3)
	header := doc.Sections[0].(section.Header)
	assert.Equal(t, "Project Proposal", header.Title)
}

func TestAssemble_Idempotent(t *testing.T) {
	p := &Proposal{ProjectTitle: "X", Timeline: "soon"}
	assert.Equal(t, spew.Sdump(Assemble(p)), spew.Sdump(Assemble(p)))
}
