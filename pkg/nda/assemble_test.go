package nda

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancer-docs/pkg/section"
)

func fixtureNDA() *NDA {
	return &NDA{
		Disclosing:            Party{Name: "Globex", Address: "10 Globex Plaza", Representative: "H. Simpson"},
		Receiving:             Party{Name: "Initech", Address: "4120 Freidrich Ln"},
		AgreementDate:         "2025-06-15",
		ConfidentialityPeriod: "2",
		Jurisdiction:          "the State of Delaware",
		Clauses:               AllClauses(),
		CustomClauses:         "All notices must be in writing.",
	}
}

// numberedHeadings extracts the headings of all numbered clause blocks in
// emission order.
func numberedHeadings(doc section.Document) []string {
	var out []string
	for _, s := range doc.Sections {
		tb, ok := s.(section.TextBlock)
		if !ok || tb.Heading == "" {
			continue
		}
		if i := strings.IndexByte(tb.Heading, '.'); i > 0 {
			if _, err := strconv.Atoi(tb.Heading[:i]); err == nil {
				out = append(out, tb.Heading)
			}
		}
	}
	return out
}

func TestAssemble_NumberingDense_AllSubsets(t *testing.T) {
	for mask := 0; mask < 64; mask++ {
		n := fixtureNDA()
		n.CustomClauses = ""
		n.Jurisdiction = ""
		n.Clauses = Toggles{
			Definition:  mask&1 != 0,
			Obligations: mask&2 != 0,
			Exceptions:  mask&4 != 0,
			Return:      mask&8 != 0,
			Termination: mask&16 != 0,
			Survival:    mask&32 != 0,
		}

		headings := numberedHeadings(Assemble(n))
		for i, h := range headings {
			want := fmt.Sprintf("%d.", i+1)
			assert.True(t, strings.HasPrefix(h, want),
				"mask %06b: heading %d is %q, want prefix %q", mask, i, h, want)
		}
	}
}

func TestAssemble_CustomAndJurisdictionTakeNextNumbers(t *testing.T) {
	n := fixtureNDA()
	headings := numberedHeadings(Assemble(n))

	require.Len(t, headings, 8)
	assert.Equal(t, "7. Additional Terms", headings[6])
	assert.Equal(t, "8. Governing Law", headings[7])
}

func TestAssemble_TerminationOnly(t *testing.T) {
	n := &NDA{
		Disclosing:            Party{Name: "Globex"},
		Receiving:             Party{Name: "Initech"},
		AgreementDate:         "2025-06-15",
		ConfidentialityPeriod: "5",
		Clauses:               Toggles{Termination: true},
	}

	doc := Assemble(n)
	headings := numberedHeadings(doc)

	require.Len(t, headings, 1)
	assert.Equal(t, "1. Term and Termination", headings[0])

	var body string
	for _, s := range doc.Sections {
		if tb, ok := s.(section.TextBlock); ok && tb.Heading == "1. Term and Termination" {
			body = tb.Body
		}
	}
	assert.Contains(t, body, "5 years")

	for _, s := range doc.Sections {
		if tb, ok := s.(section.TextBlock); ok {
			assert.NotContains(t, tb.Heading, "Additional Terms")
			assert.NotContains(t, tb.Heading, "Governing Law")
		}
	}

	last, ok := doc.Sections[len(doc.Sections)-1].(section.SignaturePair)
	require.True(t, ok, "signature pair must always close the document")
	assert.Equal(t, "Globex", last.Left.Name)
	assert.Equal(t, "Initech", last.Right.Name)
}

func TestAssemble_ClauseOrderFixed(t *testing.T) {
	n := fixtureNDA()
	n.CustomClauses = ""
	n.Jurisdiction = ""

	headings := numberedHeadings(Assemble(n))
	want := []string{
		"1. Definition of Confidential Information",
		"2. Obligations of Receiving Party",
		"3. Exceptions to Confidential Information",
		"4. Return of Confidential Information",
		"5. Term and Termination",
		"6. Survival",
	}
	assert.Equal(t, want, headings)
}

func TestAssemble_JurisdictionVerbatim(t *testing.T) {
	n := fixtureNDA()
	doc := Assemble(n)

	var body string
	for _, s := range doc.Sections {
		if tb, ok := s.(section.TextBlock); ok && strings.HasSuffix(tb.Heading, "Governing Law") {
			body = tb.Body
		}
	}
	assert.Equal(t, "This Agreement shall be governed by and construed in accordance with the laws of the State of Delaware.", body)
}

func TestAssemble_PartyBlocksAndConnector(t *testing.T) {
	doc := Assemble(fixtureNDA())

	disclosing, ok := doc.Sections[2].(section.PartyBlock)
	require.True(t, ok)
	assert.Equal(t, "Globex", disclosing.Name)
	assert.Equal(t, []string{"Represented by: H. Simpson"}, disclosing.Lines)
	assert.Equal(t, `(hereinafter referred to as the "Disclosing Party")`, disclosing.Note)

	connector, ok := doc.Sections[3].(section.TextBlock)
	require.True(t, ok)
	assert.Equal(t, "and", connector.Body)

	receiving, ok := doc.Sections[4].(section.PartyBlock)
	require.True(t, ok)
	assert.Empty(t, receiving.Lines, "no representative line when representative is empty")
}

func TestAssemble_RepresentativeOnSignature(t *testing.T) {
	doc := Assemble(fixtureNDA())
	sig, ok := doc.Sections[len(doc.Sections)-1].(section.SignaturePair)
	require.True(t, ok)
	assert.Equal(t, "H. Simpson", sig.Left.Representative)
	assert.Empty(t, sig.Right.Representative)
}

func TestAssemble_Idempotent(t *testing.T) {
	n := fixtureNDA()
	assert.Equal(t, spew.Sdump(Assemble(n)), spew.Sdump(Assemble(n)))
}

func TestAssemble_Filename(t *testing.T) {
	doc := Assemble(fixtureNDA())
	assert.Equal(t, "NDA-Globex-Initech.pdf", doc.Filename)
}

func TestNewDefaults(t *testing.T) {
	n := New()
	assert.Equal(t, "2", n.ConfidentialityPeriod)
	assert.Equal(t, AllClauses(), n.Clauses)
}
