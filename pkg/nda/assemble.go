package nda

import (
	"fmt"

	"github.com/freelancer-docs/pkg/section"
)

const introBody = `This Non-Disclosure Agreement (the "Agreement") is entered into by and between:`

// Assemble turns the agreement into the ordered section sequence: header,
// intro, both party blocks joined by a literal "and", the selected standard
// clauses in declaration order, the optional Additional Terms and Governing
// Law clauses, and the always-present signature pair.
//
// Clause numbers are dense: for any subset of toggles the emitted numbers are
// exactly 1..k, with the custom and jurisdiction clauses taking the next
// numbers after the last selected standard clause.
func Assemble(n *NDA) section.Document {
	secs := []section.Section{
		section.Header{
			Title: "NON-DISCLOSURE AGREEMENT",
			Dates: []section.DateLine{{Label: "Date", Date: n.AgreementDate}},
		},
		section.TextBlock{Body: introBody},
		partyBlock(n.Disclosing, "Disclosing Party"),
		section.TextBlock{Body: "and"},
		partyBlock(n.Receiving, "Receiving Party"),
	}

	num := 0
	for _, c := range standardClauses {
		if !c.selected(n.Clauses) {
			continue
		}
		num++
		secs = append(secs, section.TextBlock{
			Heading: fmt.Sprintf("%d. %s", num, c.title),
			Body:    c.body(n),
		})
	}

	if n.CustomClauses != "" {
		num++
		secs = append(secs, section.TextBlock{
			Heading: fmt.Sprintf("%d. Additional Terms", num),
			Body:    n.CustomClauses,
		})
	}

	if n.Jurisdiction != "" {
		num++
		secs = append(secs, section.TextBlock{
			Heading: fmt.Sprintf("%d. Governing Law", num),
			Body:    fmt.Sprintf("This Agreement shall be governed by and construed in accordance with the laws of %s.", n.Jurisdiction),
		})
	}

	secs = append(secs, section.SignaturePair{
		Left: section.Signatory{
			Role:           "DISCLOSING PARTY:",
			Name:           n.Disclosing.Name,
			Representative: n.Disclosing.Representative,
		},
		Right: section.Signatory{
			Role:           "RECEIVING PARTY:",
			Name:           n.Receiving.Name,
			Representative: n.Receiving.Representative,
		},
	})

	return section.Document{
		Filename: fmt.Sprintf("NDA-%s-%s.pdf", n.Disclosing.Name, n.Receiving.Name),
		Sections: secs,
	}
}

func partyBlock(p Party, role string) section.PartyBlock {
	b := section.PartyBlock{
		Name:    p.Name,
		Address: p.Address,
		Note:    fmt.Sprintf(`(hereinafter referred to as the "%s")`, role),
	}
	if p.Representative != "" {
		b.Lines = []string{"Represented by: " + p.Representative}
	}
	return b
}
