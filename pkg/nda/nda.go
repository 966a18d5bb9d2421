// Package nda holds the non-disclosure agreement record and its assembly into
// the shared section sequence. The standard clause bodies are fixed legal
// boilerplate, parameterized only by the confidentiality period.
package nda

import "time"

// Party is one side of the agreement.
type Party struct {
	Name           string
	Address        string
	Representative string
}

// Toggles selects which of the six standard clauses the agreement includes.
// The field order here is the fixed declaration order clauses are emitted in.
type Toggles struct {
	Definition  bool
	Obligations bool
	Exceptions  bool
	Return      bool
	Termination bool
	Survival    bool
}

// AllClauses returns the default toggle set with every standard clause on.
func AllClauses() Toggles {
	return Toggles{
		Definition:  true,
		Obligations: true,
		Exceptions:  true,
		Return:      true,
		Termination: true,
		Survival:    true,
	}
}

// NDA is the raw form record.
type NDA struct {
	Disclosing Party
	Receiving  Party

	AgreementDate string // ISO yyyy-mm-dd
	// ConfidentialityPeriod is the term in years, one of "1", "2", "3", "5",
	// "10". Kept as the form value; it is only ever interpolated into text.
	ConfidentialityPeriod string
	Jurisdiction          string

	Clauses       Toggles
	CustomClauses string
}

// New returns an agreement with the page-load defaults: dated today, a
// two-year term and every standard clause selected.
func New() *NDA {
	return &NDA{
		AgreementDate:         time.Now().Format("2006-01-02"),
		ConfidentialityPeriod: "2",
		Clauses:               AllClauses(),
	}
}

// PeriodYears is the closed set of selectable confidentiality periods.
var PeriodYears = []string{"1", "2", "3", "5", "10"}
