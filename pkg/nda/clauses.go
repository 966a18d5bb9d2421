package nda

import "fmt"

// The six standard clause bodies. These are contractual boilerplate carried
// over unchanged; edit with care.
const (
	definitionBody = `"Confidential Information" means any and all non-public information, including but not limited to, trade secrets, technical data, business methods, customer lists, marketing plans, product information, and any other proprietary information disclosed by the Disclosing Party to the Receiving Party, either directly or indirectly, in writing, orally, or by inspection of tangible objects.`

	obligationsBody = `The Receiving Party agrees to:
a) Keep and maintain all Confidential Information in strict confidence;
b) Not disclose Confidential Information to any third party without prior written consent from the Disclosing Party;
c) Use Confidential Information solely for the purpose of evaluating potential business opportunities between the parties;
d) Take all reasonable precautions to prevent unauthorized disclosure of Confidential Information.`

	exceptionsBody = `The obligations under this Agreement do not apply to information that:
a) Was publicly known at the time of disclosure;
b) Becomes publicly known through no fault of the Receiving Party;
c) Was rightfully in Receiving Party's possession prior to disclosure;
d) Is required to be disclosed by law or governmental order.`

	returnBody = `Upon written request by the Disclosing Party, the Receiving Party shall promptly return all Confidential Information, including all copies, notes, and derivatives thereof, or certify its destruction.`

	terminationBody = `This Agreement shall remain in effect for a period of %s years from the date of execution. The obligations of confidentiality shall survive the termination of this Agreement.`

	survivalBody = `The obligations contained in this Agreement shall survive the termination of this Agreement for the period specified herein.`
)

// clause is one standard clause: its title, whether the record selects it,
// and its body for the record.
type clause struct {
	title    string
	selected func(Toggles) bool
	body     func(*NDA) string
}

// standardClauses lists the six standard clauses in their fixed declaration
// order. Assembly walks this list; numbering counts only emitted clauses.
var standardClauses = []clause{
	{
		title:    "Definition of Confidential Information",
		selected: func(t Toggles) bool { return t.Definition },
		body:     func(*NDA) string { return definitionBody },
	},
	{
		title:    "Obligations of Receiving Party",
		selected: func(t Toggles) bool { return t.Obligations },
		body:     func(*NDA) string { return obligationsBody },
	},
	{
		title:    "Exceptions to Confidential Information",
		selected: func(t Toggles) bool { return t.Exceptions },
		body:     func(*NDA) string { return exceptionsBody },
	},
	{
		title:    "Return of Confidential Information",
		selected: func(t Toggles) bool { return t.Return },
		body:     func(*NDA) string { return returnBody },
	},
	{
		title:    "Term and Termination",
		selected: func(t Toggles) bool { return t.Termination },
		body: func(n *NDA) string {
			return fmt.Sprintf(terminationBody, n.ConfidentialityPeriod)
		},
	},
	{
		title:    "Survival",
		selected: func(t Toggles) bool { return t.Survival },
		body:     func(*NDA) string { return survivalBody },
	},
}
