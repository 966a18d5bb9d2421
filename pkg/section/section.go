// Package section defines the shared document model: an ordered sequence of
// typed sections produced by the assemblers and consumed, unchanged, by every
// renderer. Keeping both the on-screen preview and the PDF export on this one
// data shape is what guarantees they never drift apart.
package section

// Section is one atomic renderable unit of a document.
type Section interface {
	section()
}

// Document is a fully assembled document: the ordered section sequence plus
// the filename the export renderer should suggest for download.
type Document struct {
	Filename string
	Sections []Section
}

// Header opens a document: a title, an optional reference line (invoice
// number) and zero or more labelled dates in ISO form. Renderers format the
// dates through FormatDate.
type Header struct {
	Title string
	Ref   string
	Dates []DateLine
}

// DateLine is a labelled ISO date inside a Header ("Issue Date", "Due Date").
type DateLine struct {
	Label string
	Date  string
}

// PartyBlock identifies one party to the document. Lines carries free-form
// contact or representation lines; Note is a trailing annotation such as the
// NDA's "(hereinafter referred to as ...)" tag.
type PartyBlock struct {
	Label   string
	Name    string
	Address string
	Lines   []string
	Note    string
}

// TableRow is one invoice line item. Amount is precomputed by the assembler
// (quantity times unit price); renderers format all money fields through
// FormatCurrency with the row's currency.
type TableRow struct {
	Description string
	Quantity    int
	UnitPrice   float64
	Amount      float64
	Currency    Currency
}

// TextBlock is a heading plus a body paragraph. Either may be empty: clause
// blocks carry both, connector lines ("and") carry only a body.
type TextBlock struct {
	Heading string
	Body    string
}

// TotalsSummary closes an invoice: subtotal, the tax line labelled with the
// literal percentage the user entered, and the grand total.
type TotalsSummary struct {
	Subtotal   float64
	TaxPercent float64
	TaxAmount  float64
	Total      float64
	Currency   Currency
}

// SignaturePair is the two-column signature footer. Representative lines are
// rendered only when non-empty.
type SignaturePair struct {
	Left  Signatory
	Right Signatory
}

// Signatory is one side of a SignaturePair.
type Signatory struct {
	Role           string
	Name           string
	Representative string
}

func (Header) section()        {}
func (PartyBlock) section()    {}
func (TableRow) section()      {}
func (TextBlock) section()     {}
func (TotalsSummary) section() {}
func (SignaturePair) section() {}

// Renderer is any consumer of an assembled document. The interactive preview
// and the PDF export both implement it; neither may apply business logic of
// its own beyond the shared formatting helpers.
type Renderer interface {
	Render(doc Document) ([]byte, error)
}
