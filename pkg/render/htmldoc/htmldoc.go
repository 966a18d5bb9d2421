// Package htmldoc renders an assembled document as an HTML fragment for the
// interactive preview. It applies no business logic: all formatting goes
// through the shared helpers in pkg/section.
package htmldoc

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/freelancer-docs/pkg/section"
)

const docTemplate = `
{{define "header"}}<header class="doc-header"><h1>{{.Title}}</h1>{{with .Ref}}<p class="ref">{{.}}</p>{{end}}{{range .Dates}}<p class="date">{{.Label}}: {{date .Date}}</p>{{end}}</header>
{{end}}

{{define "party"}}<div class="party">{{with .Label}}<h2>{{.}}</h2>{{end}}<p class="name">{{.Name}}</p>{{with .Address}}<p class="address">{{.}}</p>{{end}}{{range .Lines}}<p>{{.}}</p>{{end}}{{with .Note}}<p class="note">{{.}}</p>{{end}}</div>
{{end}}

{{define "row"}}<tr><td>{{.Description}}</td><td class="num">{{.Quantity}}</td><td class="num">{{currency .UnitPrice .Currency}}</td><td class="num">{{currency .Amount .Currency}}</td></tr>
{{end}}

{{define "totals"}}<div class="totals"><p>Subtotal: <span>{{currency .Subtotal .Currency}}</span></p><p>Tax ({{percent .TaxPercent}}%): <span>{{currency .TaxAmount .Currency}}</span></p><p class="total">Total: <span>{{currency .Total .Currency}}</span></p></div>
{{end}}

{{define "text"}}<div class="text-block">{{with .Heading}}<h3>{{.}}</h3>{{end}}<p class="body">{{.Body}}</p></div>
{{end}}

{{define "signatory"}}<div class="signatory"><p class="role">{{.Role}}</p><p class="line">{{.Name}}</p>{{with .Representative}}<p class="rep">By: {{.}}</p>{{end}}</div>{{end}}

{{define "signatures"}}<div class="signatures">{{template "signatory" .Left}}{{template "signatory" .Right}}</div>
{{end}}
`

const (
	tableOpen  = `<table class="items"><thead><tr><th>Description</th><th>Quantity</th><th>Unit Price</th><th>Amount</th></tr></thead><tbody>` + "\n"
	tableClose = "</tbody></table>\n"
)

// Renderer implements section.Renderer for the on-screen preview.
type Renderer struct {
	tmpl *template.Template
}

// New parses the section templates. The formatting funcs are the shared
// helpers; the templates never format values themselves.
func New() *Renderer {
	tmpl := template.Must(template.New("doc").Funcs(template.FuncMap{
		"currency": section.FormatCurrency,
		"date":     section.FormatDate,
		"percent":  section.FormatPercent,
	}).Parse(docTemplate))
	return &Renderer{tmpl: tmpl}
}

// Render walks the section sequence in order, grouping consecutive table
// rows into a single items table.
func (r *Renderer) Render(doc section.Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<article class=\"document\">\n")

	inTable := false
	for _, s := range doc.Sections {
		_, isRow := s.(section.TableRow)
		if isRow && !inTable {
			buf.WriteString(tableOpen)
			inTable = true
		}
		if !isRow && inTable {
			buf.WriteString(tableClose)
			inTable = false
		}

		var err error
		switch s := s.(type) {
		case section.Header:
			err = r.tmpl.ExecuteTemplate(&buf, "header", s)
		case section.PartyBlock:
			err = r.tmpl.ExecuteTemplate(&buf, "party", s)
		case section.TableRow:
			err = r.tmpl.ExecuteTemplate(&buf, "row", s)
		case section.TextBlock:
			err = r.tmpl.ExecuteTemplate(&buf, "text", s)
		case section.TotalsSummary:
			err = r.tmpl.ExecuteTemplate(&buf, "totals", s)
		case section.SignaturePair:
			err = r.tmpl.ExecuteTemplate(&buf, "signatures", s)
		default:
			err = fmt.Errorf("htmldoc: unknown section type %T", s)
		}
		if err != nil {
			return nil, err
		}
	}
	if inTable {
		buf.WriteString(tableClose)
	}

	buf.WriteString("</article>\n")
	return buf.Bytes(), nil
}
