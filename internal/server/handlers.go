package server

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/freelancer-docs/pkg/invoice"
	"github.com/freelancer-docs/pkg/nda"
	"github.com/freelancer-docs/pkg/proposal"
	"github.com/freelancer-docs/pkg/section"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	t, err := template.ParseFiles(filepath.Join(s.cfg.TemplatesDir, "index.html"))
	if err != nil {
		s.log.Error(r.Context(), "parse index template", "err", err)
		http.Error(w, "Error loading page", http.StatusInternalServerError)
		return
	}
	if err := t.Execute(w, nil); err != nil {
		s.log.Error(r.Context(), "render index", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// handleInvoicePreview godoc
//
//	@Summary	Render the invoice preview
//	@Tags		invoice
//	@Accept		x-www-form-urlencoded
//	@Produce	html
//	@Success	200	{string}	string	"HTML preview fragment"
//	@Router		/invoice/preview [post]
func (s *Server) handleInvoicePreview(w http.ResponseWriter, r *http.Request) {
	inv, ok := s.invoiceFromRequest(w, r)
	if !ok {
		return
	}
	s.writePreview(w, r, invoice.Assemble(inv, inv.Totals()))
}

// handleInvoicePDF godoc
//
//	@Summary	Export the invoice as PDF
//	@Tags		invoice
//	@Accept		x-www-form-urlencoded
//	@Produce	application/pdf
//	@Success	200	{file}	binary
//	@Router		/invoice/pdf [post]
func (s *Server) handleInvoicePDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := s.invoiceFromRequest(w, r)
	if !ok {
		return
	}
	s.writePDF(w, r, invoice.Assemble(inv, inv.Totals()))
}

// handleNDAPreview godoc
//
//	@Summary	Render the NDA preview
//	@Tags		nda
//	@Accept		x-www-form-urlencoded
//	@Produce	html
//	@Success	200	{string}	string	"HTML preview fragment"
//	@Router		/nda/preview [post]
func (s *Server) handleNDAPreview(w http.ResponseWriter, r *http.Request) {
	n, ok := s.ndaFromRequest(w, r)
	if !ok {
		return
	}
	s.writePreview(w, r, nda.Assemble(n))
}

// handleNDAPDF godoc
//
//	@Summary	Export the NDA as PDF
//	@Tags		nda
//	@Accept		x-www-form-urlencoded
//	@Produce	application/pdf
//	@Success	200	{file}	binary
//	@Router		/nda/pdf [post]
func (s *Server) handleNDAPDF(w http.ResponseWriter, r *http.Request) {
	n, ok := s.ndaFromRequest(w, r)
	if !ok {
		return
	}
	s.writePDF(w, r, nda.Assemble(n))
}

// handleProposalPreview godoc
//
//	@Summary	Render the proposal preview
//	@Tags		proposal
//	@Accept		x-www-form-urlencoded
//	@Produce	html
//	@Success	200	{string}	string	"HTML preview fragment"
//	@Router		/proposal/preview [post]
func (s *Server) handleProposalPreview(w http.ResponseWriter, r *http.Request) {
	p, ok := s.proposalFromRequest(w, r)
	if !ok {
		return
	}
	s.writePreview(w, r, proposal.Assemble(p))
}

// handleProposalPDF godoc
//
//	@Summary	Export the proposal as PDF
//	@Tags		proposal
//	@Accept		x-www-form-urlencoded
//	@Produce	application/pdf
//	@Success	200	{file}	binary
//	@Router		/proposal/pdf [post]
func (s *Server) handleProposalPDF(w http.ResponseWriter, r *http.Request) {
	p, ok := s.proposalFromRequest(w, r)
	if !ok {
		return
	}
	s.writePDF(w, r, proposal.Assemble(p))
}

func (s *Server) invoiceFromRequest(w http.ResponseWriter, r *http.Request) (*invoice.Invoice, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return nil, false
	}
	return decodeInvoice(r.Form), true
}

func (s *Server) ndaFromRequest(w http.ResponseWriter, r *http.Request) (*nda.NDA, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return nil, false
	}
	return decodeNDA(r.Form), true
}

func (s *Server) proposalFromRequest(w http.ResponseWriter, r *http.Request) (*proposal.Proposal, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return nil, false
	}
	return decodeProposal(r.Form), true
}

func (s *Server) writePreview(w http.ResponseWriter, r *http.Request, doc section.Document) {
	out, err := s.preview.Render(doc)
	if err != nil {
		s.log.Error(r.Context(), "render preview", "err", err)
		http.Error(w, "Error rendering preview", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

func (s *Server) writePDF(w http.ResponseWriter, r *http.Request, doc section.Document) {
	out, err := s.export.Render(doc)
	if err != nil {
		s.log.Error(r.Context(), "render pdf", "err", err)
		http.Error(w, "Error generating PDF", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Write(out)
}
