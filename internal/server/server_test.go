package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancer-docs/internal/config"
	"github.com/freelancer-docs/internal/logging"
)

func testServer() *Server {
	cfg := config.Load()
	return New(cfg, logging.NewJSON(io.Discard, "error"))
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func scenarioInvoiceForm() url.Values {
	return url.Values{
		"freelancer_name":  {"Ada Lovelace"},
		"client_name":      {"Acme Corp"},
		"invoice_number":   {"INV-2025090042"},
		"invoice_date":     {"2025-09-01"},
		"due_date":         {"2025-10-01"},
		"item_description": {"Design", "Dev"},
		"item_quantity":    {"2", "10"},
		"item_unit_price":  {"100.00", "50.00"},
		"tax_percentage":   {"10"},
		"currency":         {"USD"},
	}
}

func TestInvoicePreview(t *testing.T) {
	h := testServer().Handler()
	rr := postForm(t, h, "/invoice/preview", scenarioInvoiceForm())

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.Contains(t, body, "$700.00")
	assert.Contains(t, body, "Tax (10%)")
	assert.Contains(t, body, "$70.00")
	assert.Contains(t, body, "$770.00")
	assert.Contains(t, body, "September 1, 2025")
}

func TestInvoicePDF(t *testing.T) {
	h := testServer().Handler()
	rr := postForm(t, h, "/invoice/pdf", scenarioInvoiceForm())

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="INV-2025090042.pdf"`, rr.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rr.Body.String(), "%PDF-"))
}

func TestNDAPreview_TerminationOnly(t *testing.T) {
	h := testServer().Handler()
	rr := postForm(t, h, "/nda/preview", url.Values{
		"disclosing_name":        {"Globex"},
		"receiving_name":         {"Initech"},
		"confidentiality_period": {"5"},
		"clause_termination":     {"on"},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "1. Term and Termination")
	assert.Contains(t, body, "5 years")
	assert.NotContains(t, body, "Additional Terms")
	assert.NotContains(t, body, "Governing Law")
	assert.Contains(t, body, "DISCLOSING PARTY:")
}

func TestNDAPDF_Filename(t *testing.T) {
	h := testServer().Handler()
	rr := postForm(t, h, "/nda/pdf", url.Values{
		"disclosing_name": {"Globex"},
		"receiving_name":  {"Initech"},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="NDA-Globex-Initech.pdf"`, rr.Header().Get("Content-Disposition"))
}

func TestProposalPreview(t *testing.T) {
	h := testServer().Handler()
	rr := postForm(t, h, "/proposal/preview", url.Values{
		"freelancer_name": {"Ada Lovelace"},
		"client_name":     {"Acme Corp"},
		"project_title":   {"Website Redesign"},
		"timeline":        {"6 weeks"},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Website Redesign")
	assert.Contains(t, body, "Timeline")
	assert.Contains(t, body, "6 weeks")
	assert.NotContains(t, body, "Pricing", "empty fields emit no section")
}

func TestPreviewAndPDFShareContent(t *testing.T) {
	// Both endpoints must consume the identical section sequence; a cheap
	// smoke check is that the same posted form succeeds on both.
	h := testServer().Handler()
	form := scenarioInvoiceForm()

	preview := postForm(t, h, "/invoice/preview", form)
	export := postForm(t, h, "/invoice/pdf", form)

	require.Equal(t, http.StatusOK, preview.Code)
	require.Equal(t, http.StatusOK, export.Code)
}

func TestHealthz(t *testing.T) {
	h := testServer().Handler()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestIDHeader(t *testing.T) {
	h := testServer().Handler()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestMethodNotAllowed(t *testing.T) {
	h := testServer().Handler()
	req := httptest.NewRequest(http.MethodGet, "/invoice/preview", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
