// Package server wires the document tools into an HTTP service: each tool is
// a pair of POST endpoints taking the form record and responding with either
// the HTML preview or the PDF export, both rendered from the same assembled
// section sequence.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/freelancer-docs/docs"
	"github.com/freelancer-docs/internal/config"
	"github.com/freelancer-docs/internal/logging"
	"github.com/freelancer-docs/pkg/render/htmldoc"
	"github.com/freelancer-docs/pkg/render/pdfdoc"
	"github.com/freelancer-docs/pkg/section"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg     *config.Config
	log     logging.Logger
	preview section.Renderer
	export  section.Renderer
	http    *http.Server
}

func New(cfg *config.Config, log logging.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log,
		preview: htmldoc.New(),
		export:  pdfdoc.New(),
	}

	r := mux.NewRouter()
	r.Use(s.requestLogger)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/invoice/preview", s.handleInvoicePreview).Methods(http.MethodPost)
	r.HandleFunc("/invoice/pdf", s.handleInvoicePDF).Methods(http.MethodPost)
	r.HandleFunc("/nda/preview", s.handleNDAPreview).Methods(http.MethodPost)
	r.HandleFunc("/nda/pdf", s.handleNDAPDF).Methods(http.MethodPost)
	r.HandleFunc("/proposal/preview", s.handleProposalPreview).Methods(http.MethodPost)
	r.HandleFunc("/proposal/pdf", s.handleProposalPDF).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	s.http = &http.Server{Addr: cfg.Addr, Handler: r}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	s.log.Info(ctx, "listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info(ctx, "shutting down")
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
