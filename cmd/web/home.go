package main

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"kineticstudio.fit/studio-web/internal/app"
	"kineticstudio.fit/studio-web/internal/dom"
	"kineticstudio.fit/studio-web/internal/handlers"
)

// assemble renders the page shell and runs the section orchestrator over it.
// Section failures surface as in-page error blocks, never as request errors.
func (s *server) assemble(r *http.Request) (*dom.Page, *app.App, error) {
	t, err := s.templates()
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", handlers.BuildHomeData()); err != nil {
		return nil, nil, err
	}
	page, err := dom.ParsePage(&buf)
	if err != nil {
		return nil, nil, err
	}

	a := app.New(page, s.retriever, s.cfg, s.check, s.variant, s.log)
	a.Run(r.Context())
	return page, a, nil
}

// handleHome serves the fully assembled landing page.
func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	page, _, err := s.assemble(r)
	if err != nil {
		s.log.Error("assemble page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	html, err := page.HTML()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// handleServicesTab returns the services fragment with the requested tab
// active. Tab clicks and the mobile select both target this endpoint, so
// selection has a single source of truth.
func (s *server) handleServicesTab(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}

	page, a, err := s.assemble(r)
	if err != nil {
		s.log.Error("assemble page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if index >= a.Tabs().Count() {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	a.Tabs().SwitchPanel(index)

	frag, err := page.Fragment(s.cfg.Selectors.Services)
	if err != nil || frag == "" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(frag))
}
