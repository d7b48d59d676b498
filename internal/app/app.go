// Package app composes the page: one shared retriever, three section
// controllers fanned out concurrently, and the reveal observer re-scanned
// over whatever they rendered.
package app

import (
	"context"
	"log/slog"
	"sync"

	"kineticstudio.fit/studio-web/internal/config"
	"kineticstudio.fit/studio-web/internal/content"
	"kineticstudio.fit/studio-web/internal/dom"
	"kineticstudio.fit/studio-web/internal/media"
	"kineticstudio.fit/studio-web/internal/reveal"
	"kineticstudio.fit/studio-web/internal/section"
)

// Result is one section's settled outcome.
type Result struct {
	Name  string
	State section.State
}

// App wires the rendering subsystem for one page instance.
type App struct {
	page     *dom.Page
	sections []*section.Controller
	tabs     *section.Tabs
	observer *reveal.Observer
	log      *slog.Logger
}

// New builds the orchestrator over a parsed page. The retriever is shared by
// every section so completed retrievals are cached across them. variant may
// be nil for the default placeholder rotation.
func New(page *dom.Page, retriever *content.Retriever, cfg *config.Config, check media.Checker, variant media.VariantFn, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	team := section.NewTeam(page, retriever, cfg, check, log)
	services, tabs := section.NewServices(page, retriever, cfg, log)
	trainings := section.NewTrainings(page, retriever, cfg, check, variant, log)

	return &App{
		page:     page,
		sections: []*section.Controller{team, services, trainings},
		tabs:     tabs,
		observer: reveal.New(page, cfg.RevealThreshold, cfg.Classes.Reveal, cfg.Classes.Visible),
		log:      log,
	}
}

// Run settles all three sections, logs which ones failed, then re-scans for
// reveal-flagged elements across the freshly rendered output. One section's
// failure never prevents the others from completing.
func (a *App) Run(ctx context.Context) []Result {
	settleAll(ctx, a.log, a.sections)

	results := make([]Result, 0, len(a.sections))
	var failed []string
	for _, s := range a.sections {
		st := s.State()
		results = append(results, Result{Name: s.Name(), State: st})
		if st == section.StateError {
			failed = append(failed, s.Name())
		}
	}
	if len(failed) > 0 {
		a.log.Warn("some sections failed to load", "sections", failed)
	}

	a.observer.Rescan()
	return results
}

// Tabs exposes the services selection state machine.
func (a *App) Tabs() *section.Tabs { return a.tabs }

// Observer exposes the reveal observer for later rescans and reports.
func (a *App) Observer() *reveal.Observer { return a.observer }

// settleAll fans the section inits out and waits for every one to finish,
// success or failure, without short-circuiting. A panicking section is
// contained and logged so its siblings still settle.
func settleAll(ctx context.Context, log *slog.Logger, sections []*section.Controller) {
	var wg sync.WaitGroup
	for _, s := range sections {
		wg.Add(1)
		go func(s *section.Controller) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error("section panicked", "section", s.Name(), "panic", r)
				}
			}()
			s.Init(ctx)
		}(s)
	}
	wg.Wait()
}
