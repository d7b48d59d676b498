package main

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"kineticstudio.fit/studio-web/internal/config"
	"kineticstudio.fit/studio-web/internal/content"
	"kineticstudio.fit/studio-web/internal/media"
	"kineticstudio.fit/studio-web/internal/metrics"
	mw "kineticstudio.fit/studio-web/internal/middleware"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	srv, err := newServer(cfg, log)
	if err != nil {
		log.Error("init server", "error", err)
		os.Exit(1)
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("web listening", "addr", cfg.Addr, "dev", cfg.Dev)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("listen", "error", err)
		os.Exit(1)
	}
}

type server struct {
	cfg       *config.Config
	log       *slog.Logger
	retriever *content.Retriever
	check     media.Checker
	variant   media.VariantFn

	// tmpl is nil in dev mode; templates reparse per request instead.
	tmpl *template.Template
}

func newServer(cfg *config.Config, log *slog.Logger) (*server, error) {
	s := &server{
		cfg:       cfg,
		log:       log,
		retriever: content.NewRetriever(cfg.ContentBaseURL, cfg.ContentDir, log),
		check:     media.DirChecker(cfg.PublicDir),
		variant:   func(int) int { return rand.Intn(8) },
	}
	if !cfg.Dev {
		t, err := parseTemplates(cfg.TemplatesDir)
		if err != nil {
			return nil, err
		}
		s.tmpl = t
	}
	return s, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(s.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(s.cfg.PublicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", s.handleHome)
	r.Get("/fragments/services/{index}", s.handleServicesTab)
	return r
}

func parseTemplates(dir string) (*template.Template, error) {
	var files []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}
	return template.New("_root").ParseFiles(files...)
}

func (s *server) templates() (*template.Template, error) {
	if s.tmpl != nil {
		return s.tmpl, nil
	}
	return parseTemplates(s.cfg.TemplatesDir)
}
