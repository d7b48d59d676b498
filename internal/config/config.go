// Package config carries the runtime settings for the studio web frontend.
package config

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the complete runtime configuration. Class tokens and container
// selectors are configurable so the visual layer can be swapped without
// touching the rendering subsystem.
type Config struct {
	Addr         string `koanf:"addr"`
	Dev          bool   `koanf:"dev"`
	TemplatesDir string `koanf:"templates_dir"`
	PublicDir    string `koanf:"public_dir"`

	ContentBaseURL string `koanf:"content_base_url"`
	ContentDir     string `koanf:"content_dir"`

	Resources Resources `koanf:"resources"`
	Selectors Selectors `koanf:"selectors"`
	Classes   Classes   `koanf:"classes"`

	RevealThreshold float64 `koanf:"reveal_threshold"`
}

// Resources names the three structured resources the page is built from.
type Resources struct {
	Team      string `koanf:"team"`
	Services  string `koanf:"services"`
	Trainings string `koanf:"trainings"`
}

// Selectors locates each section's pre-existing container in the page shell.
type Selectors struct {
	Team      string `koanf:"team"`
	Services  string `koanf:"services"`
	Trainings string `koanf:"trainings"`
}

// Classes holds the state class tokens shared with the stylesheet.
type Classes struct {
	Loading string `koanf:"loading"`
	Error   string `koanf:"error"`
	Active  string `koanf:"active"`
	Visible string `koanf:"visible"`
	Reveal  string `koanf:"reveal"`
}

// New returns the defaults the site ships with.
func New() *Config {
	return &Config{
		Addr:         ":8080",
		TemplatesDir: "templates",
		PublicDir:    "public",
		ContentDir:   "content",
		Resources: Resources{
			Team:      "team.json",
			Services:  "services.json",
			Trainings: "trainings.json",
		},
		Selectors: Selectors{
			Team:      "#team-grid",
			Services:  "#services-root",
			Trainings: "#trainings-grid",
		},
		Classes: Classes{
			Loading: "is-loading",
			Error:   "load-error",
			Active:  "active",
			Visible: "visible",
			Reveal:  "animate-on-scroll",
		},
		RevealThreshold: 0.15,
	}
}

// Load layers defaults, an optional YAML file (STUDIO_CONFIG), and STUDIO_*
// environment variables, lowest to highest precedence.
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")
	if path := os.Getenv("STUDIO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Keys under a known group nest with a dot so STUDIO_SELECTORS_TEAM
	// reaches selectors.team; everything else stays a flat key.
	envProvider := env.Provider("STUDIO_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "studio_")
		for _, group := range []string{"resources", "selectors", "classes"} {
			if strings.HasPrefix(s, group+"_") {
				return group + "." + strings.TrimPrefix(s, group+"_")
			}
		}
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.RevealThreshold <= 0 || cfg.RevealThreshold > 1 {
		return nil, errors.New("reveal_threshold must be in (0, 1]")
	}
	return &cfg, nil
}
