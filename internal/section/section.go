// Package section owns the load/render/error lifecycle of the page's three
// content sections (team, services, trainings). Each controller exclusively
// owns one pre-existing container in the page shell; it never creates its
// own.
package section

import (
	"context"
	"log/slog"
	"sync"

	"kineticstudio.fit/studio-web/internal/config"
	"kineticstudio.fit/studio-web/internal/dom"
	"kineticstudio.fit/studio-web/internal/metrics"
	"kineticstudio.fit/studio-web/internal/sanitize"
)

// State is one section's lifecycle position. Loaded and Error are terminal;
// there is no retry path.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Placeholder value the content API uses for "not applicable" fields.
const notApplicable = "-"

// Controller drives one section from idle through loading to loaded or
// error. The load step is section-specific and injected by the constructors
// in this package.
type Controller struct {
	name      string
	container *dom.Container
	classes   config.Classes
	log       *slog.Logger
	load      func(ctx context.Context) bool

	mu    sync.Mutex
	state State
}

func newController(name string, container *dom.Container, classes config.Classes, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		name:      name,
		container: container,
		classes:   classes,
		log:       log.With("section", name),
		state:     StateIdle,
	}
}

// Name identifies the section in logs and metrics.
func (c *Controller) Name() string { return c.name }

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Init runs the lifecycle to its terminal state. A missing container means
// the section is not present on this page: silent no-op, idle forever.
func (c *Controller) Init(ctx context.Context) {
	if c.container == nil {
		return
	}
	c.setState(StateLoading)
	c.container.AddClass(c.classes.Loading)
	c.container.SetHTML(`<div class="section-loading"><span class="spinner"></span>Loading&hellip;</div>`)

	ok := c.load(ctx)
	c.container.RemoveClass(c.classes.Loading)
	if !ok {
		c.setState(StateError)
		c.container.AddClass(c.classes.Error)
		c.container.SetHTML(`<div class="section-error"><p>` +
			sanitize.EscapeText("We couldn't load this section right now. Please check back soon.") +
			`</p></div>`)
		metrics.SectionFailed(c.name)
		c.log.Warn("section failed to load")
		return
	}
	c.setState(StateLoaded)
	metrics.SectionLoaded(c.name)
	c.log.Info("section loaded")
}
