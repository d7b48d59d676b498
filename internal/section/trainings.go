package section

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kineticstudio.fit/studio-web/internal/config"
	"kineticstudio.fit/studio-web/internal/content"
	"kineticstudio.fit/studio-web/internal/dom"
	"kineticstudio.fit/studio-web/internal/format"
	"kineticstudio.fit/studio-web/internal/media"
	"kineticstudio.fit/studio-web/internal/render"
	"kineticstudio.fit/studio-web/internal/sanitize"
)

// Level labels map to a style modifier. "Beginner" is the default tier and
// carries no modifier class; so does any label outside this map.
var levelModifiers = map[string]string{
	"Intermediate": "level-intermediate",
	"Advanced":     "level-advanced",
	"All Levels":   "level-all",
}

const placeholderVariants = 4

// NewTrainings builds the controller for the training program grid. variant
// picks the placeholder style for the i-th broken image; pass nil for the
// rotating default.
func NewTrainings(page *dom.Page, r *content.Retriever, cfg *config.Config, check media.Checker, variant media.VariantFn, log *slog.Logger) *Controller {
	if variant == nil {
		variant = func(i int) int { return i }
	}
	c := newController("trainings", page.Container(cfg.Selectors.Trainings), cfg.Classes, log)
	c.load = func(ctx context.Context) bool {
		programs, ok := content.Records[content.TrainingProgram](ctx, r, cfg.Resources.Trainings)
		if !ok {
			return false
		}
		render.Fill(c.container, programs, func(p content.TrainingProgram, _ int) string {
			return trainingCard(p, cfg.Classes.Reveal)
		})
		media.Attach(c.container, check, func(_ *goquery.Selection, i int) string {
			v := variant(i) % placeholderVariants
			if v < 0 {
				v = -v
			}
			return fmt.Sprintf(`<div class="training-media training-media-fallback variant-%d"></div>`, v)
		})
		return true
	}
	return c
}

func trainingCard(p content.TrainingProgram, revealClass string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<article class="training-card %s">`, revealClass)

	image := sanitize.SanitizeURL(p.Image)
	if image != "" {
		fmt.Fprintf(&b, `<div class="training-media"><img src="%s" alt="%s" loading="lazy"></div>`,
			sanitize.EscapeText(image), sanitize.EscapeText(p.Title))
	}

	b.WriteString(`<div class="training-head">`)
	fmt.Fprintf(&b, `<h3 class="training-title">%s</h3>`, sanitize.EscapeText(p.Title))
	cls := "level-badge"
	if mod := levelModifiers[p.Level]; mod != "" {
		cls += " " + mod
	}
	fmt.Fprintf(&b, `<span class="%s">%s</span>`, cls, sanitize.EscapeText(p.Level))
	b.WriteString(`</div>`)

	if applicable(p.Description) {
		fmt.Fprintf(&b, `<p class="training-desc">%s</p>`, sanitize.EscapeText(p.Description))
	}
	if len(p.Includes) > 0 {
		b.WriteString(`<ul class="training-includes">`)
		for _, inc := range p.Includes {
			fmt.Fprintf(&b, `<li>%s</li>`, sanitize.EscapeText(inc))
		}
		b.WriteString(`</ul>`)
	}

	b.WriteString(`<div class="training-meta">`)
	if applicable(p.Duration) {
		fmt.Fprintf(&b, `<span class="training-duration">%s</span>`, sanitize.EscapeText(p.Duration))
	}
	fmt.Fprintf(&b, `<span class="training-price">%s</span>`, format.Currency(p.Price, p.Currency))
	b.WriteString(`</div>`)

	fmt.Fprintf(&b, `<p class="training-availability">%s</p>`, availability(p))
	b.WriteString(`</article>`)
	return b.String()
}

// availability renders the next-session line: a fixed message when no date is
// scheduled, otherwise the formatted date with a spots suffix only when the
// resource publishes capacity.
func availability(p content.TrainingProgram) string {
	when := format.ParseDate(p.NextDate)
	if when.IsZero() {
		return "New dates coming soon"
	}
	text := "Next session " + format.Date(when)
	if p.SpotsAvailable != nil {
		text += fmt.Sprintf(", %d spots left", *p.SpotsAvailable)
	}
	return sanitize.EscapeText(text)
}
