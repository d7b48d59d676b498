package section

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"kineticstudio.fit/studio-web/internal/config"
	"kineticstudio.fit/studio-web/internal/content"
	"kineticstudio.fit/studio-web/internal/dom"
	"kineticstudio.fit/studio-web/internal/media"
	"kineticstudio.fit/studio-web/internal/render"
	"kineticstudio.fit/studio-web/internal/sanitize"
)

// Platforms we ship an icon for. A social entry for anything else is
// silently skipped, as is any entry whose URL fails sanitization.
var socialIcons = map[string]string{
	"instagram": "icon-instagram",
	"facebook":  "icon-facebook",
	"youtube":   "icon-youtube",
	"linkedin":  "icon-linkedin",
	"x":         "icon-x",
}

// NewTeam builds the controller for the trainer grid.
func NewTeam(page *dom.Page, r *content.Retriever, cfg *config.Config, check media.Checker, log *slog.Logger) *Controller {
	c := newController("team", page.Container(cfg.Selectors.Team), cfg.Classes, log)
	c.load = func(ctx context.Context) bool {
		members, ok := content.Records[content.TeamMember](ctx, r, cfg.Resources.Team)
		if !ok {
			return false
		}
		render.Fill(c.container, members, func(m content.TeamMember, _ int) string {
			return teamCard(m, cfg.Classes.Reveal)
		})
		media.Attach(c.container, check, teamPlaceholder)
		return true
	}
	return c
}

func teamCard(m content.TeamMember, revealClass string) string {
	var b strings.Builder
	name := sanitize.EscapeText(m.Name)

	fmt.Fprintf(&b, `<article class="team-card %s">`, revealClass)
	photo := sanitize.SanitizeURL(m.Photo)
	if photo != "" {
		fmt.Fprintf(&b, `<div class="team-photo"><img src="%s" alt="%s" loading="lazy"></div>`, sanitize.EscapeText(photo), name)
	} else {
		fmt.Fprintf(&b, `<div class="team-photo"><div class="photo-placeholder">%s</div></div>`, initials(m.Name))
	}
	fmt.Fprintf(&b, `<h3 class="team-name">%s</h3>`, name)
	fmt.Fprintf(&b, `<p class="team-role">%s</p>`, sanitize.EscapeText(m.Role))
	if strings.TrimSpace(m.Bio) != "" {
		fmt.Fprintf(&b, `<div class="team-bio">%s</div>`, sanitize.Markdown(m.Bio))
	}
	if strings.TrimSpace(m.Experience) != "" {
		fmt.Fprintf(&b, `<p class="team-experience">%s</p>`, sanitize.EscapeText(m.Experience))
	}
	if len(m.Specialties) > 0 {
		b.WriteString(`<ul class="team-specialties">`)
		for _, s := range m.Specialties {
			fmt.Fprintf(&b, `<li class="tag">%s</li>`, sanitize.EscapeText(s))
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(socialLinks(m.Socials))
	b.WriteString(`</article>`)
	return b.String()
}

func socialLinks(socials map[string]string) string {
	if len(socials) == 0 {
		return ""
	}
	var b strings.Builder
	for _, platform := range []string{"instagram", "facebook", "youtube", "linkedin", "x"} {
		raw, ok := socials[platform]
		if !ok {
			continue
		}
		icon, known := socialIcons[platform]
		href := sanitize.SanitizeURL(raw)
		if !known || href == "" {
			continue
		}
		fmt.Fprintf(&b, `<a class="social-link" href="%s" aria-label="%s" rel="noopener"><span class="icon %s"></span></a>`,
			sanitize.EscapeText(href), platform, icon)
	}
	if b.Len() == 0 {
		return ""
	}
	return `<div class="team-socials">` + b.String() + `</div>`
}

// initials takes the first letter of each whitespace-separated name token,
// used as the fallback visual when a photo is missing or broken.
func initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		r := []rune(token)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return sanitize.EscapeText(b.String())
}

func teamPlaceholder(img *goquery.Selection, _ int) string {
	alt, _ := img.Attr("alt")
	return fmt.Sprintf(`<div class="photo-placeholder">%s</div>`, initials(alt))
}
