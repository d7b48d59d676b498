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
	"kineticstudio.fit/studio-web/internal/render"
	"kineticstudio.fit/studio-web/internal/sanitize"
)

// Tabs keeps the services tab bar, panel stack, and mobile select mutually
// consistent. Every selection change, whether from a tab click or a select
// change, funnels through SwitchPanel so the three views cannot diverge.
type Tabs struct {
	container *dom.Container
	active    string
}

// SwitchPanel deactivates every tab, panel, and option, then activates
// exactly the trio at index. Out-of-range indexes are ignored. Idempotent.
func (t *Tabs) SwitchPanel(index int) {
	if t == nil || t.container == nil || index < 0 {
		return
	}
	t.container.Do(func(sel *goquery.Selection) {
		tabs := sel.Find(".services-tab")
		if index >= tabs.Length() {
			return
		}
		tabs.Each(func(i int, tab *goquery.Selection) {
			tab.RemoveClass(t.active)
			tab.SetAttr("aria-selected", "false")
			if i == index {
				tab.AddClass(t.active)
				tab.SetAttr("aria-selected", "true")
			}
		})
		sel.Find(".services-panel").Each(func(i int, panel *goquery.Selection) {
			panel.RemoveClass(t.active)
			if i == index {
				panel.AddClass(t.active)
			}
		})
		sel.Find(".services-select option").Each(func(i int, opt *goquery.Selection) {
			opt.RemoveAttr("selected")
			if i == index {
				opt.SetAttr("selected", "selected")
			}
		})
	})
}

// Count reports how many trios rendered, 0 before render.
func (t *Tabs) Count() int {
	if t == nil || t.container == nil {
		return 0
	}
	n := 0
	t.container.Do(func(sel *goquery.Selection) {
		n = sel.Find(".services-tab").Length()
	})
	return n
}

// ActiveIndex reports which trio is active, or -1 before render.
func (t *Tabs) ActiveIndex() int {
	if t == nil || t.container == nil {
		return -1
	}
	active := -1
	t.container.Do(func(sel *goquery.Selection) {
		sel.Find(".services-tab").Each(func(i int, tab *goquery.Selection) {
			if tab.HasClass(t.active) {
				active = i
			}
		})
	})
	return active
}

// NewServices builds the controller for the services section and the tab
// state machine bound to its container. The default active index after a
// successful render is 0.
func NewServices(page *dom.Page, r *content.Retriever, cfg *config.Config, log *slog.Logger) (*Controller, *Tabs) {
	container := page.Container(cfg.Selectors.Services)
	c := newController("services", container, cfg.Classes, log)
	tabs := &Tabs{container: container, active: cfg.Classes.Active}

	c.load = func(ctx context.Context) bool {
		categories, ok := content.Records[content.ServiceCategory](ctx, r, cfg.Resources.Services)
		if !ok {
			return false
		}
		c.container.SetHTML(servicesSkeleton)
		active := cfg.Classes.Active
		render.Fill(c.container.Child(".services-tab-bar"), categories, func(cat content.ServiceCategory, i int) string {
			return serviceTab(cat, i, active)
		})
		render.Fill(c.container.Child(".services-select"), categories, serviceOption)
		render.Fill(c.container.Child(".services-panels"), categories, func(cat content.ServiceCategory, i int) string {
			return servicePanel(cat, i, active)
		})
		return true
	}
	return c, tabs
}

const servicesSkeleton = `<div class="services-tabs">` +
	`<div class="services-tab-bar" role="tablist"></div>` +
	`<label class="services-select-wrap"><select class="services-select"></select></label>` +
	`<div class="services-panels"></div>` +
	`</div>`

func serviceTab(cat content.ServiceCategory, i int, active string) string {
	cls := "services-tab"
	selected := "false"
	if i == 0 {
		cls += " " + active
		selected = "true"
	}
	return fmt.Sprintf(`<button class="%s" role="tab" aria-selected="%s" data-index="%d">%s</button>`,
		cls, selected, i, sanitize.EscapeText(cat.Category))
}

func serviceOption(cat content.ServiceCategory, i int) string {
	sel := ""
	if i == 0 {
		sel = ` selected="selected"`
	}
	return fmt.Sprintf(`<option value="%d"%s>%s</option>`, i, sel, sanitize.EscapeText(cat.Category))
}

func servicePanel(cat content.ServiceCategory, i int, active string) string {
	cls := "services-panel"
	if i == 0 {
		cls += " " + active
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s" role="tabpanel" data-index="%d">`, cls, i)
	if applicable(cat.Description) {
		fmt.Fprintf(&b, `<p class="category-desc">%s</p>`, sanitize.EscapeText(cat.Description))
	}
	b.WriteString(`<ul class="service-list">`)
	for _, item := range cat.Items {
		b.WriteString(serviceItem(item))
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}

func serviceItem(item content.ServiceItem) string {
	cls := "service-item"
	if item.Popular {
		cls += " popular"
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<li class="%s">`, cls)
	fmt.Fprintf(&b, `<span class="service-name">%s`, sanitize.EscapeText(item.Name))
	if item.Popular {
		b.WriteString(`<span class="badge">Popular</span>`)
	}
	b.WriteString(`</span>`)
	if applicable(item.Description) {
		fmt.Fprintf(&b, `<span class="service-desc">%s</span>`, sanitize.EscapeText(item.Description))
	}
	if applicable(item.Duration) {
		fmt.Fprintf(&b, `<span class="service-duration">%s</span>`, sanitize.EscapeText(item.Duration))
	}
	fmt.Fprintf(&b, `<span class="service-price">%s</span>`, format.Currency(item.Price, item.Currency))
	b.WriteString(`</li>`)
	return b.String()
}

// applicable filters optional fields: absent or the literal "-" placeholder
// means the field does not apply and must not render.
func applicable(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != notApplicable
}
