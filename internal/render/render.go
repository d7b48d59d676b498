// Package render turns ordered record slices into markup.
package render

import (
	"strings"

	"kineticstudio.fit/studio-web/internal/dom"
)

// Fill maps every record through tmpl (with its 0-based position) and
// replaces the container's content in a single write, so observers never see
// a half-built section. A nil container or a nil record slice ("not ready")
// is a no-op; an empty non-nil slice clears the container.
func Fill[T any](c *dom.Container, records []T, tmpl func(T, int) string) {
	if c == nil || records == nil {
		return
	}
	var b strings.Builder
	for i, rec := range records {
		b.WriteString(tmpl(rec, i))
	}
	c.SetHTML(b.String())
}
