// Package sanitize guards every piece of externally sourced content before it
// reaches generated markup. Text is entity-escaped, URLs are scheme-filtered,
// and rich-text bodies go through goldmark + bluemonday.
package sanitize

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeText replaces the five HTML-significant characters with entities.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// SanitizeURL returns the trimmed input when it is an http(s) URL or a
// relative path (no scheme separator at all); anything else is rejected as
// empty so it never lands in an href or src attribute.
func SanitizeURL(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	if !strings.Contains(s, ":") {
		return s
	}
	return ""
}

var richPolicy = bluemonday.UGCPolicy()

// Markdown renders a markdown body to HTML and strips anything the UGC policy
// does not allow. Used for record bodies that legitimately carry formatting,
// such as trainer bios.
func Markdown(s string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(s), &buf); err != nil {
		// goldmark only fails on writer errors; fall back to plain escaping.
		return EscapeText(s)
	}
	return richPolicy.Sanitize(buf.String())
}
