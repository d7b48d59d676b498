package reveal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kineticstudio.fit/studio-web/internal/dom"
)

func newPage(t *testing.T, body string) *dom.Page {
	t.Helper()
	page, err := dom.ParsePageString("<html><body>" + body + "</body></html>")
	require.NoError(t, err)
	return page
}

func TestRevealIsOneShot(t *testing.T) {
	page := newPage(t, `<div class="animate-on-scroll">a</div>`)
	o := New(page, 0.15, "animate-on-scroll", "visible")

	require.Equal(t, 1, o.Rescan())
	ids := o.Tracked()
	require.Len(t, ids, 1)

	assert.False(t, o.Report(ids[0], 0.05), "below threshold must not reveal")
	assert.True(t, o.Report(ids[0], 0.2))
	assert.False(t, o.Report(ids[0], 1.0), "second report is ignored")

	html, err := page.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, `class="animate-on-scroll visible"`)
	assert.Empty(t, o.Tracked())
}

func TestRescanPicksUpLateInsertedElements(t *testing.T) {
	page := newPage(t, `<div id="host"></div><div class="animate-on-scroll">first</div>`)
	o := New(page, 0.15, "animate-on-scroll", "visible")
	require.Equal(t, 1, o.Rescan())

	// a section renders after the observer's first activation
	page.Container("#host").SetHTML(`<div class="animate-on-scroll">late</div>`)
	assert.Equal(t, 1, o.Rescan())
	assert.Len(t, o.Tracked(), 2)

	for _, id := range o.Tracked() {
		o.Report(id, 0.5)
	}
	html, err := page.HTML()
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(html, "animate-on-scroll visible"), "all flagged elements revealed")
}

func TestRescanIsIdempotent(t *testing.T) {
	page := newPage(t, `<div class="animate-on-scroll">a</div>`)
	o := New(page, 0.15, "animate-on-scroll", "visible")
	assert.Equal(t, 1, o.Rescan())
	assert.Equal(t, 0, o.Rescan())
}

func TestRevealedElementsAreNotReobserved(t *testing.T) {
	page := newPage(t, `<div class="animate-on-scroll">a</div>`)
	o := New(page, 0.15, "animate-on-scroll", "visible")
	o.Rescan()
	for _, id := range o.Tracked() {
		o.Report(id, 1)
	}
	assert.Equal(t, 0, o.Rescan())
}
