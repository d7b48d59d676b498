package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kineticstudio.fit/studio-web/internal/dom"
)

func container(t *testing.T) (*dom.Page, *dom.Container) {
	t.Helper()
	page, err := dom.ParsePageString(`<html><body><div id="c"><p>old</p></div></body></html>`)
	require.NoError(t, err)
	c := page.Container("#c")
	require.NotNil(t, c)
	return page, c
}

func TestFillReplacesContentAtomically(t *testing.T) {
	page, c := container(t)
	Fill(c, []string{"a", "b", "c"}, func(s string, i int) string {
		return fmt.Sprintf(`<span data-i="%d">%s</span>`, i, s)
	})

	html, err := page.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, `<span data-i="0">a</span><span data-i="1">b</span><span data-i="2">c</span>`)
	assert.NotContains(t, html, "<p>old</p>")
}

func TestFillNilRecordsIsNoop(t *testing.T) {
	page, c := container(t)
	Fill[string](c, nil, func(string, int) string { return "x" })

	html, err := page.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "<p>old</p>")
}

func TestFillEmptySliceClearsContainer(t *testing.T) {
	page, c := container(t)
	Fill(c, []string{}, func(string, int) string { return "x" })

	html, err := page.HTML()
	require.NoError(t, err)
	assert.NotContains(t, html, "<p>old</p>")
}

func TestFillNilContainerIsNoop(t *testing.T) {
	Fill[string](nil, []string{"a"}, func(string, int) string { return "x" })
}
