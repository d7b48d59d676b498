// Package dom holds the server-side document model the sections render into.
// It wraps a goquery document with a lock so independently loading sections
// can mutate disjoint containers concurrently.
package dom

import (
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// Page is one parsed HTML document. All mutation goes through Do/SetHTML so
// concurrent section loads never interleave mid-edit.
type Page struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// ParsePage builds a Page from serialized HTML.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Page{doc: doc}, nil
}

// ParsePageString is a convenience for tests and template output.
func ParsePageString(html string) (*Page, error) {
	return ParsePage(strings.NewReader(html))
}

// Container resolves a selector once and returns a handle to it, or nil when
// the document has no matching element. Resolution is intended to happen at
// construction time, before any concurrent mutation starts.
func (p *Page) Container(selector string) *Container {
	sel := p.doc.Find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return &Container{page: p, sel: sel.First()}
}

// Do runs fn with exclusive access to the underlying document.
func (p *Page) Do(fn func(doc *goquery.Document)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.doc)
}

// HTML serializes the whole document.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc.Html()
}

// Fragment serializes the first element matching selector, or "" when absent.
func (p *Page) Fragment(selector string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel := p.doc.Find(selector)
	if sel.Length() == 0 {
		return "", nil
	}
	return goquery.OuterHtml(sel.First())
}

// Container is a handle to one pre-resolved element owned by a section.
type Container struct {
	page *Page
	sel  *goquery.Selection
}

// SetHTML atomically replaces the container's content with markup.
func (c *Container) SetHTML(markup string) {
	c.page.mu.Lock()
	defer c.page.mu.Unlock()
	c.sel.SetHtml(markup)
}

// Do runs fn with exclusive access to the container's selection.
func (c *Container) Do(fn func(sel *goquery.Selection)) {
	c.page.mu.Lock()
	defer c.page.mu.Unlock()
	fn(c.sel)
}

// Child resolves a selector inside the container, or nil when absent.
func (c *Container) Child(selector string) *Container {
	c.page.mu.Lock()
	defer c.page.mu.Unlock()
	sel := c.sel.Find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return &Container{page: c.page, sel: sel.First()}
}

// AddClass adds a class token to the container element itself.
func (c *Container) AddClass(class string) {
	c.page.mu.Lock()
	defer c.page.mu.Unlock()
	c.sel.AddClass(class)
}

// RemoveClass removes a class token from the container element itself.
func (c *Container) RemoveClass(class string) {
	c.page.mu.Lock()
	defer c.page.mu.Unlock()
	c.sel.RemoveClass(class)
}
