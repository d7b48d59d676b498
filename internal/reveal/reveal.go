// Package reveal tracks flagged elements and marks each one visible exactly
// once, the first time its reported visibility crosses the threshold.
package reveal

import (
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"kineticstudio.fit/studio-web/internal/dom"
)

const idAttr = "data-reveal-id"

// Observer watches one page's flagged elements. Rescan must be called again
// whenever new content is inserted, otherwise dynamically rendered elements
// are never picked up.
type Observer struct {
	page      *dom.Page
	threshold float64
	marker    string
	visible   string

	mu      sync.Mutex
	tracked map[string]struct{}
}

// New builds an Observer over page. marker is the class flagging elements for
// reveal, visible the class added on first sufficient visibility.
func New(page *dom.Page, threshold float64, marker, visible string) *Observer {
	return &Observer{
		page:      page,
		threshold: threshold,
		marker:    marker,
		visible:   visible,
		tracked:   map[string]struct{}{},
	}
}

// Rescan registers every flagged element not yet tracked or revealed,
// assigning it a stable identifier. Safe to call repeatedly; already-tracked
// and already-revealed elements are left alone. Returns how many elements
// were newly registered.
func (o *Observer) Rescan() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	added := 0
	o.page.Do(func(doc *goquery.Document) {
		doc.Find("." + o.marker).Each(func(_ int, el *goquery.Selection) {
			if el.HasClass(o.visible) {
				return
			}
			id, ok := el.Attr(idAttr)
			if ok {
				if _, seen := o.tracked[id]; seen {
					return
				}
			} else {
				id = uuid.NewString()
				el.SetAttr(idAttr, id)
			}
			o.tracked[id] = struct{}{}
			added++
		})
	})
	return added
}

// Report feeds one visibility observation. When ratio first reaches the
// threshold for a tracked element, the visible class is added and the element
// stops being observed (one-shot, no re-hide). Returns whether the element
// was revealed by this call.
func (o *Observer) Report(id string, ratio float64) bool {
	if ratio < o.threshold {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.tracked[id]; !ok {
		return false
	}
	delete(o.tracked, id)
	o.page.Do(func(doc *goquery.Document) {
		doc.Find("[" + idAttr + `="` + id + `"]`).AddClass(o.visible)
	})
	return true
}

// Tracked returns the identifiers currently under observation.
func (o *Observer) Tracked() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	ids := make([]string, 0, len(o.tracked))
	for id := range o.tracked {
		ids = append(ids, id)
	}
	return ids
}
