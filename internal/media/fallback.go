// Package media wires fallback behavior onto rendered images so a broken
// asset never leaves a hole in the page.
package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kineticstudio.fit/studio-web/internal/dom"
)

// Checker reports whether an image source is already known to be broken at
// attach time. This closes the race where the asset was discovered missing
// before the fallback wiring ran: such images get replaced immediately
// instead of waiting for a failure event that will never re-fire.
type Checker interface {
	Broken(src string) bool
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(src string) bool

func (f CheckerFunc) Broken(src string) bool { return f(src) }

// DirChecker verifies path-style sources against the public assets directory.
// Remote URLs cannot be judged at attach time and report not-broken.
func DirChecker(publicDir string) Checker {
	return CheckerFunc(func(src string) bool {
		src = strings.TrimSpace(src)
		if src == "" {
			return true
		}
		if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
			return false
		}
		p := filepath.Join(publicDir, filepath.FromSlash(strings.TrimPrefix(src, "/")))
		if _, err := os.Stat(p); err != nil {
			return true
		}
		return false
	})
}

// VariantFn picks a placeholder style variant for the i-th replaced image.
// Injectable so rendering stays deterministic in tests.
type VariantFn func(i int) int

// Placeholder builds replacement markup for one broken image.
type Placeholder func(img *goquery.Selection, index int) string

// Attach registers fallback behavior for every image inside the container's
// fresh fragment. Images the checker already knows are broken are replaced
// with the placeholder markup in place; the rest are stamped with a
// data-media-fallback marker for the client runtime to act on later. Returns
// the number of immediate replacements.
func Attach(c *dom.Container, check Checker, build Placeholder) int {
	if c == nil || check == nil || build == nil {
		return 0
	}
	replaced := 0
	c.Do(func(sel *goquery.Selection) {
		sel.Find("img").Each(func(i int, img *goquery.Selection) {
			src, _ := img.Attr("src")
			if check.Broken(src) {
				img.ReplaceWithHtml(build(img, replaced))
				replaced++
				return
			}
			img.SetAttr("data-media-fallback", "pending")
		})
	})
	return replaced
}
