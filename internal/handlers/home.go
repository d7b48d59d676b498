package handlers

import (
	"time"

	"kineticstudio.fit/studio-web/internal/nav"
)

// HomeData is the view model for the page shell. The three content sections
// start as empty containers; the app package fills them after render.
type HomeData struct {
	Title       string
	Tagline     string
	Description string
	Nav         []nav.Item
	Year        int
}

// BuildHomeData constructs the default view model for the landing page.
func BuildHomeData() HomeData {
	return HomeData{
		Title:       "Kinetic Studio",
		Tagline:     "Strength, mobility, and conditioning in the heart of Northside",
		Description: "Kinetic Studio - personal training, group classes, and coached programs",
		Nav:         nav.Build(),
		Year:        time.Now().Year(),
	}
}
