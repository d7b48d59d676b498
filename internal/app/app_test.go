package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kineticstudio.fit/studio-web/internal/config"
	"kineticstudio.fit/studio-web/internal/content"
	"kineticstudio.fit/studio-web/internal/dom"
	"kineticstudio.fit/studio-web/internal/media"
	"kineticstudio.fit/studio-web/internal/section"
	"kineticstudio.fit/studio-web/internal/testutil"
)

const shell = `<html><body>
<div id="team-grid"></div>
<div id="services-root"></div>
<div id="trainings-grid"></div>
</body></html>`

const teamJSON = `[{"id":"t1","name":"Ada Ng","role":"Coach","photo":"","specialties":["Strength"]}]`
const trainingsJSON = `[{"id":"p1","title":"Foundations","description":"Basics.","duration":"8 weeks",
"level":"Beginner","price":24000,"currency":"USD","includes":[],"nextDate":"2026-09-14","image":""}]`

func newApp(t *testing.T, upstream http.Handler) (*App, *dom.Page) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	page, err := dom.ParsePageString(shell)
	require.NoError(t, err)

	cfg := config.New()
	retriever := content.NewRetriever(srv.URL, "", nil)
	check := media.CheckerFunc(func(string) bool { return false })
	return New(page, retriever, cfg, check, func(int) int { return 0 }, nil), page
}

func TestRunToleratesPartialFailure(t *testing.T) {
	a, page := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "team.json"):
			_, _ = w.Write([]byte(teamJSON))
		case strings.HasSuffix(r.URL.Path, "trainings.json"):
			_, _ = w.Write([]byte(trainingsJSON))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	results := a.Run(context.Background())
	byName := map[string]section.State{}
	for _, res := range results {
		byName[res.Name] = res.State
	}
	assert.Equal(t, section.StateLoaded, byName["team"])
	assert.Equal(t, section.StateLoaded, byName["trainings"])
	assert.Equal(t, section.StateError, byName["services"])

	html, err := page.HTML()
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, []byte(html))
	assert.Equal(t, 1, doc.Find("#team-grid .team-card").Length())
	assert.Equal(t, 1, doc.Find("#trainings-grid .training-card").Length())
	assert.Equal(t, 1, doc.Find("#services-root .section-error").Length())
}

func TestRunRescansRevealTargetsAfterRender(t *testing.T) {
	a, page := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "team.json"):
			_, _ = w.Write([]byte(teamJSON))
		case strings.HasSuffix(r.URL.Path, "trainings.json"):
			_, _ = w.Write([]byte(trainingsJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	a.Run(context.Background())

	// dynamically rendered cards are tracked without a second manual rescan
	tracked := a.Observer().Tracked()
	assert.Len(t, tracked, 2)

	for _, id := range tracked {
		assert.True(t, a.Observer().Report(id, 1))
	}
	html, err := page.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "animate-on-scroll visible")
}

func TestRunAllSectionsFailStillSettles(t *testing.T) {
	a, page := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	results := a.Run(context.Background())
	for _, res := range results {
		assert.Equal(t, section.StateError, res.State, res.Name)
	}
	html, err := page.HTML()
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, []byte(html))
	assert.Equal(t, 3, doc.Find(".section-error").Length())
}

func TestDefaultTabActiveAfterRun(t *testing.T) {
	a, _ := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "services.json") {
			_, _ = w.Write([]byte(`[{"id":"c1","category":"PT","items":[]},{"id":"c2","category":"Group","items":[]}]`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	a.Run(context.Background())
	assert.Equal(t, 0, a.Tabs().ActiveIndex())
}
