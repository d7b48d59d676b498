package section

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kineticstudio.fit/studio-web/internal/config"
	"kineticstudio.fit/studio-web/internal/media"
	"kineticstudio.fit/studio-web/internal/testutil"
)

const trainingsFixture = `[
  {
    "id": "p1",
    "title": "Foundations of Strength",
    "description": "Eight weeks of barbell basics.",
    "duration": "8 weeks",
    "level": "Beginner",
    "price": 24000,
    "currency": "USD",
    "includes": ["2 sessions/week", "Nutrition primer"],
    "nextDate": "2026-09-14",
    "spotsAvailable": 5,
    "image": "assets/img/trainings/foundations.jpg"
  },
  {
    "id": "p2",
    "title": "Advanced Conditioning",
    "description": "High-intensity block for experienced athletes.",
    "duration": "6 weeks",
    "level": "Advanced",
    "price": 30000,
    "currency": "USD",
    "includes": [],
    "nextDate": "2026-10-01",
    "image": "assets/img/trainings/conditioning.jpg"
  },
  {
    "id": "p3",
    "title": "Mobility Reset",
    "description": "-",
    "duration": "4 weeks",
    "level": "All Levels",
    "price": 16000,
    "currency": "USD",
    "includes": ["Weekly assessments"],
    "image": "assets/img/trainings/mobility.jpg"
  }
]`

func loadTrainings(t *testing.T, check media.Checker, variant media.VariantFn) func() string {
	t.Helper()
	page := testPage(t)
	cfg := config.New()
	r := testRetriever(t, map[string]string{"trainings.json": trainingsFixture})

	c := NewTrainings(page, r, cfg, check, variant, nil)
	c.Init(context.Background())
	require.Equal(t, StateLoaded, c.State())
	return func() string {
		html, err := page.HTML()
		require.NoError(t, err)
		return html
	}
}

func TestTrainingLevelModifiers(t *testing.T) {
	html := loadTrainings(t, neverBroken(), nil)
	doc := testutil.ParseHTML(t, []byte(html()))

	badges := doc.Find(".level-badge")
	require.Equal(t, 3, badges.Length())

	// Beginner stays on the default tier: bare class, no modifier.
	cls, _ := badges.Eq(0).Attr("class")
	assert.Equal(t, "level-badge", cls)
	assert.True(t, badges.Eq(1).HasClass("level-advanced"))
	assert.True(t, badges.Eq(2).HasClass("level-all"))
}

func TestTrainingAvailabilityText(t *testing.T) {
	html := loadTrainings(t, neverBroken(), nil)
	doc := testutil.ParseHTML(t, []byte(html()))

	lines := doc.Find(".training-availability")
	require.Equal(t, 3, lines.Length())
	assert.Equal(t, "Next session Sep 14, 2026, 5 spots left", lines.Eq(0).Text())
	// date but no published capacity: no spots suffix
	assert.Equal(t, "Next session Oct 1, 2026", lines.Eq(1).Text())
	// no scheduled date at all
	assert.Equal(t, "New dates coming soon", lines.Eq(2).Text())
}

func TestTrainingDescriptionPlaceholderSuppressed(t *testing.T) {
	html := loadTrainings(t, neverBroken(), nil)
	doc := testutil.ParseHTML(t, []byte(html()))
	assert.Equal(t, 2, doc.Find(".training-desc").Length())
}

func TestTrainingQuoteBearingImageCannotEscapeAttribute(t *testing.T) {
	fixture := `[{
	  "id": "p1",
	  "title": "Foundations",
	  "description": "Basics.",
	  "duration": "8 weeks",
	  "level": "Beginner",
	  "price": 24000,
	  "currency": "USD",
	  "includes": [],
	  "image": "x.jpg\" onerror=\"alert(1)"
	}]`
	page := testPage(t)
	cfg := config.New()
	r := testRetriever(t, map[string]string{"trainings.json": fixture})

	c := NewTrainings(page, r, cfg, neverBroken(), nil, nil)
	c.Init(context.Background())
	require.Equal(t, StateLoaded, c.State())

	html, err := page.HTML()
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, []byte(html))

	img := doc.Find("#trainings-grid img")
	require.Equal(t, 1, img.Length())
	_, hasHandler := img.Attr("onerror")
	assert.False(t, hasHandler)
}

func TestTrainingBrokenImagesGetSeededVariants(t *testing.T) {
	allBroken := media.CheckerFunc(func(string) bool { return true })
	// seeded selection: every placeholder gets variant 2
	html := loadTrainings(t, allBroken, func(int) int { return 2 })
	doc := testutil.ParseHTML(t, []byte(html()))

	assert.Equal(t, 0, doc.Find("#trainings-grid img").Length())
	assert.Equal(t, 3, doc.Find(".training-media-fallback.variant-2").Length())
}
