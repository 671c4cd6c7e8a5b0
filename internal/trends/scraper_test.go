package trends

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/patelpranay97/creator-toolkit/internal/progress"
)

// stubAPI returns canned tags per industry name.
type stubAPI struct {
	byIndustry map[string][]string
	calls      int
}

func (s *stubAPI) FetchIndustry(_ context.Context, ind Industry) []string {
	s.calls++
	return s.byIndustry[ind.Name]
}

// stubPage returns one canned list for the general trending page.
type stubPage struct {
	tags  []string
	calls int
}

func (s *stubPage) FetchTrending(context.Context) []string {
	s.calls++
	return s.tags
}

func newTestScraper(api apiFetcher, page pageFetcher, emitter progress.Emitter) *Scraper {
	cfg := Config{PeriodDays: 7, Limit: 50, PoliteDelay: 0}
	return NewScraper(cfg, api, page, emitter, zap.NewNop())
}

func TestScraperAllTiersFailYieldsFallback(t *testing.T) {
	t.Parallel()

	api := &stubAPI{}
	page := &stubPage{}
	scraper := newTestScraper(api, page, nil)

	data, source := scraper.Run(context.Background())
	require.Equal(t, SourceFallback, source)
	require.Equal(t, FallbackDataset(), data)
	require.Equal(t, len(Industries), api.calls, "every industry should be attempted exactly once")
	require.Equal(t, 1, page.calls, "the page tier should be attempted exactly once")
}

func TestScraperSingleCategorySuccessFillsRestFromFallback(t *testing.T) {
	t.Parallel()

	techTags := []string{"#tech", "#ai", "#gadgets", "#robotics", "#coding", "#gpu"}
	api := &stubAPI{byIndustry: map[string][]string{"Tech & Electronics": techTags}}
	page := &stubPage{}
	scraper := newTestScraper(api, page, nil)

	data, source := scraper.Run(context.Background())
	require.Equal(t, SourceAPI, source)
	require.Equal(t, techTags, data["tech"])
	for _, key := range FallbackCategories() {
		if key == "tech" {
			continue
		}
		require.Equal(t, FallbackTags(key), data[key], "category %q should be filled verbatim from fallback", key)
	}
}

func TestScraperSharedBucketAccumulates(t *testing.T) {
	t.Parallel()

	api := &stubAPI{byIndustry: map[string][]string{
		"Games":              {"#gaming", "#esports", "#twitch"},
		"Tech & Electronics": {"#tech", "#Gaming", "#ai"},
	}}
	scraper := newTestScraper(api, &stubPage{}, nil)

	data, _ := scraper.Run(context.Background())
	require.Equal(t, []string{"#gaming", "#esports", "#twitch", "#tech", "#ai"}, data["tech"])
}

func TestScraperThinGeneralBucketReplacedByHTMLTier(t *testing.T) {
	t.Parallel()

	htmlTags := []string{"#fyp", "#viral", "#trending", "#foryou", "#tiktok", "#dance"}
	api := &stubAPI{byIndustry: map[string][]string{
		"All":                {"#one", "#two"}, // below the general threshold
		"Tech & Electronics": {"#tech", "#ai", "#gadgets", "#robotics", "#coding"},
	}}
	page := &stubPage{tags: htmlTags}
	scraper := newTestScraper(api, page, nil)

	data, source := scraper.Run(context.Background())
	require.Equal(t, SourceAPIHTML, source)
	require.Equal(t, htmlTags, data["general"], "general bucket should be replaced outright, not merged")
}

func TestScraperHealthyGeneralBucketSkipsHTMLTier(t *testing.T) {
	t.Parallel()

	api := &stubAPI{byIndustry: map[string][]string{
		"All": {"#a", "#b", "#c", "#d", "#e"},
	}}
	page := &stubPage{tags: []string{"#ignored"}}
	scraper := newTestScraper(api, page, nil)

	data, source := scraper.Run(context.Background())
	require.Equal(t, SourceAPI, source)
	require.Zero(t, page.calls, "page tier should be skipped when general is healthy")
	require.Equal(t, []string{"#a", "#b", "#c", "#d", "#e"}, data["general"])
}

func TestScraperHTMLOnlySuccess(t *testing.T) {
	t.Parallel()

	htmlTags := []string{"#fyp", "#viral", "#trending"}
	scraper := newTestScraper(&stubAPI{}, &stubPage{tags: htmlTags}, nil)

	data, source := scraper.Run(context.Background())
	require.Equal(t, SourceHTML, source)
	require.Equal(t, htmlTags, data["general"])
	// Remaining categories are filled so the site always has data.
	for _, key := range FallbackCategories() {
		require.GreaterOrEqual(t, len(data[key]), 3)
	}
}

func TestScraperEmitsProgressSideChannel(t *testing.T) {
	t.Parallel()

	collector := &progress.CollectorEmitter{}
	scraper := newTestScraper(&stubAPI{}, &stubPage{}, collector)
	scraper.Run(context.Background())

	require.NotEmpty(t, collector.Events)
	require.Equal(t, progress.StageRunStart, collector.Events[0].Stage)
	last := collector.Events[len(collector.Events)-1]
	require.Equal(t, progress.StageRunDone, last.Stage)
	require.Equal(t, string(SourceFallback), last.Note)

	for _, evt := range collector.Events {
		require.NoError(t, evt.Validate())
	}
}
