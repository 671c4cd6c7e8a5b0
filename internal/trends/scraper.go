package trends

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/patelpranay97/creator-toolkit/internal/progress"
)

const (
	// generalMinimum is the bucket size below which the HTML tier is tried
	// for the general category.
	generalMinimum = 5
	// fallbackMinimum is the bucket size below which the fallback table
	// replaces a category.
	fallbackMinimum = 3
)

// apiFetcher is the structured-endpoint tier.
type apiFetcher interface {
	FetchIndustry(ctx context.Context, ind Industry) []string
}

// pageFetcher is the markup-scrape tier.
type pageFetcher interface {
	FetchTrending(ctx context.Context) []string
}

// Scraper runs the three-tier acquisition pipeline and merges partial
// results into one dataset. It holds no state across runs.
type Scraper struct {
	cfg     Config
	api     apiFetcher
	page    pageFetcher
	emitter progress.Emitter
	logger  *zap.Logger
	pause   pauser
	now     func() time.Time
}

// NewScraper wires the two live tiers to the merge policy. A nil emitter
// discards progress events.
func NewScraper(cfg Config, api apiFetcher, page pageFetcher, emitter progress.Emitter, logger *zap.Logger) *Scraper {
	if emitter == nil {
		emitter = progress.NopEmitter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scraper{
		cfg:     cfg,
		api:     api,
		page:    page,
		emitter: emitter,
		logger:  logger,
		pause:   timerPauser{},
		now:     time.Now,
	}
}

// Run executes one acquisition pass and returns the merged dataset together
// with the coarse source label describing which tiers contributed. It never
// fails: the fallback table guarantees a non-empty result.
func (s *Scraper) Run(ctx context.Context) (Dataset, Source) {
	runID := uuid.New()
	started := s.now().UTC()
	s.emit(progress.Event{RunID: runID, TS: started, Stage: progress.StageRunStart})

	data := Dataset{}
	source := SourceUnknown

	source = s.runAPITier(ctx, runID, data, source)
	source = s.runHTMLTier(ctx, runID, data, source)
	data, source = s.applyFallback(runID, data, source)

	s.emit(progress.Event{
		RunID: runID,
		TS:    s.now().UTC(),
		Stage: progress.StageRunDone,
		Count: data.Total(),
		Dur:   s.now().UTC().Sub(started),
		Note:  string(source),
	})
	return data, source
}

// runAPITier calls the structured endpoint once per industry, merging each
// result into the mapped website bucket. A short pause separates successive
// calls as a politeness measure toward the upstream service.
func (s *Scraper) runAPITier(ctx context.Context, runID uuid.UUID, data Dataset, source Source) Source {
	s.emit(progress.Event{
		RunID: runID, TS: s.now().UTC(),
		Stage: progress.StageTierStart, Tier: progress.TierAPI,
	})
	tierStart := s.now()

	succeeded := 0
	for i, ind := range Industries {
		if i > 0 {
			s.pause.Pause(ctx, s.cfg.PoliteDelay)
		}
		tags := s.api.FetchIndustry(ctx, ind)
		if len(tags) == 0 {
			continue
		}
		added := data.Merge(ind.WebsiteKey, tags)
		succeeded++
		s.emit(progress.Event{
			RunID: runID, TS: s.now().UTC(),
			Stage:    progress.StageCategoryMerged,
			Tier:     progress.TierAPI,
			Category: ind.WebsiteKey,
			Count:    added,
			Note:     ind.Name,
		})
	}

	if succeeded > 0 {
		source = SourceAPI
		s.logger.Info("api tier contributed data",
			zap.Int("industries_succeeded", succeeded),
			zap.Int("industries_total", len(Industries)))
	}
	s.emit(progress.Event{
		RunID: runID, TS: s.now().UTC(),
		Stage: progress.StageTierDone, Tier: progress.TierAPI,
		Count: succeeded, Dur: s.now().Sub(tierStart),
	})
	return source
}

// runHTMLTier scrapes the rendered page when the general bucket is missing
// or thin. A successful scrape replaces the bucket outright rather than
// merging, since the page serves the same unfiltered view.
func (s *Scraper) runHTMLTier(ctx context.Context, runID uuid.UUID, data Dataset, source Source) Source {
	if len(data[GeneralKey]) >= generalMinimum {
		return source
	}
	s.emit(progress.Event{
		RunID: runID, TS: s.now().UTC(),
		Stage: progress.StageTierStart, Tier: progress.TierHTML,
	})
	tierStart := s.now()

	tags := s.page.FetchTrending(ctx)
	if len(tags) > 0 {
		data[GeneralKey] = tags
		if source == SourceUnknown {
			source = SourceHTML
		} else {
			source = SourceAPIHTML
		}
		s.emit(progress.Event{
			RunID: runID, TS: s.now().UTC(),
			Stage:    progress.StageCategoryMerged,
			Tier:     progress.TierHTML,
			Category: GeneralKey,
			Count:    len(tags),
		})
	}
	s.emit(progress.Event{
		RunID: runID, TS: s.now().UTC(),
		Stage: progress.StageTierDone, Tier: progress.TierHTML,
		Count: len(tags), Dur: s.now().Sub(tierStart),
	})
	return source
}

// applyFallback enforces the minimum-size guarantees. When the live tiers
// produced nothing usable the whole output is replaced by the curated
// table; otherwise thin or missing categories are filled one at a time.
func (s *Scraper) applyFallback(runID uuid.UUID, data Dataset, source Source) (Dataset, Source) {
	if data.AllThin(fallbackMinimum) {
		s.logger.Warn("live tiers produced no usable data, using fallback table")
		data = FallbackDataset()
		for _, key := range FallbackCategories() {
			s.emit(progress.Event{
				RunID: runID, TS: s.now().UTC(),
				Stage:    progress.StageCategoryFilled,
				Tier:     progress.TierFallback,
				Category: key,
				Count:    len(data[key]),
			})
		}
		return data, SourceFallback
	}

	for _, key := range FallbackCategories() {
		if len(data[key]) >= fallbackMinimum {
			continue
		}
		data[key] = FallbackTags(key)
		s.logger.Info("filling thin category from fallback", zap.String("category", key))
		s.emit(progress.Event{
			RunID: runID, TS: s.now().UTC(),
			Stage:    progress.StageCategoryFilled,
			Tier:     progress.TierFallback,
			Category: key,
			Count:    len(data[key]),
		})
	}
	return data, source
}

func (s *Scraper) emit(evt progress.Event) {
	s.emitter.Emit(evt)
}
