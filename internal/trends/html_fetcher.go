package trends

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// PageScraper recovers general trending hashtags from the server-rendered
// Creative Center page. The initial HTML carries roughly twenty hashtags
// without any JavaScript execution, which keeps this tier browser-free.
type PageScraper struct {
	cfg    Config
	logger *zap.Logger
}

// NewPageScraper builds the HTML tier.
func NewPageScraper(cfg Config, logger *zap.Logger) *PageScraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageScraper{cfg: cfg, logger: logger}
}

// FetchTrending fetches the page once and runs the extraction heuristics.
// Any failure, including markup that yields no tags, is logged and collapsed
// into a nil result.
func (s *PageScraper) FetchTrending(ctx context.Context) []string {
	body := s.fetchPage(ctx)
	if body == nil {
		return nil
	}
	tags := ExtractHashtags(body)
	if len(tags) == 0 {
		s.logger.Warn("html tier found no hashtags in page markup")
		return nil
	}
	s.logger.Info("html tier parsed hashtags from page", zap.Int("hashtags", len(tags)))
	return tags
}

func (s *PageScraper) fetchPage(ctx context.Context) []byte {
	collector := colly.NewCollector(colly.UserAgent(s.cfg.UserAgent))
	collector.SetRequestTimeout(s.cfg.PageTimeout)

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "application/json, text/html, */*")
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
		r.Headers.Set("Referer", s.cfg.Referer)
	})

	var body []byte
	collector.OnResponse(func(r *colly.Response) {
		if r.StatusCode != http.StatusOK {
			s.logger.Warn("html tier bad status", zap.Int("status_code", r.StatusCode))
			return
		}
		body = append([]byte{}, r.Body...)
	})
	collector.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		s.logger.Warn("html tier request failed",
			zap.Int("status_code", status), zap.Error(err))
	})

	if err := collector.Visit(s.pageURL()); err != nil {
		s.logger.Warn("html tier visit failed", zap.Error(err))
		return nil
	}
	collector.Wait()

	if err := ctx.Err(); err != nil {
		s.logger.Warn("html tier canceled", zap.Error(err))
		return nil
	}
	return body
}

// pageURL appends the countryCode and period query parameters the page
// accepts. An empty country requests the default all-regions view.
func (s *PageScraper) pageURL() string {
	parsed, err := url.Parse(s.cfg.PageURL)
	if err != nil {
		return s.cfg.PageURL
	}
	query := parsed.Query()
	if s.cfg.CountryCode != "" {
		query.Set("countryCode", s.cfg.CountryCode)
	}
	if s.cfg.PeriodDays > 0 {
		query.Set("period", strconv.Itoa(s.cfg.PeriodDays))
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
