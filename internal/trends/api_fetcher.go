package trends

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// apiResponse mirrors the Creative Center list payload:
// { "code": 0, "data": { "list": [ { "hashtag_name": "..." }, ... ] } }
type apiResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		List []struct {
			HashtagName string `json:"hashtag_name"`
		} `json:"list"`
	} `json:"data"`
}

// HashtagAPI fetches trending hashtags from the structured Creative Center
// endpoint, the same one the site's own JavaScript calls.
type HashtagAPI struct {
	client *resty.Client
	cfg    Config
	logger *zap.Logger
}

// NewHashtagAPI builds the API tier with a browser-like header set. The
// headers are a stability concern: the endpoint rejects obviously
// non-browser clients.
func NewHashtagAPI(cfg Config, logger *zap.Logger) *HashtagAPI {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(cfg.APITimeout).
		SetHeaders(map[string]string{
			"User-Agent":      cfg.UserAgent,
			"Accept":          "application/json, text/html, */*",
			"Accept-Language": "en-US,en;q=0.9",
			"Referer":         cfg.Referer,
		})
	return &HashtagAPI{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// FetchIndustry returns trending tags for one industry, or nil when the
// tier produced no usable data. Transport errors, bad statuses, non-zero
// embedded response codes, malformed bodies, and empty lists are all logged
// and collapsed into absence so the orchestrator can advance to the next
// tier without special-casing error types.
func (a *HashtagAPI) FetchIndustry(ctx context.Context, ind Industry) []string {
	req := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"period":       strconv.Itoa(a.cfg.PeriodDays),
			"country_code": a.cfg.CountryCode,
			"page":         "1",
			"limit":        strconv.Itoa(a.cfg.Limit),
			"sort_by":      "popular",
		}).
		SetResult(&apiResponse{})
	if ind.FilterID != "" {
		req.SetQueryParam("industry_id", ind.FilterID)
	}

	resp, err := req.Get(a.cfg.APIBaseURL)
	if err != nil {
		a.logger.Warn("api tier request failed",
			zap.String("industry", ind.Name), zap.Error(err))
		return nil
	}
	if resp.StatusCode() != http.StatusOK {
		a.logger.Warn("api tier bad status",
			zap.String("industry", ind.Name), zap.Int("status_code", resp.StatusCode()))
		return nil
	}
	payload, ok := resp.Result().(*apiResponse)
	if !ok || payload == nil {
		a.logger.Warn("api tier unexpected payload type", zap.String("industry", ind.Name))
		return nil
	}
	if payload.Code != 0 {
		a.logger.Warn("api tier non-zero response code",
			zap.String("industry", ind.Name),
			zap.Int("code", payload.Code),
			zap.String("msg", payload.Msg))
		return nil
	}
	if len(payload.Data.List) == 0 {
		a.logger.Info("api tier empty list", zap.String("industry", ind.Name))
		return nil
	}

	tags := make([]string, 0, len(payload.Data.List))
	for _, item := range payload.Data.List {
		if tag := normalizeTag(item.HashtagName); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		a.logger.Info("api tier produced no usable names", zap.String("industry", ind.Name))
		return nil
	}
	a.logger.Info("api tier succeeded",
		zap.String("industry", ind.Name), zap.Int("hashtags", len(tags)))
	return tags
}
