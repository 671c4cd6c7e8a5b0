package trends

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func apiTestConfig(baseURL string) Config {
	return Config{
		APIBaseURL:  baseURL,
		PageURL:     baseURL,
		PeriodDays:  7,
		Limit:       50,
		UserAgent:   "test-agent",
		Referer:     "https://example.org/referer",
		APITimeout:  5 * time.Second,
		PageTimeout: 5 * time.Second,
	}
}

func TestHashtagAPIFetchIndustrySuccess(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"period":      r.URL.Query().Get("period"),
			"limit":       r.URL.Query().Get("limit"),
			"sort_by":     r.URL.Query().Get("sort_by"),
			"industry_id": r.URL.Query().Get("industry_id"),
		}
		require.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":0,"data":{"list":[
			{"hashtag_name":"fyp"},
			{"hashtag_name":"#already"},
			{"hashtag_name":"  "},
			{"hashtag_name":"viral"}
		]}}`))
	}))
	defer server.Close()

	api := NewHashtagAPI(apiTestConfig(server.URL), zap.NewNop())
	tags := api.FetchIndustry(context.Background(), Industry{Name: "Games", FilterID: "18", WebsiteKey: "tech"})

	require.Equal(t, []string{"#fyp", "#already", "#viral"}, tags)
	require.Equal(t, "7", gotQuery["period"])
	require.Equal(t, "50", gotQuery["limit"])
	require.Equal(t, "popular", gotQuery["sort_by"])
	require.Equal(t, "18", gotQuery["industry_id"])
}

func TestHashtagAPIOmitsEmptyIndustryFilter(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.False(t, r.URL.Query().Has("industry_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":0,"data":{"list":[{"hashtag_name":"fyp"}]}}`))
	}))
	defer server.Close()

	api := NewHashtagAPI(apiTestConfig(server.URL), zap.NewNop())
	tags := api.FetchIndustry(context.Background(), Industry{Name: "All", WebsiteKey: "general"})
	require.Equal(t, []string{"#fyp"}, tags)
}

func TestHashtagAPIFailureModesYieldAbsence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			name: "non-zero embedded code",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"code":40101,"msg":"not allowed"}`))
			},
		},
		{
			name: "empty list",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"code":0,"data":{"list":[]}}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`<html>definitely not json</html>`))
			},
		},
		{
			name: "only blank names",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"code":0,"data":{"list":[{"hashtag_name":""},{"hashtag_name":"   "}]}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			api := NewHashtagAPI(apiTestConfig(server.URL), zap.NewNop())
			require.Nil(t, api.FetchIndustry(context.Background(), Industry{Name: "All", WebsiteKey: "general"}))
		})
	}
}

func TestHashtagAPINetworkErrorYieldsAbsence(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	api := NewHashtagAPI(apiTestConfig(server.URL), zap.NewNop())
	require.Nil(t, api.FetchIndustry(context.Background(), Industry{Name: "All", WebsiteKey: "general"}))
}
