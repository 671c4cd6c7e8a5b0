// Package trends implements the trending-hashtag acquisition pipeline: a
// structured Creative Center API tier, a best-effort HTML scrape tier, and a
// curated fallback table, merged into one dataset keyed by website category.
package trends

import (
	"strings"
	"time"
)

// Source identifies which acquisition tier(s) contributed to a dataset.
type Source string

// Source label values written into run metadata.
const (
	SourceUnknown  Source = "unknown"
	SourceAPI      Source = "api"
	SourceHTML     Source = "html"
	SourceAPIHTML  Source = "api+html"
	SourceFallback Source = "fallback"
)

// Dataset maps website category keys to ordered hashtag lists. Tags within a
// bucket are unique under case-insensitive comparison, most popular first.
type Dataset map[string][]string

// Meta describes one scrape run. It is serialized under the reserved "_meta"
// key of the output JSON document.
type Meta struct {
	ScrapedAt  string `json:"scraped_at"`
	Source     Source `json:"source"`
	Country    string `json:"country"`
	PeriodDays int    `json:"period_days"`
}

// scrapedAtLayout matches the timestamp format the website consumer expects.
const scrapedAtLayout = "2006-01-02 15:04:05"

// NewMeta builds run metadata from the active configuration.
func NewMeta(cfg Config, source Source, now time.Time) Meta {
	country := cfg.CountryCode
	if country == "" {
		country = "all"
	}
	return Meta{
		ScrapedAt:  now.UTC().Format(scrapedAtLayout) + " UTC",
		Source:     source,
		Country:    country,
		PeriodDays: cfg.PeriodDays,
	}
}

// Merge appends tags into the bucket for key, skipping entries already
// present under case-insensitive comparison. Order of new entries follows
// the source list. It reports how many tags were added.
func (d Dataset) Merge(key string, tags []string) int {
	seen := make(map[string]struct{}, len(d[key]))
	for _, t := range d[key] {
		seen[strings.ToLower(t)] = struct{}{}
	}
	added := 0
	for _, t := range tags {
		lower := strings.ToLower(t)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		d[key] = append(d[key], t)
		added++
	}
	return added
}

// AllThin reports whether the dataset is empty or every bucket holds fewer
// than min tags, in which case the whole output should be discarded in favor
// of the fallback table.
func (d Dataset) AllThin(min int) bool {
	if len(d) == 0 {
		return true
	}
	for _, tags := range d {
		if len(tags) >= min {
			return false
		}
	}
	return true
}

// Total returns the number of tags across every bucket.
func (d Dataset) Total() int {
	n := 0
	for _, tags := range d {
		n += len(tags)
	}
	return n
}

// normalizeTag trims the raw upstream name and forces a single leading "#".
// Empty names normalize to the empty string and should be dropped.
func normalizeTag(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "#") {
		return name
	}
	return "#" + name
}
