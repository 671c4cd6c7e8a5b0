package trends

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minHeuristicYield is the running total below which the extractor keeps
// trying lower-priority heuristics.
const minHeuristicYield = 5

var (
	hashtagHrefPattern = regexp.MustCompile(`/hashtag/([^/?]+)`)
	hashtagJSONPattern = regexp.MustCompile(`"hashtag_name"\s*:\s*"([^"]+)"`)
)

// ExtractHashtags applies the three markup heuristics in priority order over
// the page body, skipping later ones once at least minHeuristicYield tags
// are in hand. Results are deduplicated case-insensitively across all
// heuristics, first occurrence kept. Returns nil on unparseable markup or
// when nothing matched.
func ExtractHashtags(body []byte) []string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var tags []string
	add := func(batch []string) {
		for _, tag := range batch {
			lower := strings.ToLower(tag)
			if _, ok := seen[lower]; ok {
				continue
			}
			seen[lower] = struct{}{}
			tags = append(tags, tag)
		}
	}

	add(extractFromText(doc))
	if len(tags) < minHeuristicYield {
		add(extractFromLinks(doc))
	}
	if len(tags) < minHeuristicYield {
		add(extractFromScripts(doc))
	}
	return tags
}

// extractFromText scans marked-up text nodes for "#"-leading tokens with no
// internal whitespace. The page renders hashtags as "# name" in heading and
// link elements, so a "# " prefix collapses to "#".
func extractFromText(doc *goquery.Document) []string {
	var out []string
	doc.Find("a, div, span, h3, p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if !strings.HasPrefix(text, "#") {
			return
		}
		tag := strings.TrimSpace(strings.ReplaceAll(text, "# ", "#"))
		if len(tag) > 1 && strings.HasPrefix(tag, "#") && !strings.ContainsAny(tag, " \t\n") {
			out = append(out, tag)
		}
	})
	return out
}

// extractFromLinks pulls hashtag names out of hrefs shaped like
// /hashtag/<name>/pc/en.
func extractFromLinks(doc *goquery.Document) []string {
	var out []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		match := hashtagHrefPattern.FindStringSubmatch(href)
		if match == nil {
			return
		}
		out = append(out, "#"+match[1])
	})
	return out
}

// extractFromScripts finds hashtag_name keys inside inline script payloads,
// which carry the same JSON the structured API serves.
func extractFromScripts(doc *goquery.Document) []string {
	var out []string
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		for _, match := range hashtagJSONPattern.FindAllStringSubmatch(sel.Text(), -1) {
			out = append(out, "#"+match[1])
		}
	})
	return out
}
