package trends

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractHashtagsFromTextNodes(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><body>
		<h3># shabebarat</h3>
		<span>#home</span>
		<p>not a hashtag</p>
		<div># two words</div>
		<span>#</span>
	</body></html>`)

	tags := ExtractHashtags(body)
	require.Equal(t, []string{"#shabebarat", "#home"}, tags)
}

func TestExtractHashtagsFromLinkTargets(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><body><a href="/hashtag/foo/pc/en">see more</a></body></html>`)
	require.Equal(t, []string{"#foo"}, ExtractHashtags(body))
}

func TestExtractHashtagsFromScriptPayloads(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><body><script>
		window.__DATA__ = {"list":[{"hashtag_name":"fyp"},{"hashtag_name" : "viral"}]};
	</script></body></html>`)
	require.Equal(t, []string{"#fyp", "#viral"}, ExtractHashtags(body))
}

func TestExtractHashtagsSkipsLaterHeuristicsWhenEnough(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 6; i++ {
		fmt.Fprintf(&sb, "<span>#texttag%d</span>", i)
	}
	sb.WriteString(`<a href="/hashtag/linkonly/pc/en">x</a>`)
	sb.WriteString("</body></html>")

	tags := ExtractHashtags([]byte(sb.String()))
	require.Len(t, tags, 6)
	require.NotContains(t, tags, "#linkonly", "link heuristic should not run once the text pass yields enough")
}

func TestExtractHashtagsDeduplicatesAcrossHeuristics(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><body>
		<span>#Foo</span>
		<a href="/hashtag/foo/pc/en">x</a>
		<script>{"hashtag_name":"FOO"}</script>
	</body></html>`)
	require.Equal(t, []string{"#Foo"}, ExtractHashtags(body))
}

func TestExtractHashtagsEmptyMarkup(t *testing.T) {
	t.Parallel()

	require.Empty(t, ExtractHashtags([]byte("<html><body><p>nothing here</p></body></html>")))
	require.Empty(t, ExtractHashtags(nil))
}
