package tracking

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBase = "https://app.example.com"
	testID   = "0123456789abcdef0123456789abcdef"
)

func TestRewriteLinks_WrapsHTTPLinks(t *testing.T) {
	body := `<p>See <a href="https://jobs.example.org/posting?id=7">the posting</a></p>`
	out := rewriteLinks(body, testID, testBase)

	assert.NotContains(t, out, `href="https://jobs.example.org`)
	assert.Contains(t, out, testBase+ClickPath+"/"+testID+"?url=")
	assert.Contains(t, out, url.QueryEscape("https://jobs.example.org/posting?id=7"))
}

func TestRewriteLinks_LeavesMailtoAndTelUnchanged(t *testing.T) {
	body := `<a href="mailto:jane@example.com">mail</a> <a href="tel:+15551234567">call</a>`
	out := rewriteLinks(body, testID, testBase)

	assert.Equal(t, body, out)
}

func TestRewriteLinks_LeavesFragmentsUnchanged(t *testing.T) {
	body := `<a href="#section-2">jump</a>`
	assert.Equal(t, body, rewriteLinks(body, testID, testBase))
}

func TestRewriteLinks_WrapsRelativeLinks(t *testing.T) {
	body := `<a href="/portfolio">work</a>`
	out := rewriteLinks(body, testID, testBase)
	assert.Contains(t, out, ClickPath+"/"+testID+"?url="+url.QueryEscape("/portfolio"))
}

func TestRewriteHTML_Idempotent(t *testing.T) {
	body := `<html><body><a href="https://example.com/a">a</a></body></html>`

	once := RewriteHTML(body, testID, testBase)
	twice := rewriteLinks(once, testID, testBase)

	// Re-applying link rewriting must not double-wrap.
	assert.Equal(t, once, twice)
	assert.Equal(t, 1, strings.Count(twice, "url="+url.QueryEscape("https://example.com/a")))
}

func TestInjectPixel_BeforeClosingBody(t *testing.T) {
	body := `<html><body><p>hi</p></body></html>`
	out := injectPixel(body, testID, testBase)

	pixelIdx := strings.Index(out, OpenPath+"/"+testID+".gif")
	bodyIdx := strings.Index(out, "</body>")
	require.Greater(t, pixelIdx, 0)
	assert.Less(t, pixelIdx, bodyIdx)
}

func TestInjectPixel_BeforeClosingHTMLWithoutBody(t *testing.T) {
	body := `<html><p>hi</p></html>`
	out := injectPixel(body, testID, testBase)

	assert.Less(t, strings.Index(out, ".gif"), strings.Index(out, "</html>"))
}

func TestInjectPixel_AppendsWhenNoClosingTags(t *testing.T) {
	body := `<p>plain snippet</p>`
	out := injectPixel(body, testID, testBase)

	assert.True(t, strings.HasPrefix(out, body))
	assert.Contains(t, out, testID+".gif")
}

func TestNewTrackingID_Is32HexChars(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := NewTrackingID()
		require.NoError(t, err)
		assert.Len(t, id, 32)
		assert.False(t, seen[id], "tracking ids must not repeat")
		seen[id] = true
	}
}
