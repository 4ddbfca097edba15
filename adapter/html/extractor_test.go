package html_test

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	htmlx "pagewatch/adapter/html"
)

func md5hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestExtractThresholdBoundary(t *testing.T) {
	t.Parallel()

	atThreshold := strings.Repeat("a", 100)
	belowThreshold := strings.Repeat("b", 99)
	page := fmt.Sprintf(`<html><body><div>%s</div><div>%s</div></body></html>`, atThreshold, belowThreshold)

	blocks := htmlx.NewExtractor().Extract([]byte(page))
	require.Len(t, blocks, 1)
	assert.Equal(t, atThreshold, blocks[0].Text)
}

func TestExtractTruncation(t *testing.T) {
	t.Parallel()

	full := strings.Repeat("x", 600)
	page := fmt.Sprintf(`<html><body><div>%s</div></body></html>`, full)

	blocks := htmlx.NewExtractor().Extract([]byte(page))
	require.Len(t, blocks, 1)

	assert.Equal(t, 503, utf8.RuneCountInString(blocks[0].Text))
	assert.True(t, strings.HasSuffix(blocks[0].Text, "..."))
	// Identity comes from the full text, not the truncated display.
	assert.Equal(t, md5hex(full), blocks[0].Fingerprint)
}

func TestExtractFingerprintStability(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("stable ", 30)
	page := fmt.Sprintf(`<html><body><div>%s</div></body></html>`, text)

	first := htmlx.NewExtractor().Extract([]byte(page))
	second := htmlx.NewExtractor().Extract([]byte(page))
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Fingerprint, second[0].Fingerprint)

	other := htmlx.NewExtractor().Extract([]byte(strings.Replace(page, "stable", "shifty", 1)))
	require.Len(t, other, 1)
	assert.NotEqual(t, first[0].Fingerprint, other[0].Fingerprint)
}

func TestExtractCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	words := strings.Repeat("word\n\t  ", 30)
	page := fmt.Sprintf(`<html><body><div>  %s  </div></body></html>`, words)

	blocks := htmlx.NewExtractor().Extract([]byte(page))
	require.Len(t, blocks, 1)
	assert.NotContains(t, blocks[0].Text, "\n")
	assert.NotContains(t, blocks[0].Text, "  ")
	assert.False(t, strings.HasPrefix(blocks[0].Text, " "))
}

func TestExtractNestedContainersOverlap(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("nested content ", 10)
	page := fmt.Sprintf(`<html><body><section><div>%s</div></section></body></html>`, text)

	blocks := htmlx.NewExtractor().Extract([]byte(page))
	// Parent and child qualify independently; no dedup at this stage.
	require.Len(t, blocks, 2)
	assert.Equal(t, blocks[0].Fingerprint, blocks[1].Fingerprint)
}

func TestExtractDocumentOrder(t *testing.T) {
	t.Parallel()

	first := strings.Repeat("first ", 20)
	second := strings.Repeat("second ", 20)
	page := fmt.Sprintf(`<html><body><div>%s</div><div>%s</div></body></html>`, first, second)

	blocks := htmlx.NewExtractor().Extract([]byte(page))
	require.Len(t, blocks, 2)
	assert.True(t, strings.HasPrefix(blocks[0].Text, "first"))
	assert.True(t, strings.HasPrefix(blocks[1].Text, "second"))
}

func TestExtractMalformedMarkup(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("unclosed ", 15)
	page := fmt.Sprintf(`<div>%s`, text)

	assert.NotPanics(t, func() {
		blocks := htmlx.NewExtractor().Extract([]byte(page))
		// The parser recovers; whatever it sees is fine, an error is not.
		for _, b := range blocks {
			assert.NotEmpty(t, b.Fingerprint)
		}
	})
}

func TestExtractCustomLimits(t *testing.T) {
	t.Parallel()

	page := `<html><body><div>short but real text</div></body></html>`

	blocks := htmlx.NewExtractorWithLimits(10, 8).Extract([]byte(page))
	require.Len(t, blocks, 1)
	assert.Equal(t, "short bu...", blocks[0].Text)
	assert.Equal(t, md5hex("short but real text"), blocks[0].Fingerprint)
}
