package html

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"pagewatch/domain"
)

const (
	// DefaultMinSubstanceChars is the threshold below which a block is
	// treated as navigational noise and dropped.
	DefaultMinSubstanceChars = 100
	// DefaultMaxDisplayChars caps the display text of a block.
	DefaultMaxDisplayChars = 500

	continuationMarker = "..."

	// blockSelector matches structural container elements at any
	// nesting depth. A parent and its children qualify independently,
	// so overlapping blocks are expected at this stage.
	blockSelector = "div, section, article, main"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extractor scans parsed markup for substantial text blocks.
type Extractor struct {
	minChars int
	maxChars int
}

func NewExtractor() *Extractor {
	return &Extractor{minChars: DefaultMinSubstanceChars, maxChars: DefaultMaxDisplayChars}
}

func NewExtractorWithLimits(minChars, maxChars int) *Extractor {
	return &Extractor{minChars: minChars, maxChars: maxChars}
}

// Extract returns the qualifying blocks in document order. Markup the
// parser cannot make sense of yields however many blocks it can see;
// there is no error path.
func (e *Extractor) Extract(body []byte) []domain.ContentBlock {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}
	var blocks []domain.ContentBlock
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		text := collapseWhitespace(sel.Text())
		if utf8.RuneCountInString(text) < e.minChars {
			return
		}
		// Hash before truncating: identity is the full text.
		fp := Fingerprint(text)
		blocks = append(blocks, domain.ContentBlock{
			Text:        truncate(text, e.maxChars),
			Fingerprint: fp,
		})
	})
	return blocks
}

// Fingerprint returns the lowercase-hex MD5 of text.
func Fingerprint(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + continuationMarker
}
