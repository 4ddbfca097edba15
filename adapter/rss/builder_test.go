package rss_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagewatch/adapter/rss"
	"pagewatch/domain"
)

const pageURL = "https://example.com/news/"

func testChannel() domain.Channel {
	return domain.Channel{
		Title:       "Example Watch",
		Link:        pageURL,
		Description: "New content on example.com",
		Language:    "en-us",
	}
}

func TestBuildItems(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	blocks := []domain.ContentBlock{
		{Text: "first block", Fingerprint: "aaa111"},
		{Text: "second block", Fingerprint: "bbb222"},
	}

	out, err := rss.NewBuilder(testChannel()).Build(pageURL, blocks, now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), `<?xml version="1.0" encoding="UTF-8"?>`))

	feed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err)

	assert.Equal(t, "Example Watch", feed.Title)
	assert.Equal(t, "en-us", feed.Language)
	require.Len(t, feed.Items, 2)

	assert.Contains(t, feed.Items[0].Title, "2026-08-30")
	assert.Equal(t, "first block", feed.Items[0].Description)
	assert.Equal(t, pageURL+"#aaa111", feed.Items[0].GUID)
	assert.Equal(t, pageURL, feed.Items[0].Link)
	assert.Equal(t, pageURL+"#bbb222", feed.Items[1].GUID)

	require.NotNil(t, feed.Items[0].PublishedParsed)
	assert.True(t, feed.Items[0].PublishedParsed.Equal(now))
}

func TestBuildPlaceholder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	out, err := rss.NewBuilder(testChannel()).Build(pageURL, nil, now)
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err)

	require.Len(t, feed.Items, 1)
	assert.Contains(t, feed.Items[0].Title, "No new content")
	assert.Equal(t, pageURL+"#no-updates-2026-08-30", feed.Items[0].GUID)
}

func TestBuildPlaceholderGUIDIdempotentWithinDay(t *testing.T) {
	t.Parallel()

	b := rss.NewBuilder(testChannel())
	morning := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 30, 20, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

	first, err := b.Build(pageURL, nil, morning)
	require.NoError(t, err)
	second, err := b.Build(pageURL, nil, evening)
	require.NoError(t, err)
	third, err := b.Build(pageURL, nil, nextDay)
	require.NoError(t, err)

	p := gofeed.NewParser()
	f1, err := p.ParseString(string(first))
	require.NoError(t, err)
	f2, err := p.ParseString(string(second))
	require.NoError(t, err)
	f3, err := p.ParseString(string(third))
	require.NoError(t, err)

	assert.Equal(t, f1.Items[0].GUID, f2.Items[0].GUID)
	assert.NotEqual(t, f1.Items[0].GUID, f3.Items[0].GUID)
}
