package rss

import (
	"encoding/xml"
	"fmt"
	"time"

	"pagewatch/domain"
)

// Builder renders new content blocks as an RSS 2.0 document. The feed
// is fully regenerated each run, never appended to.
type Builder struct{ channel domain.Channel }

func NewBuilder(channel domain.Channel) *Builder { return &Builder{channel: channel} }

// Build serializes one item per block, or a single placeholder item
// when blocks is empty. The placeholder GUID embeds the calendar date,
// so repeated no-update runs are idempotent within a day and distinct
// across days.
func (b *Builder) Build(pageURL string, blocks []domain.ContentBlock, now time.Time) ([]byte, error) {
	day := now.Format("2006-01-02")
	pubDate := now.Format(time.RFC1123Z)

	doc := rssDoc{
		Version: "2.0",
		Channel: rssChannel{
			Title:         b.channel.Title,
			Link:          b.channel.Link,
			Description:   b.channel.Description,
			Language:      b.channel.Language,
			LastBuildDate: pubDate,
		},
	}

	if len(blocks) == 0 {
		doc.Channel.Item = []rssItem{{
			Title:       fmt.Sprintf("No new content (%s)", day),
			Link:        pageURL,
			Description: "No new content was detected on this check.",
			PubDate:     pubDate,
			GUID:        rssGUID{IsPermaLink: "false", Value: fmt.Sprintf("%s#no-updates-%s", pageURL, day)},
		}}
	} else {
		doc.Channel.Item = make([]rssItem, 0, len(blocks))
		for _, blk := range blocks {
			doc.Channel.Item = append(doc.Channel.Item, rssItem{
				Title:       fmt.Sprintf("New content (%s)", day),
				Link:        pageURL,
				Description: blk.Text,
				PubDate:     pubDate,
				GUID:        rssGUID{IsPermaLink: "false", Value: fmt.Sprintf("%s#%s", pageURL, blk.Fingerprint)},
			})
		}
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Item          []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}
