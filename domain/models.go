package domain

import "time"

// ContentBlock is one substantial unit of page text. Text is truncated
// for display; Fingerprint is computed over the full untruncated text,
// so truncation never affects identity.
type ContentBlock struct {
	Text        string
	Fingerprint string
}

// Snapshot is the set of fingerprints observed at the last successful
// run. It is replaced wholesale on save, never merged: it records what
// existed at last check, not a union across history.
type Snapshot struct {
	Hashes       []string   `json:"hashes"`
	LastUpdate   *time.Time `json:"last_update"`
	ETag         string     `json:"etag,omitempty"`
	LastModified string     `json:"last_modified,omitempty"`
}

// FetchResult is the raw outcome of one page fetch.
type FetchResult struct {
	Body         []byte
	NotModified  bool
	ETag         string
	LastModified string
}

// Channel holds the metadata of the generated feed.
type Channel struct {
	Title       string
	Link        string
	Description string
	Language    string
}

// FeedItem is one entry of the generated feed, derived 1:1 from a new
// ContentBlock or synthesized as the no-updates placeholder.
type FeedItem struct {
	Title       string
	Link        string
	Description string
	PubDate     time.Time
	GUID        string
}

// Report summarizes one completed run for the CLI.
type Report struct {
	FeedPath    string
	NewItems    int
	Placeholder bool
	NotModified bool
	Blocks      int
}
