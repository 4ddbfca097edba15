package domain

import (
	"context"
	"time"
)

// PageFetcher retrieves the raw body of the watched page. The previous
// snapshot is passed so implementations may issue a conditional GET.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string, prev Snapshot) (FetchResult, error)
}

// BlockExtractor turns raw page markup into content blocks in document
// order. Malformed markup degrades to fewer blocks, never to an error.
type BlockExtractor interface {
	Extract(body []byte) []ContentBlock
}

// SnapshotStore is the persistence port for the fingerprint snapshot.
// Load on missing state returns an empty Snapshot and no error; that is
// the expected first-run condition.
type SnapshotStore interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, s Snapshot) error
}

// FeedBuilder renders new blocks (or the placeholder, when empty) as an
// RSS 2.0 document.
type FeedBuilder interface {
	Build(pageURL string, blocks []ContentBlock, now time.Time) ([]byte, error)
}
