package app

import (
	"context"
	"fmt"
	"time"

	"pagewatch/domain"
	"pagewatch/internal/helper"
	"pagewatch/internal/logger"
)

// Watcher runs one check of the watched page: fetch, extract, diff
// against the previous snapshot, render the feed, persist the new
// snapshot. Strictly linear and single-threaded; one Run per external
// invocation. Overlapping invocations are not coordinated — the last
// writer wins on the snapshot.
type Watcher struct {
	fetcher   domain.PageFetcher
	extractor domain.BlockExtractor
	store     domain.SnapshotStore
	builder   domain.FeedBuilder
	log       logger.Logger

	pageURL  string
	feedPath string

	now func() time.Time
}

func NewWatcher(
	fetcher domain.PageFetcher,
	extractor domain.BlockExtractor,
	store domain.SnapshotStore,
	builder domain.FeedBuilder,
	log logger.Logger,
	pageURL, feedPath string,
) *Watcher {
	return &Watcher{
		fetcher:   fetcher,
		extractor: extractor,
		store:     store,
		builder:   builder,
		log:       log,
		pageURL:   pageURL,
		feedPath:  feedPath,
		now:       time.Now,
	}
}

// Run performs one check. A fetch failure aborts before anything is
// written, so a failed run never moves the snapshot. The feed file is
// committed before the snapshot.
func (w *Watcher) Run(ctx context.Context) (domain.Report, error) {
	prev, err := w.store.Load(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load snapshot: %w", err)
	}

	res, err := w.fetcher.Fetch(ctx, w.pageURL, prev)
	if err != nil {
		w.log.Error("page fetch failed", logger.String("url", w.pageURL), logger.Error(err))
		return domain.Report{}, err
	}

	var (
		blocks    []domain.ContentBlock
		newBlocks []domain.ContentBlock
		hashes    []string
	)
	if res.NotModified {
		// Content is identical by definition; keep the previous set.
		w.log.Info("page not modified", logger.String("url", w.pageURL))
		hashes = prev.Hashes
	} else {
		blocks = w.extractor.Extract(res.Body)
		newBlocks = domain.DedupeByFingerprint(domain.Diff(blocks, prev))
		hashes = domain.Fingerprints(blocks)
		w.log.Info("extracted blocks",
			logger.Int("blocks", len(blocks)),
			logger.Int("new", len(newBlocks)),
		)
	}

	now := w.now()
	feed, err := w.builder.Build(w.pageURL, newBlocks, now)
	if err != nil {
		return domain.Report{}, err
	}
	if err := helper.WriteFileAtomic(w.feedPath, feed); err != nil {
		return domain.Report{}, fmt.Errorf("write feed: %w", err)
	}

	snap := domain.Snapshot{
		Hashes:       hashes,
		LastUpdate:   &now,
		ETag:         res.ETag,
		LastModified: res.LastModified,
	}
	if err := w.store.Save(ctx, snap); err != nil {
		return domain.Report{}, fmt.Errorf("save snapshot: %w", err)
	}

	w.log.Info("run complete",
		logger.String("feed", w.feedPath),
		logger.Int("new_items", len(newBlocks)),
	)
	return domain.Report{
		FeedPath:    w.feedPath,
		NewItems:    len(newBlocks),
		Placeholder: len(newBlocks) == 0,
		NotModified: res.NotModified,
		Blocks:      len(blocks),
	}, nil
}
