package main

import (
	"context"
	"flag"
	"fmt"

	htmlx "pagewatch/adapter/html"
	"pagewatch/adapter/page"
	"pagewatch/domain"
	"pagewatch/internal/config"
)

// preview is a dry run: fetch + extract, print the would-be blocks,
// touch neither the feed file nor the snapshot.
func cmdPreview(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("preview", flag.ContinueOnError)
	fset.StringVar(&cfg.PageURL, "url", cfg.PageURL, "page URL to watch")
	fset.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fetcher := page.NewFetcher(cfg.HTTPTimeout, cfg.UserAgent, false)
	res, err := fetcher.Fetch(context.Background(), cfg.PageURL, domain.Snapshot{})
	if err != nil {
		return err
	}

	blocks := htmlx.NewExtractorWithLimits(cfg.MinSubstanceChars, cfg.MaxDisplayChars).Extract(res.Body)
	fmt.Printf("%s: %d blocks\n\n", cfg.PageURL, len(blocks))
	for i, b := range blocks {
		fmt.Printf("%d. [%s] %s\n\n", i+1, b.Fingerprint[:12], b.Text)
	}
	return nil
}
