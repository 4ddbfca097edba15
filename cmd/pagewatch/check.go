package main

import (
	"context"
	"flag"
	"fmt"

	htmlx "pagewatch/adapter/html"
	"pagewatch/adapter/page"
	"pagewatch/adapter/rss"
	"pagewatch/app"
	"pagewatch/domain"
	"pagewatch/internal/config"
	"pagewatch/internal/logger"
)

func cmdCheck(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("check", flag.ContinueOnError)
	fset.StringVar(&cfg.PageURL, "url", cfg.PageURL, "page URL to watch")
	fset.StringVar(&cfg.FeedPath, "feed", cfg.FeedPath, "path of the generated RSS file")
	fset.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "path of the snapshot file (file store)")
	fset.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	watcher := app.NewWatcher(
		page.NewFetcher(cfg.HTTPTimeout, cfg.UserAgent, cfg.ConditionalGET),
		htmlx.NewExtractorWithLimits(cfg.MinSubstanceChars, cfg.MaxDisplayChars),
		store,
		rss.NewBuilder(domain.Channel{
			Title:       cfg.ChannelTitle,
			Link:        cfg.ChannelLink,
			Description: cfg.ChannelDescription,
			Language:    cfg.ChannelLanguage,
		}),
		log,
		cfg.PageURL,
		cfg.FeedPath,
	)

	report, err := watcher.Run(context.Background())
	if err != nil {
		fmt.Printf("Check failed: %v\n", err)
		return err
	}

	if report.Placeholder {
		fmt.Printf("Feed written to %s (no new content)\n", report.FeedPath)
	} else {
		fmt.Printf("Feed written to %s (%d new items)\n", report.FeedPath, report.NewItems)
	}
	return nil
}
