package main

import (
	"context"
	"flag"
	"fmt"

	"pagewatch/internal/config"
)

func cmdReset(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("reset", flag.ContinueOnError)
	fset.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "path of the snapshot file (file store)")
	if err := fset.Parse(args); err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Reset(context.Background()); err != nil {
		return err
	}
	fmt.Println("Snapshot removed")
	return nil
}
