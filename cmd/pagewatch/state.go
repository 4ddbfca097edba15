package main

import (
	"context"
	"flag"
	"fmt"

	"pagewatch/internal/config"
)

func cmdState(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("state", flag.ContinueOnError)
	fset.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "path of the snapshot file (file store)")
	if err := fset.Parse(args); err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	snap, err := store.Load(context.Background())
	if err != nil {
		return err
	}

	if snap.LastUpdate == nil {
		fmt.Println("No snapshot yet (next check is a first run)")
		return nil
	}
	fmt.Printf("Last update: %s\n", snap.LastUpdate.Format("2006-01-02 15:04:05"))
	fmt.Printf("Fingerprints: %d\n", len(snap.Hashes))
	for i, h := range snap.Hashes {
		fmt.Printf("%d. %s\n", i+1, h)
	}
	return nil
}
