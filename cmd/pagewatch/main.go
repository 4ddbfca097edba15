package main

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"pagewatch/adapter/filestore"
	"pagewatch/adapter/postgres"
	"pagewatch/adapter/redisstore"
	"pagewatch/domain"
	"pagewatch/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "--help", "-h", "help":
		printHelp()
		return
	case "check":
		if err := cmdCheck(args); err != nil {
			log.Printf("%v", err)
			os.Exit(1)
		}
	case "preview":
		if err := cmdPreview(args); err != nil {
			log.Printf("%v", err)
			os.Exit(1)
		}
	case "state":
		if err := cmdState(args); err != nil {
			log.Printf("%v", err)
			os.Exit(1)
		}
	case "reset":
		if err := cmdReset(args); err != nil {
			log.Printf("%v", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("unknown command: %s\n\n", cmd)
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Print(`Usage:
  pagewatch COMMAND [OPTIONS]

Commands:
   check      fetch the page, diff against the last snapshot, write the RSS feed
   preview    fetch the page and print the extracted blocks (writes nothing)
   state      print the persisted snapshot
   reset      delete the persisted snapshot (next check behaves as first run)
   help       show this help
`)
}

// snapshotStore adds Reset on top of the persistence port; all three
// store adapters implement it.
type snapshotStore interface {
	domain.SnapshotStore
	Reset(ctx context.Context) error
}

func openStore(cfg config.Config) (snapshotStore, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(cfg.PostgresDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		store := postgres.New(db, cfg.PageURL)
		if err := store.Ensure(context.Background()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("db ensure failed: %w", err)
		}
		return store, func() { db.Close() }, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return redisstore.New(client, cfg.PageURL), func() { client.Close() }, nil
	default:
		return filestore.New(cfg.CachePath), func() {}, nil
	}
}
