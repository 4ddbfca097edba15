package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pagewatch/domain"
)

const keyPrefix = "pagewatch:snapshot:"

// Store keeps the snapshot under one Redis key per watched page URL.
// The value is the same JSON document the file store writes.
type Store struct {
	client  *redis.Client
	pageURL string
}

func New(client *redis.Client, pageURL string) *Store {
	return &Store{client: client, pageURL: pageURL}
}

func (s *Store) key() string { return keyPrefix + s.pageURL }

func (s *Store) Load(ctx context.Context) (domain.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Snapshot{}, nil
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	if snap.Hashes == nil {
		snap.Hashes = []string{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key(), data, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	return s.client.Del(ctx, s.key()).Err()
}
