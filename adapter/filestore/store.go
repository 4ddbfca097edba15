package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"pagewatch/domain"
	"pagewatch/internal/helper"
)

// Store persists the snapshot as a JSON file:
// {"hashes": [...], "last_update": "<RFC3339>"|null}. This is the
// default store and the on-disk format is part of the public contract.
type Store struct{ path string }

func New(path string) *Store { return &Store{path: path} }

// Load returns an empty snapshot with no error when the file does not
// exist yet; that is the first-run condition, not a failure.
func (s *Store) Load(ctx context.Context) (domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Snapshot{}, nil
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %s: %v", domain.ErrSnapshotCorrupt, s.path, err)
	}
	return snap, nil
}

// Save replaces the file contents with exactly the given snapshot via a
// temp-file write and rename.
func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	if snap.Hashes == nil {
		snap.Hashes = []string{}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := helper.WriteFileAtomic(s.path, append(data, '\n')); err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.path, err)
	}
	return nil
}

// Reset deletes the persisted snapshot so the next run behaves as a
// first run. A missing file is fine.
func (s *Store) Reset(ctx context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove snapshot %s: %w", s.path, err)
	}
	return nil
}
