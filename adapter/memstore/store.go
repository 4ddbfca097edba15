package memstore

import (
	"context"
	"sync"

	"pagewatch/domain"
)

// Store keeps the snapshot in memory. Used by tests and embedders that
// do not want on-disk state.
type Store struct {
	mu   sync.Mutex
	snap domain.Snapshot
}

func New() *Store { return &Store{} }

func (s *Store) Load(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySnapshot(s.snap), nil
}

func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = copySnapshot(snap)
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = domain.Snapshot{}
	return nil
}

func copySnapshot(in domain.Snapshot) domain.Snapshot {
	out := in
	if in.Hashes != nil {
		out.Hashes = append([]string(nil), in.Hashes...)
	}
	if in.LastUpdate != nil {
		t := *in.LastUpdate
		out.LastUpdate = &t
	}
	return out
}
