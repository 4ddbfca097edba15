package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pagewatch/domain"
)

// Store keeps one snapshot row per watched page URL.
type Store struct {
	db      *sql.DB
	pageURL string
}

func New(db *sql.DB, pageURL string) *Store { return &Store{db: db, pageURL: pageURL} }

func (s *Store) Ensure(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS snapshots (
    page_url TEXT PRIMARY KEY,
    hashes JSONB NOT NULL DEFAULT '[]',
    last_update TIMESTAMPTZ,
    etag TEXT NOT NULL DEFAULT '',
    last_modified TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`)
	return err
}

func (s *Store) Load(ctx context.Context) (domain.Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT hashes, last_update, etag, last_modified FROM snapshots WHERE page_url = $1`,
		s.pageURL,
	)
	var (
		raw        []byte
		lastUpdate sql.NullTime
		snap       domain.Snapshot
	)
	err := row.Scan(&raw, &lastUpdate, &snap.ETag, &snap.LastModified)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Snapshot{}, nil
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, &snap.Hashes); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	if lastUpdate.Valid {
		t := lastUpdate.Time
		snap.LastUpdate = &t
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	if snap.Hashes == nil {
		snap.Hashes = []string{}
	}
	raw, err := json.Marshal(snap.Hashes)
	if err != nil {
		return fmt.Errorf("encode hashes: %w", err)
	}
	var lastUpdate sql.NullTime
	if snap.LastUpdate != nil {
		lastUpdate = sql.NullTime{Time: *snap.LastUpdate, Valid: true}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (page_url, hashes, last_update, etag, last_modified) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (page_url) DO UPDATE SET hashes = EXCLUDED.hashes, last_update = EXCLUDED.last_update, etag = EXCLUDED.etag, last_modified = EXCLUDED.last_modified, updated_at = now()`,
		s.pageURL, raw, lastUpdate, snap.ETag, snap.LastModified,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE page_url = $1`, s.pageURL)
	return err
}

// Utility: optional timeout wrapper
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}
