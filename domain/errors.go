package domain

import (
	"errors"
	"fmt"
)

// ErrSnapshotCorrupt is returned when persisted snapshot state exists
// but cannot be decoded. A missing snapshot is not an error.
var ErrSnapshotCorrupt = errors.New("snapshot state is corrupt")

// FetchError reports a failed page fetch: a transport failure or a
// non-2xx response. StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
