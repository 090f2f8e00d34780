package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/coreyphillips/bdk-rn/internal/fileutil"
)

// DefaultCacheTTL is how long a fetched release is reused.
const DefaultCacheTTL = 24 * time.Hour

// ErrCorruptCache indicates the cache file is malformed JSON.
var ErrCorruptCache = errors.New("release cache is corrupted")

// cachedRelease is the on-disk cache record.
type cachedRelease struct {
	Release   Release   `json:"release"`
	CheckedAt time.Time `json:"checked_at"`
}

// ReleaseCache stores the last fetched release in a JSON file.
type ReleaseCache struct {
	path string
	ttl  time.Duration
	now  func() time.Time
}

// NewReleaseCache creates a cache at path whose entries expire after ttl.
func NewReleaseCache(path string, ttl time.Duration) *ReleaseCache {
	return &ReleaseCache{path: path, ttl: ttl, now: time.Now}
}

// Get returns the cached release while it is fresh. A corrupt file is
// moved aside and reported with ErrCorruptCache.
func (c *ReleaseCache) Get() (*Release, bool, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading release cache: %w", err)
	}

	var entry cachedRelease
	if err := json.Unmarshal(data, &entry); err != nil {
		corrupt := fmt.Sprintf("%s.corrupt.%d", c.path, c.now().UTC().UnixNano())
		if renameErr := os.Rename(c.path, corrupt); renameErr != nil {
			return nil, false, fmt.Errorf("%w: %w (also failed to move file: %w)", ErrCorruptCache, err, renameErr)
		}
		return nil, false, fmt.Errorf("%w: %w (moved to %s)", ErrCorruptCache, err, corrupt)
	}

	if c.now().Sub(entry.CheckedAt) > c.ttl {
		return nil, false, nil
	}
	return &entry.Release, true, nil
}

// Put records release as fetched now.
func (c *ReleaseCache) Put(release *Release) error {
	data, err := json.MarshalIndent(cachedRelease{Release: *release, CheckedAt: c.now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling release cache: %w", err)
	}
	return fileutil.WriteFile(c.path, data, 0o640, 0o750)
}
