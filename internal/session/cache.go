// Package session persists the latest arbitration result per report bundle,
// so rapid re-checks can tell whether anything actually changed before
// re-notifying collaborators.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"mentor/internal/feedback"
	"mentor/internal/report"
	"mentor/internal/suppress"
)

// Bump when the Snapshot format changes; old entries are then misses.
const snapshotSchemaVersion uint16 = 1

// Digest keys a snapshot: sha256 over the canonical bundle encoding plus the
// suppression configuration, since suppression changes change the result.
type Digest [sha256.Size]byte

// BundleDigest computes the snapshot key for one arbitration call.
func BundleDigest(b *report.Bundle, cfg *suppress.Config) (Digest, error) {
	canonical, err := b.Canonical()
	if err != nil {
		return Digest{}, err
	}
	h := sha256.New()
	h.Write(canonical)
	if cfg != nil {
		// encoding/json sorts map keys, so equal configs hash equal
		cfgBytes, err := json.Marshal(cfg)
		if err != nil {
			return Digest{}, err
		}
		h.Write(cfgBytes)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}

// Snapshot is the cached arbitration result.
type Snapshot struct {
	Schema   uint16
	Category string
	Label    string
	Message  string
	Line     int
	Outcome  string
	SavedAt  int64 // unix seconds
}

// NewSnapshot captures a directive.
func NewSnapshot(d feedback.Directive, now time.Time) *Snapshot {
	return &Snapshot{
		Schema:   snapshotSchemaVersion,
		Category: d.Category.String(),
		Label:    d.Label,
		Message:  d.Message,
		Line:     d.Line,
		Outcome:  d.Outcome.String(),
		SavedAt:  now.Unix(),
	}
}

// Same reports whether the snapshot captures the same directive.
func (s *Snapshot) Same(d feedback.Directive) bool {
	if s == nil {
		return false
	}
	return s.Category == d.Category.String() &&
		s.Label == d.Label &&
		s.Message == d.Message &&
		s.Line == d.Line &&
		s.Outcome == d.Outcome.String()
}

// Cache stores snapshots on disk keyed by digest. Thread-safe.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes the cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	// подкаталог "runs" — чтобы каталог кэша можно было чистить выборочно
	return filepath.Join(c.dir, "runs", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a snapshot. The write is atomic (temp + rename).
func (c *Cache) Put(key Digest, snap *Snapshot) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(snap); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a snapshot. A missing entry or a schema mismatch is a miss, not
// an error.
func (c *Cache) Get(key Digest) (*Snapshot, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var snap Snapshot
	if err := msgpack.NewDecoder(f).Decode(&snap); err != nil {
		return nil, false, err
	}
	if snap.Schema != snapshotSchemaVersion {
		return nil, false, nil
	}
	return &snap, true, nil
}

// DropAll invalidates the whole cache.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "runs"))
}
