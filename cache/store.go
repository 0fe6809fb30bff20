package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/ilp"
	"github.com/katalvlaran/packcolor/packing"
)

// ErrBadKey is returned for keys that are not a single path element.
var ErrBadKey = errors.New("cache: invalid key")

// Entry is one cached result.
type Entry struct {
	Graph     string           `json:"graph"`
	Backend   string           `json:"backend"`
	Status    string           `json:"status"`
	Chromatic int              `json:"chromatic"`
	Coloring  packing.Coloring `json:"coloring"`
	K         int              `json:"k"`
	Stats     ilp.Stats        `json:"stats"`
	Elapsed   time.Duration    `json:"elapsed_ns"`
	CreatedAt time.Time        `json:"created_at"`
}

// Store is a directory of "<key>.json" files.
type Store struct {
	Dir string
}

// Open returns a Store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}

	return &Store{Dir: dir}, nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrBadKey, key)
	}

	return filepath.Join(s.Dir, key+".json"), nil
}

// Get loads the entry for key. A missing entry is (nil, false, nil).
func (s *Store) Get(key string) (*Entry, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	raw, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: %w", err)
	}
	var e Entry
	if err = json.Unmarshal(raw, &e); err != nil {
		return nil, false, fmt.Errorf("cache: %s: %w", p, err)
	}

	return &e, true, nil
}

// Put writes e under key, replacing any previous entry atomically.
func (s *Store) Put(key string, e *Entry) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	raw, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	tmp, err := os.CreateTemp(s.Dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cache: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache: %w", err)
	}
	if err = os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache: %w", err)
	}

	return nil
}

// Lookup returns the entry for key only if its coloring is still a valid
// packing coloring of g. Entries that fail the check are reported as
// misses together with the verification error.
func (s *Store) Lookup(g *core.Graph, key string) (*Entry, bool, error) {
	e, ok, err := s.Get(key)
	if err != nil || !ok {
		return nil, false, err
	}
	if err = packing.Verify(g, e.Coloring); err != nil {
		return nil, false, fmt.Errorf("cache: stale entry %s: %w", key, err)
	}

	return e, true, nil
}
