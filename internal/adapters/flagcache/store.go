// Package flagcache persists the compiler flags each source was built with.
package flagcache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"sync"

	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/klse/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.FlagStore with one JSON object per output directory.
type Store struct {
	fs afero.Fs
	mu sync.Mutex
}

var _ ports.FlagStore = (*Store)(nil)

// NewStore creates a Store on fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Load returns the flags recorded in outputDir. A missing cache file yields
// an empty mapping; an unparsable one is reported, never reset.
func (s *Store) Load(outputDir string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(outputDir)
}

// Record sets the flags of source and writes the cache back immediately.
func (s *Store) Record(outputDir, source, flags string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(outputDir)
	if err != nil {
		return err
	}
	entries[source] = flags

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(errors.Join(domain.ErrCacheWriteFailed, err), "cannot encode flag cache")
	}

	path := domain.FlagCachePath(outputDir)
	if err := s.fs.MkdirAll(outputDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheWriteFailed, err), "cannot create output directory"), "path", outputDir)
	}
	if err := afero.WriteFile(s.fs, path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheWriteFailed, err), "cannot write flag cache"), "path", path)
	}

	return nil
}

// load must be called with mu held.
func (s *Store) load(outputDir string) (map[string]string, error) {
	path := domain.FlagCachePath(outputDir)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheReadFailed, err), "cannot read flag cache"), "path", path)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheFileCorrupt, err), "cannot decode flag cache"), "path", path)
	}
	if entries == nil {
		entries = make(map[string]string)
	}

	return entries, nil
}
