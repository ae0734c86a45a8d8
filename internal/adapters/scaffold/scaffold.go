// Package scaffold creates the dist directory layout used by build-dir.
package scaffold

import (
	"errors"

	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/klse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Scaffolder = (*Scaffolder)(nil)

// Scaffolder creates directories on an afero filesystem.
type Scaffolder struct {
	fs afero.Fs
}

// New creates a Scaffolder backed by fs.
func New(fs afero.Fs) *Scaffolder {
	return &Scaffolder{fs: fs}
}

// CreateDist creates root/dist/{libs,bin,obj}. Calling it again on an existing
// layout is a no-op.
func (s *Scaffolder) CreateDist(root string) ([]string, error) {
	if root == "" {
		root = domain.DefaultTaskPath
	}

	dirs := domain.DistLayout(root)
	for _, dir := range dirs {
		if err := s.fs.MkdirAll(dir, domain.DirPerm); err != nil {
			return nil, zerr.With(
				zerr.Wrap(errors.Join(domain.ErrBuildDirCreateFailed, err), "could not create directory"),
				"path", dir,
			)
		}
	}
	return dirs, nil
}
