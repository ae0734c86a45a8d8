// Package config loads the klse.json task file and the klse.yaml settings.
package config

import (
	"encoding/json"
	"errors"

	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/klse/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskLoader implements ports.TaskLoader on top of an afero filesystem.
type TaskLoader struct {
	fs afero.Fs
}

var _ ports.TaskLoader = (*TaskLoader)(nil)

// NewTaskLoader creates a TaskLoader reading from fs.
func NewTaskLoader(fs afero.Fs) *TaskLoader {
	return &TaskLoader{fs: fs}
}

// Load reads and decodes klse.json from root.
func (l *TaskLoader) Load(root string) (*domain.TaskFile, error) {
	path := domain.TaskFilePath(root)

	info, err := l.fs.Stat(path)
	if err != nil || info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrTaskFileNotFound, "task file is missing"), "path", path)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrTaskFileNotFound, err), "failed to read task file"), "path", path)
	}

	var doc TaskDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(path, err)
	}
	if doc.Task == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoTaskSection, "task file has no tasks"), "path", path)
	}

	file := &domain.TaskFile{
		Path:  path,
		Tasks: make(map[string]*domain.TaskNode, len(doc.Task)),
	}
	for name, raw := range doc.Task {
		node, err := decodeNode(name, raw)
		if err != nil {
			return nil, malformed(path, err)
		}
		file.Tasks[name] = node
	}

	return file, nil
}

func malformed(path string, cause error) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrTaskFileMalformed, cause), "failed to parse task file"), "path", path)
}
