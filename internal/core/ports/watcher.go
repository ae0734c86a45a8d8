package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of change reported for a path below a watched source folder.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent is one change seen by compile-folder --watch.
type WatchEvent struct {
	// Path is the changed file or directory, joined onto the watched root.
	Path      string
	Operation WatchOp
}

// Watcher reports changes below a source folder so it can be compiled again.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching root. Subdirectories are watched too when recursive is set.
	Start(ctx context.Context, root string, recursive bool) error
	// Stop releases the underlying notification handles.
	Stop() error
	// Events yields changes until Stop is called or the Start context is done.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates a Watcher on demand, so that commands which never
// watch do not hold file system notification resources.
type WatcherFactory func() (Watcher, error)
