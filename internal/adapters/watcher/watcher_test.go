package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/klse/internal/adapters/watcher"
	"go.trai.ch/klse/internal/core/ports"
	"go.trai.ch/klse/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const eventTimeout = 5 * time.Second

// waitFor returns the first event whose path is want.
func waitFor(t *testing.T, events <-chan ports.WatchEvent, want string) ports.WatchEvent {
	t.Helper()

	deadline := time.After(eventTimeout)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed before %s was reported", want)
			if ev.Path == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for an event on %s", want)
		}
	}
}

func startWatcher(t *testing.T, root string, recursive bool) <-chan ports.WatchEvent {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})
	require.NoError(t, w.Start(ctx, root, recursive))

	out := make(chan ports.WatchEvent, 64)
	go func() {
		defer close(out)
		for ev := range w.Events() {
			out <- ev
		}
	}()
	return out
}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	require.NoError(t, os.WriteFile(src, []byte("int main(void){return 0;}\n"), 0o600))

	events := startWatcher(t, root, false)

	require.NoError(t, os.WriteFile(src, []byte("int main(void){return 1;}\n"), 0o600))

	ev := waitFor(t, events, src)
	assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, ev.Operation)
}

func TestWatcher_Recursive(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "lib")
	require.NoError(t, os.Mkdir(sub, 0o750))

	events := startWatcher(t, root, true)

	src := filepath.Join(sub, "util.c")
	require.NoError(t, os.WriteFile(src, []byte("void util(void){}\n"), 0o600))

	ev := waitFor(t, events, src)
	assert.Equal(t, ports.OpCreate, ev.Operation)
}

func TestWatcher_StartMissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"), false)
	assert.Error(t, err)
}
