package flagcache_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/klse/internal/adapters/flagcache"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestStore_RecordLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := flagcache.NewStore(fs)

	got, err := store.Load("out")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Record("out", "hello.c", ""))
	require.NoError(t, store.Record("out", "main.c", "-O3 -Wall"))
	require.NoError(t, store.Record("out", "hello.c", "-O2"))

	got, err = store.Load("out")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"hello.c": "-O2", "main.c": "-O3 -Wall"}, got)

	data, err := afero.ReadFile(fs, filepath.Join("out", "klse_CFLAGS.json.cache"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello.c": "-O2", "main.c": "-O3 -Wall"}`, string(data))
}

func TestStore_Record_CreatesOutputDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := flagcache.NewStore(fs)

	dir := filepath.Join("build", "obj", "sub")
	require.NoError(t, store.Record(dir, "a.c", ""))

	exists, err := afero.DirExists(fs, dir)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_SeparateOutputDirs(t *testing.T) {
	store := flagcache.NewStore(afero.NewMemMapFs())

	require.NoError(t, store.Record("debug", "a.c", "-g"))
	require.NoError(t, store.Record("release", "a.c", "-O3"))

	debug, err := store.Load("debug")
	require.NoError(t, err)
	release, err := store.Load("release")
	require.NoError(t, err)

	assert.Equal(t, "-g", debug["a.c"])
	assert.Equal(t, "-O3", release["a.c"])
}

func TestStore_Corrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := domain.FlagCachePath("out")
	require.NoError(t, afero.WriteFile(fs, path, []byte(`{"hello.c": `), domain.FilePerm))

	store := flagcache.NewStore(fs)

	_, err := store.Load("out")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheFileCorrupt))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, path, zErr.Metadata()["path"])

	err = store.Record("out", "hello.c", "-O2")
	assert.ErrorIs(t, err, domain.ErrCacheFileCorrupt)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, `{"hello.c": `, string(data), "a corrupt cache is never overwritten")
}

func TestStore_WrongShape(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, domain.FlagCachePath("out"), []byte(`{"hello.c": 3}`), domain.FilePerm))

	_, err := flagcache.NewStore(fs).Load("out")
	assert.ErrorIs(t, err, domain.ErrCacheFileCorrupt)
}

func TestStore_NullDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, domain.FlagCachePath("out"), []byte(`null`), domain.FilePerm))

	got, err := flagcache.NewStore(fs).Load("out")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Record_ReadOnly(t *testing.T) {
	store := flagcache.NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := store.Record("out", "hello.c", "")
	assert.ErrorIs(t, err, domain.ErrCacheWriteFailed)
}

func TestStore_ConcurrentRecord(t *testing.T) {
	store := flagcache.NewStore(afero.NewMemMapFs())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Record("out", fmt.Sprintf("f%d.c", i), "-O2"))
		}()
	}
	wg.Wait()

	got, err := store.Load("out")
	require.NoError(t, err)
	assert.Len(t, got, 20)
}
