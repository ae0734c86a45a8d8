package compile_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/klse/internal/core/domain"
	"go.uber.org/mock/gomock"
)

// sourceTree lays out:
//
//	src/a.c
//	src/b.c
//	src/lib/util.c
//	src/lib/deep/x.c
func sourceTree(t *testing.T, f *fixture) {
	t.Helper()
	for _, p := range []string{
		filepath.Join("src", "a.c"),
		filepath.Join("src", "b.c"),
		filepath.Join("src", "lib", "util.c"),
		filepath.Join("src", "lib", "deep", "x.c"),
	} {
		f.writeFile(t, p, epoch)
	}
}

func sources(results []domain.CompileResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Source)
	}
	return out
}

func TestCompileFolder_SkipsSubdirectories(t *testing.T) {
	f := newFixture(t)
	sourceTree(t, f)
	f.logger.EXPECT().Success(gomock.Any()).Times(2)

	results, err := f.compiler().CompileFolder(context.Background(), domain.FolderRequest{
		Language:  domain.LanguageC,
		SourceDir: "src",
		OutputDir: "out",
		Flags:     []string{"-O2"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join("src", "a.c"),
		filepath.Join("src", "b.c"),
	}, sources(results))

	_, err = f.fs.Stat(filepath.Join("out", "lib"))
	assert.Error(t, err, "no output directory for skipped subdirectories")
}

func TestCompileFolder_Recursive(t *testing.T) {
	f := newFixture(t)
	sourceTree(t, f)
	f.logger.EXPECT().Success(gomock.Any()).Times(4)

	results, err := f.compiler().CompileFolder(context.Background(), domain.FolderRequest{
		Language:  domain.LanguageC,
		SourceDir: "src",
		OutputDir: "out",
		Recursive: true,
	})
	require.NoError(t, err)

	objects := make([]string, 0, len(results))
	for _, r := range results {
		assert.True(t, r.Compiled)
		objects = append(objects, r.Object)
	}
	assert.ElementsMatch(t, []string{
		filepath.Join("out", "a.o"),
		filepath.Join("out", "b.o"),
		filepath.Join("out", "lib", "util.o"),
		filepath.Join("out", "lib", "deep", "x.o"),
	}, objects)

	// Each output directory keeps its own flag cache.
	assert.Contains(t, f.recorded(t, filepath.Join("out", "lib")), filepath.Join("src", "lib", "util.c"))
	assert.NotContains(t, f.recorded(t, "out"), filepath.Join("src", "lib", "util.c"))
}

func TestCompileFolder_SecondRunIsUpToDate(t *testing.T) {
	f := newFixture(t)
	sourceTree(t, f)
	f.logger.EXPECT().Success(gomock.Any()).Times(8)

	req := domain.FolderRequest{
		Language:  domain.LanguageC,
		SourceDir: "src",
		OutputDir: "out",
		Flags:     []string{"-g"},
		Recursive: true,
	}
	_, err := f.compiler().CompileFolder(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, f.runner.calls, 4)

	results, err := f.compiler().CompileFolder(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, f.runner.calls, 4, "nothing is recompiled")
	for _, r := range results {
		assert.Equal(t, domain.ReasonUpToDate, r.Reason)
	}
}

func TestCompileFolder_StopsAtFirstFailure(t *testing.T) {
	f := newFixture(t)
	sourceTree(t, f)
	f.runner.exitCodes = map[string]int{filepath.Join("src", "a.c"): 1}
	f.logger.EXPECT().Success(gomock.Any())

	results, err := f.compiler().CompileFolder(context.Background(), domain.FolderRequest{
		Language:  domain.LanguageC,
		SourceDir: "src",
		OutputDir: "out",
		Recursive: true,
	})
	require.ErrorIs(t, err, domain.ErrCompilationFailed)
	assert.Empty(t, results)
	assert.Len(t, f.runner.calls, 1, "no compiler runs after the failure")
}

func TestCompileFolder_ReturnsResultsBeforeFailure(t *testing.T) {
	f := newFixture(t)
	sourceTree(t, f)
	f.runner.exitCodes = map[string]int{filepath.Join("src", "b.c"): 1}
	f.logger.EXPECT().Success(gomock.Any()).Times(2)

	results, err := f.compiler().CompileFolder(context.Background(), domain.FolderRequest{
		Language:  domain.LanguageC,
		SourceDir: "src",
		OutputDir: "out",
	})
	require.ErrorIs(t, err, domain.ErrCompilationFailed)
	assert.Equal(t, []string{filepath.Join("src", "a.c")}, sources(results))
}

func TestCompileFolder_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.compiler().CompileFolder(context.Background(), domain.FolderRequest{
			Language:  domain.LanguageC,
			SourceDir: "nope",
		})
		require.ErrorIs(t, err, domain.ErrSourceDirNotFound)
	})

	t.Run("path is a file", func(t *testing.T) {
		f := newFixture(t)
		f.writeFile(t, "main.c", epoch)

		_, err := f.compiler().CompileFolder(context.Background(), domain.FolderRequest{
			Language:  domain.LanguageC,
			SourceDir: "main.c",
		})
		require.ErrorIs(t, err, domain.ErrSourceDirNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		f := newFixture(t)
		sourceTree(t, f)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.compiler().CompileFolder(ctx, domain.FolderRequest{
			Language:  domain.LanguageC,
			SourceDir: "src",
			OutputDir: "out",
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, f.runner.calls)
	})
}

func TestCompileFolder_EmptyDirectory(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.fs.MkdirAll("empty", domain.DirPerm))

	results, err := f.compiler().CompileFolder(context.Background(), domain.FolderRequest{
		Language:  domain.LanguageC,
		SourceDir: "empty",
		OutputDir: "out",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCompileFolder_FollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("creating symlinks needs extra privileges")
	}

	root := t.TempDir()
	f := newFixtureOn(t, afero.NewBasePathFs(afero.NewOsFs(), root))
	f.writeFile(t, filepath.Join("src", "plain.c"), epoch)
	f.writeFile(t, "real.c", epoch)
	f.writeFile(t, filepath.Join("shared", "util.c"), epoch)
	require.NoError(t, os.Symlink(filepath.Join("..", "real.c"), filepath.Join(root, "src", "link.c")))
	require.NoError(t, os.Symlink(filepath.Join("..", "shared"), filepath.Join(root, "src", "lib")))
	require.NoError(t, os.Symlink(filepath.Join("..", "gone.c"), filepath.Join(root, "src", "dangling.c")))
	f.logger.EXPECT().Success(gomock.Any()).Times(3)

	results, err := f.compiler().CompileFolder(context.Background(), domain.FolderRequest{
		Language:  domain.LanguageC,
		SourceDir: "src",
		OutputDir: "out",
		Recursive: true,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join("src", "link.c"),
		filepath.Join("src", "plain.c"),
		filepath.Join("src", "lib", "util.c"),
	}, sources(results))

	ok, err := afero.Exists(f.fs, filepath.Join("out", "lib", "util.o"))
	require.NoError(t, err)
	assert.True(t, ok, "linked directories are mirrored like real ones")
}
