package compile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/zerr"
)

// CompileFolder runs CompileIfStale for every regular file directly inside
// req.SourceDir, in directory order. Subdirectories are compiled into the
// matching subdirectory of the output directory when req.Recursive is set
// and skipped otherwise. The first failure stops the walk; the results
// gathered until then are returned with it.
func (c *Compiler) CompileFolder(ctx context.Context, req domain.FolderRequest) (results []domain.CompileResult, err error) {
	ctx, span := c.tracer.Start(ctx, "compile-folder "+req.SourceDir)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.SetAttribute("klse.units", len(results))
		span.End()
	}()

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = domain.DefaultOutputDir
	}

	err = c.walk(ctx, req, req.SourceDir, outputDir, &results)
	return results, err
}

func (c *Compiler) walk(ctx context.Context, req domain.FolderRequest, dir, outputDir string, results *[]domain.CompileResult) error {
	info, err := c.fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrSourceDirNotFound, "cannot compile folder"), "path", dir)
	}

	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSourceDirNotFound, "cannot list folder"), "path", dir)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, entry.Name())
		mode := entry.Mode()
		if mode&os.ModeSymlink != 0 {
			// Links are classified by their target; dangling ones are skipped.
			target, err := c.fs.Stat(path)
			if err != nil {
				continue
			}
			mode = target.Mode()
		}

		switch {
		case mode.IsRegular():
			res, err := c.CompileIfStale(ctx, domain.CompileRequest{
				Language:  req.Language,
				Source:    path,
				OutputDir: outputDir,
				Flags:     req.Flags,
			})
			if err != nil {
				return err
			}
			*results = append(*results, res)
		case mode.IsDir() && req.Recursive:
			if err := c.walk(ctx, req, path, filepath.Join(outputDir, entry.Name()), results); err != nil {
				return err
			}
		}
	}
	return nil
}
