// Package compile implements incremental compilation of C and C++ sources.
package compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/klse/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// Compiler decides whether compilation units are stale and rebuilds them.
type Compiler struct {
	resolver ports.CompilerResolver
	flags    ports.FlagStore
	runner   ports.ProcessRunner
	fs       afero.Fs
	logger   ports.Logger
	tracer   ports.Tracer

	policy    domain.CachePolicy
	preferred map[domain.Language][]string
	stdout    io.Writer
	stderr    io.Writer
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithCachePolicy sets when changed flags are recorded.
func WithCachePolicy(p domain.CachePolicy) Option {
	return func(c *Compiler) { c.policy = p }
}

// WithPreferredCompilers sets compiler names probed before the built-in candidates.
func WithPreferredCompilers(preferred map[domain.Language][]string) Option {
	return func(c *Compiler) { c.preferred = preferred }
}

// WithOutput sets where compiler output is streamed.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Compiler) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// New creates a Compiler.
func New(
	resolver ports.CompilerResolver,
	flags ports.FlagStore,
	runner ports.ProcessRunner,
	fs afero.Fs,
	logger ports.Logger,
	tracer ports.Tracer,
	opts ...Option,
) *Compiler {
	c := &Compiler{
		resolver: resolver,
		flags:    flags,
		runner:   runner,
		fs:       fs,
		logger:   logger,
		tracer:   tracer,
		policy:   domain.CacheWriteBefore,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CompileIfStale compiles req.Source into req.OutputDir unless the object
// there is newer than the source and was built with the same flags.
func (c *Compiler) CompileIfStale(ctx context.Context, req domain.CompileRequest) (result domain.CompileResult, err error) {
	ctx, span := c.tracer.Start(ctx, "compile "+req.Source)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("klse.source", req.Source)
	span.SetAttribute("klse.language", req.Language.String())

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = domain.DefaultOutputDir
	}
	result = domain.CompileResult{
		Source: req.Source,
		Object: domain.ObjectPath(outputDir, req.Source),
	}

	srcInfo, err := c.fs.Stat(req.Source)
	if err != nil || !srcInfo.Mode().IsRegular() {
		return result, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "cannot compile"), "source", req.Source)
	}

	compiler, err := c.resolver.Resolve(req.Language, c.preferred[req.Language])
	if err != nil {
		return result, err
	}

	if err = c.ensureOutputDir(outputDir); err != nil {
		return result, err
	}

	recorded, err := c.flags.Load(outputDir)
	if err != nil {
		return result, err
	}

	joined := domain.JoinFlags(req.Flags)
	previous, seen := recorded[req.Source]
	flagsChanged := !seen || previous != joined

	if flagsChanged && seen {
		c.logger.Warn(fmt.Sprintf(
			"File %s is already compiled with different CFLAGS (%q != %q), recompiling...",
			req.Source, previous, joined,
		))
	}
	if flagsChanged && c.policy == domain.CacheWriteBefore {
		if err = c.flags.Record(outputDir, req.Source, joined); err != nil {
			return result, err
		}
	}

	result.Reason = c.staleness(srcInfo, result.Object, flagsChanged)
	span.SetAttribute("klse.reason", result.Reason.String())
	if result.Reason == domain.ReasonUpToDate {
		c.logger.Success(result.Object + " is up to date")
		return result, nil
	}

	argv := make([]string, 0, len(req.Flags)+5)
	argv = append(argv, compiler)
	argv = append(argv, req.Flags...)
	argv = append(argv, "-c", req.Source, "-o", result.Object)

	c.logger.Success("Running: " + commandLine(argv))

	var diagnostics bytes.Buffer
	exitCode, err := c.runner.Run(ctx, argv, c.stdout, io.MultiWriter(c.stderr, &diagnostics))
	if err != nil {
		err = zerr.Wrap(errors.Join(domain.ErrCompilerStartFailed, err), "cannot run compiler")
		return result, zerr.With(err, "compiler", compiler)
	}
	if exitCode != 0 {
		err = zerr.With(zerr.Wrap(domain.ErrCompilationFailed, "compiler exited with an error"), "source", req.Source)
		err = zerr.With(err, "exit_code", exitCode)
		if text := strings.TrimSpace(diagnostics.String()); text != "" {
			err = zerr.With(err, "stderr", text)
		}
		return result, err
	}

	if flagsChanged && c.policy == domain.CacheWriteAfter {
		if err = c.flags.Record(outputDir, req.Source, joined); err != nil {
			return result, err
		}
	}

	result.Compiled = true
	return result, nil
}

// staleness applies the rebuild rules in order: missing object, source newer
// than object, changed flags.
func (c *Compiler) staleness(src os.FileInfo, object string, flagsChanged bool) domain.StaleReason {
	objInfo, err := c.fs.Stat(object)
	switch {
	case err != nil || objInfo.IsDir():
		return domain.ReasonObjectMissing
	case src.ModTime().After(objInfo.ModTime()):
		return domain.ReasonSourceNewer
	case flagsChanged:
		return domain.ReasonFlagsChanged
	default:
		return domain.ReasonUpToDate
	}
}

func (c *Compiler) ensureOutputDir(dir string) error {
	info, err := c.fs.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return zerr.With(zerr.Wrap(domain.ErrOutputPathNotADirectory, "cannot use output directory"), "path", dir)
	case err == nil:
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrOutputDirCreateFailed, err), "cannot stat output directory"), "path", dir)
	}

	if err := c.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrOutputDirCreateFailed, err), "cannot create output directory"), "path", dir)
	}
	return nil
}

// commandLine renders argv as a shell-quoted line for logs.
func commandLine(argv []string) string {
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			quoted = fmt.Sprintf("%q", arg)
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, " ")
}
