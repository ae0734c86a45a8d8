// Package app implements the application layer for klse.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/adapters/telemetry"
	"go.trai.ch/klse/internal/adapters/watcher"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/klse/internal/core/ports"
	"go.trai.ch/klse/internal/engine/compile"
	"go.trai.ch/klse/internal/engine/tasktree"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	tasks    ports.TaskLoader
	settings ports.SettingsLoader
	shell    ports.ShellRunner
	process  ports.ProcessRunner
	resolver ports.CompilerResolver
	flags    ports.FlagStore
	scaffold ports.Scaffolder
	watchers ports.WatcherFactory
	logger   ports.Logger
	fs       afero.Fs

	platform domain.Platform
	stdout   io.Writer
	stderr   io.Writer
	debounce time.Duration
}

// New creates a new App instance.
func New(
	tasks ports.TaskLoader,
	settings ports.SettingsLoader,
	shell ports.ShellRunner,
	process ports.ProcessRunner,
	resolver ports.CompilerResolver,
	flags ports.FlagStore,
	scaffold ports.Scaffolder,
	watchers ports.WatcherFactory,
	log ports.Logger,
	fs afero.Fs,
) *App {
	return &App{
		tasks:    tasks,
		settings: settings,
		shell:    shell,
		process:  process,
		resolver: resolver,
		flags:    flags,
		scaffold: scaffold,
		watchers: watchers,
		logger:   log,
		fs:       fs,
		platform: domain.HostPlatform(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		debounce: watcher.DefaultDebounceWindow,
	}
}

// WithOutput sets the streams task and compiler output is written to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithPlatform overrides the platform task commands are selected for.
func (a *App) WithPlatform(p domain.Platform) *App {
	a.platform = p
	return a
}

// WithDebounceWindow sets how long watch mode waits for a burst of changes to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounce = d
	return a
}

// GlobalOptions holds the options shared by every command.
type GlobalOptions struct {
	// TaskPath is the directory holding klse.json and klse.yaml.
	TaskPath string
	// JSON switches log output to JSON lines.
	JSON bool
	// Timings reports how long each step took.
	Timings bool
	// Shell overrides the shell mode from klse.yaml when set.
	Shell string
}

func (o GlobalOptions) taskPath() string {
	if o.TaskPath == "" {
		return domain.DefaultTaskPath
	}
	return o.TaskPath
}

// CompileFolderOptions configuration for the CompileFolder method.
type CompileFolderOptions struct {
	GlobalOptions
	// Watch keeps recompiling the folder whenever a source changes.
	Watch bool
}

// session carries what a single command invocation needs once the global
// options are applied.
type session struct {
	settings domain.Settings
	tracer   ports.Tracer
	shutdown func(context.Context) error
}

func (s *session) close(ctx context.Context) {
	_ = s.shutdown(context.WithoutCancel(ctx))
}

// jsonSwitcher is implemented by loggers that can emit JSON lines.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

func (a *App) begin(opts GlobalOptions) (*session, error) {
	if js, ok := a.logger.(jsonSwitcher); ok && opts.JSON {
		js.SetJSON(true)
	}

	settings, err := a.settings.Load(opts.taskPath())
	if err != nil {
		return nil, err
	}
	if opts.Shell != "" {
		mode, err := domain.ParseShellMode(opts.Shell)
		if err != nil {
			return nil, err
		}
		settings.Shell = mode
	}

	tracer, shutdown := telemetry.Setup(a.logger, opts.Timings)
	return &session{settings: settings, tracer: tracer, shutdown: shutdown}, nil
}

func (a *App) newCompiler(s *session) *compile.Compiler {
	return compile.New(
		a.resolver,
		a.flags,
		a.process,
		a.fs,
		a.logger,
		s.tracer,
		compile.WithCachePolicy(s.settings.CachePolicy),
		compile.WithPreferredCompilers(s.settings.Compilers),
		compile.WithOutput(a.stdout, a.stderr),
	)
}

// Task resolves sequence in the task file and runs the selected command.
func (a *App) Task(ctx context.Context, sequence []string, opts GlobalOptions) (err error) {
	if len(sequence) == 0 {
		return zerr.Wrap(domain.ErrNoTaskProvided, "nothing to run")
	}

	s, err := a.begin(opts)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	file, err := a.tasks.Load(opts.taskPath())
	if err != nil {
		return err
	}

	res, err := tasktree.Resolve(file, sequence, a.platform)
	if err != nil {
		return err
	}

	ctx, span := s.tracer.Start(ctx, "task "+strings.Join(res.Path, " "))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("klse.platform", a.platform.Key())
	span.SetAttribute("klse.shell", s.settings.Shell.String())
	if len(res.Unconsumed) > 0 {
		span.SetAttribute("klse.unconsumed", strings.Join(res.Unconsumed, " "))
	}

	return a.shell.RunShell(ctx, s.settings.Shell, res.Command, a.stdout, a.stderr)
}

// SmartCompile compiles a single source file if it is stale.
func (a *App) SmartCompile(ctx context.Context, req domain.CompileRequest, opts GlobalOptions) error {
	s, err := a.begin(opts)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	_, err = a.newCompiler(s).CompileIfStale(ctx, req)
	return err
}

// CompileFolder compiles every stale source of a folder. In watch mode the
// folder is compiled again after each burst of changes until ctx is done;
// failures are then logged instead of returned.
func (a *App) CompileFolder(ctx context.Context, req domain.FolderRequest, opts CompileFolderOptions) error {
	s, err := a.begin(opts.GlobalOptions)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	c := a.newCompiler(s)
	_, err = c.CompileFolder(ctx, req)
	if !opts.Watch {
		return err
	}
	if err != nil {
		a.logger.Error(err)
	}

	return a.watch(ctx, c, req)
}

func (a *App) watch(ctx context.Context, c *compile.Compiler, req domain.FolderRequest) error {
	w, err := a.watchers()
	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrWatchFailed, err), "cannot create watcher"), "path", req.SourceDir)
	}
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, req.SourceDir, req.Recursive); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrWatchFailed, err), "cannot watch"), "path", req.SourceDir)
	}
	a.logger.Info(fmt.Sprintf("Watching %s for changes, press Ctrl+C to stop", req.SourceDir))

	rebuild := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case rebuild <- paths:
		default:
			// A rebuild is already queued and will pick these changes up.
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range w.Events() {
			if isBuildOutput(event.Path) {
				continue
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-rebuild:
				a.logger.Info(fmt.Sprintf("Change detected in %s, recompiling", strings.Join(paths, ", ")))
				if _, err := c.CompileFolder(ctx, req); err != nil && ctx.Err() == nil {
					a.logger.Error(err)
				}
			}
		}
	})

	return g.Wait()
}

// isBuildOutput reports whether path is an object or flag cache written by
// the compile itself, so that a folder holding its own output does not
// trigger endless rebuilds.
func isBuildOutput(path string) bool {
	base := filepath.Base(path)
	return base == domain.FlagCacheFileName || filepath.Ext(base) == domain.ObjectExt
}

// BuildDir creates the dist directory layout below dir.
func (a *App) BuildDir(_ context.Context, dir string, opts GlobalOptions) error {
	if js, ok := a.logger.(jsonSwitcher); ok && opts.JSON {
		js.SetJSON(true)
	}

	dirs, err := a.scaffold.CreateDist(dir)
	if err != nil {
		return err
	}
	a.logger.Success("Created " + dirs[0] + " with " + strings.Join(relativeTo(dirs[0], dirs[1:]), ", "))
	return nil
}

func relativeTo(root string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rel, err := filepath.Rel(root, p); err == nil {
			p = rel
		}
		out = append(out, p)
	}
	return out
}
