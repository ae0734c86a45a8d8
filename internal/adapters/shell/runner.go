// Package shell runs task commands and compiler processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/klse/internal/adapters/detector"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/klse/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner implements ports.ShellRunner and ports.ProcessRunner.
type Runner struct {
	env    []string
	goos   string
	detect func() detector.OutputMode
	stdin  io.Reader
}

var (
	_ ports.ShellRunner   = (*Runner)(nil)
	_ ports.ProcessRunner = (*Runner)(nil)
)

// NewRunner creates a Runner that passes env to every child and attaches
// system shell commands to a PTY when detect reports a terminal.
func NewRunner(env []string, detect func() detector.OutputMode) *Runner {
	if detect == nil {
		detect = func() detector.OutputMode { return detector.ModePipe }
	}
	return &Runner{
		env:    env,
		goos:   runtime.GOOS,
		detect: detect,
		stdin:  os.Stdin,
	}
}

// RunShell interprets command with the host shell or the builtin interpreter.
func (r *Runner) RunShell(ctx context.Context, mode domain.ShellMode, command string, stdout, stderr io.Writer) error {
	var (
		exitCode int
		err      error
	)

	switch mode {
	case domain.ShellBuiltin:
		exitCode, err = r.runBuiltin(ctx, command, stdout, stderr)
	default:
		exitCode, err = r.runSystem(ctx, command, stdout, stderr)
	}

	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrTaskCommandFailed, err), "cannot run task command"), "command", command)
	}
	if exitCode != 0 {
		err := zerr.With(zerr.Wrap(domain.ErrTaskCommandFailed, "task command exited with an error"), "command", command)
		return zerr.With(err, "exit_code", exitCode)
	}
	return nil
}

// Run starts argv with plain pipes and waits for it.
func (r *Runner) Run(ctx context.Context, argv []string, stdout, stderr io.Writer) (int, error) {
	if len(argv) == 0 {
		return -1, zerr.New("empty command line")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is built by the caller
	cmd.Env = r.env
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return exitStatus(cmd.Run(), argv[0])
}

// SystemArgv returns the argument vector that hands command to the host shell.
func (r *Runner) SystemArgv(command string) []string {
	if r.goos == "windows" {
		comspec := r.getenv("COMSPEC")
		if comspec == "" {
			comspec = "cmd.exe"
		}
		return []string{comspec, "/C", command}
	}
	return []string{"/bin/sh", "-c", command}
}

func (r *Runner) runSystem(ctx context.Context, command string, stdout, stderr io.Writer) (int, error) {
	argv := r.SystemArgv(command)

	newCmd := func() *exec.Cmd {
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // task commands are user provided
		cmd.Env = r.env
		return cmd
	}

	if r.detect() == detector.ModePTY {
		cmd := newCmd()
		ptmx, err := pty.Start(cmd)
		switch {
		case err == nil:
			defer func() { _ = ptmx.Close() }()
			defer rawInput(r.stdin)()
			// The child reads from the terminal side of the PTY, so prompts
			// and read need our input forwarded.
			go func() { _, _ = io.Copy(ptmx, r.stdin) }()
			// The PTY merges both streams into one.
			_, _ = io.Copy(stdout, ptmx)
			return exitStatus(cmd.Wait(), argv[0])
		case !errors.Is(err, pty.ErrUnsupported):
			return -1, zerr.Wrap(err, "failed to start pty")
		}
	}

	cmd := newCmd()
	cmd.Stdin = r.stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return exitStatus(cmd.Run(), argv[0])
}

func (r *Runner) runBuiltin(ctx context.Context, command string, stdout, stderr io.Writer) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, zerr.Wrap(err, "failed to parse command")
	}

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(r.env...)),
		interp.StdIO(r.stdin, stdout, stderr),
	)
	if err != nil {
		return -1, zerr.Wrap(err, "failed to initialize shell interpreter")
	}

	err = runner.Run(ctx, file)
	var status interp.ExitStatus
	if errors.As(err, &status) {
		return int(status), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}

// rawInput puts in into raw mode when it is a terminal, so keystrokes reach
// the child's PTY unprocessed. The returned function restores the terminal.
func rawInput(in io.Reader) func() {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}
	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return func() {}
	}
	return func() { _ = term.Restore(int(f.Fd()), state) }
}

func (r *Runner) getenv(key string) string {
	for i := len(r.env) - 1; i >= 0; i-- {
		if k, v, ok := strings.Cut(r.env[i], "="); ok && strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// exitStatus splits the error of a finished process into its exit code and
// a start failure.
func exitStatus(err error, program string) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, zerr.With(zerr.Wrap(err, "failed to start process"), "program", program)
}
