package shell

import "io"

// NewRunnerForOS creates a Runner that builds shell command lines as it would on goos.
func NewRunnerForOS(env []string, goos string) *Runner {
	r := NewRunner(env, nil)
	r.goos = goos
	return r
}

// SetStdin replaces the input forwarded to task commands.
func (r *Runner) SetStdin(in io.Reader) {
	r.stdin = in
}
