// Package detector inspects the terminal to choose how task output is attached.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how a child process is connected to the user's terminal.
type OutputMode int

const (
	// ModePipe connects the child through plain pipes.
	ModePipe OutputMode = iota
	// ModePTY attaches the child to a pseudo terminal so it keeps colors and
	// line buffering.
	ModePTY
)

func (m OutputMode) String() string {
	if m == ModePTY {
		return "pty"
	}
	return "pipe"
}

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

// Detect is DetectEnvironment with its inputs made explicit.
func Detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePipe
	}
	return ModePTY
}
