// Package output builds the termenv outputs klse logs through.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile picks the color profile from the environment looked up by getenv.
// NO_COLOR wins over CLICOLOR_FORCE; otherwise termenv's own detection of
// TERM and COLORTERM applies.
func Profile(getenv func(string) string) termenv.Profile {
	if getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if force := getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// New returns an output for w colored by the process environment. Log
// lines go to stderr when w is nil.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	// Compiler and task output share the stream; termenv must not probe it.
	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(os.Getenv)),
		termenv.WithTTY(true),
	)
}
