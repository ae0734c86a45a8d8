package domain

import "go.trai.ch/zerr"

// CachePolicy decides when a changed flag set is recorded in the flag cache.
type CachePolicy uint8

const (
	// CacheWriteBefore records the new flags before the compiler runs, so a
	// failed compile still leaves them recorded.
	CacheWriteBefore CachePolicy = iota
	// CacheWriteAfter records the new flags only once the compiler succeeded.
	CacheWriteAfter
)

const (
	writeBeforeName = "write-before"
	writeAfterName  = "write-after"
)

// ParseCachePolicy parses the settings value of cache.policy. Empty means the default.
func ParseCachePolicy(s string) (CachePolicy, error) {
	switch s {
	case "", writeBeforeName:
		return CacheWriteBefore, nil
	case writeAfterName:
		return CacheWriteAfter, nil
	default:
		return CacheWriteBefore, zerr.With(zerr.Wrap(ErrInvalidCachePolicy, "unknown cache policy"), "policy", s)
	}
}

func (p CachePolicy) String() string {
	if p == CacheWriteAfter {
		return writeAfterName
	}
	return writeBeforeName
}

// ShellMode selects how task commands are interpreted.
type ShellMode uint8

const (
	// ShellSystem hands the command to the host shell (sh or cmd).
	ShellSystem ShellMode = iota
	// ShellBuiltin interprets the command with the embedded POSIX shell.
	ShellBuiltin
)

const (
	shellSystemName  = "system"
	shellBuiltinName = "builtin"
)

// ParseShellMode parses a shell mode name. Empty means the default.
func ParseShellMode(s string) (ShellMode, error) {
	switch s {
	case "", shellSystemName:
		return ShellSystem, nil
	case shellBuiltinName:
		return ShellBuiltin, nil
	default:
		return ShellSystem, zerr.With(zerr.Wrap(ErrInvalidShell, "unknown shell"), "shell", s)
	}
}

func (m ShellMode) String() string {
	if m == ShellBuiltin {
		return shellBuiltinName
	}
	return shellSystemName
}

// Settings is the validated content of klse.yaml.
type Settings struct {
	Shell       ShellMode
	CachePolicy CachePolicy
	// Compilers holds extra candidates probed before the built-in lists.
	Compilers map[Language][]string
}

// DefaultSettings returns the settings used when klse.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		Shell:       ShellSystem,
		CachePolicy: CacheWriteBefore,
	}
}
