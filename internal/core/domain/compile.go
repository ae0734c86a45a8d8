package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Language is a source language the compile commands understand.
type Language string

const (
	// LanguageC selects the C toolchain.
	LanguageC Language = "c"
	// LanguageCXX selects the C++ toolchain.
	LanguageCXX Language = "c++"
)

// Languages lists every supported language.
var Languages = []Language{LanguageC, LanguageCXX}

// ParseLanguage validates a user supplied language tag.
func ParseLanguage(tag string) (Language, error) {
	switch Language(tag) {
	case LanguageC, LanguageCXX:
		return Language(tag), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnsupportedLanguage, "cannot compile for language"), "language", tag)
	}
}

func (l Language) String() string {
	return string(l)
}

// JoinFlags renders compiler flags the way they are recorded in the flag cache.
// Order is significant and no normalization is applied.
func JoinFlags(flags []string) string {
	return strings.Join(flags, " ")
}

// StaleReason tells why a unit was, or was not, recompiled.
type StaleReason uint8

const (
	// ReasonUpToDate means the object is current and the compiler was not run.
	ReasonUpToDate StaleReason = iota
	// ReasonObjectMissing means no object existed in the output directory.
	ReasonObjectMissing
	// ReasonSourceNewer means the source was modified after the object was written.
	ReasonSourceNewer
	// ReasonFlagsChanged means the recorded flags are absent or differ.
	ReasonFlagsChanged
)

func (r StaleReason) String() string {
	switch r {
	case ReasonObjectMissing:
		return "object missing"
	case ReasonSourceNewer:
		return "source newer than object"
	case ReasonFlagsChanged:
		return "flags changed"
	default:
		return "up to date"
	}
}

// CompileRequest describes a single compilation unit.
type CompileRequest struct {
	Language  Language
	Source    string
	OutputDir string
	Flags     []string
}

// CompileResult reports what happened to a compilation unit.
type CompileResult struct {
	Source   string
	Object   string
	Compiled bool
	Reason   StaleReason
}

// FolderRequest describes a directory to compile.
type FolderRequest struct {
	Language  Language
	SourceDir string
	OutputDir string
	Flags     []string
	Recursive bool
}
