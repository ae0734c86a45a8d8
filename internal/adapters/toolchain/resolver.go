// Package toolchain locates C and C++ compilers on the PATH.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/klse/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultCandidates lists the compilers probed for each language, generic
// system names first and vendor toolchains last.
var defaultCandidates = map[domain.Language][]string{
	domain.LanguageC: {
		"cc", "gcc", "clang", "tcc", "icc", "pgcc", "sdcc", "armcc", "iccarm",
	},
	domain.LanguageCXX: {
		"c++", "g++", "clang++", "icpc", "pgcpp", "armcc", "iccarm",
	},
}

// Resolver implements ports.CompilerResolver by searching the PATH of env.
type Resolver struct {
	env  []string
	goos string

	mu   sync.Mutex
	hits map[string]string
}

var _ ports.CompilerResolver = (*Resolver)(nil)

// NewResolver creates a Resolver searching the PATH found in env, a list of
// KEY=VALUE pairs as returned by os.Environ.
func NewResolver(env []string) *Resolver {
	return &Resolver{
		env:  env,
		goos: runtime.GOOS,
		hits: make(map[string]string),
	}
}

// Candidates returns the names probed for lang, preferred ones first.
// Duplicates keep their first position.
func Candidates(lang domain.Language, preferred []string) []string {
	defaults := defaultCandidates[lang]
	out := make([]string, 0, len(preferred)+len(defaults))
	for _, name := range slices.Concat(preferred, defaults) {
		if name != "" && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// Resolve returns the path of the first candidate found for lang.
// Hits are remembered for the lifetime of the Resolver.
func (r *Resolver) Resolve(lang domain.Language, preferred []string) (string, error) {
	if _, ok := defaultCandidates[lang]; !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsupportedLanguage, "cannot compile for language"), "language", lang.String())
	}

	candidates := Candidates(lang, preferred)
	key := lang.String() + "\x00" + strings.Join(candidates, "\x00")

	r.mu.Lock()
	defer r.mu.Unlock()

	if path, ok := r.hits[key]; ok {
		return path, nil
	}

	for _, name := range candidates {
		if path, err := r.lookPath(name); err == nil {
			r.hits[key] = path
			return path, nil
		}
	}

	err := zerr.With(zerr.Wrap(domain.ErrCompilerNotFound, "no candidate compiler is on PATH"), "language", lang.String())
	return "", zerr.With(err, "candidates", strings.Join(candidates, ", "))
}

// lookPath searches for an executable in the directories named by the PATH
// entry of the resolver's environment.
func (r *Resolver) lookPath(file string) (string, error) {
	exts := r.executableExts()

	if strings.ContainsAny(file, `/\`) {
		return r.findWithExts(file, exts)
	}

	path := r.getenv("PATH")
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if dir == "." {
			// Keep the ./ so exec does not search PATH for the result again.
			candidate = "." + string(filepath.Separator) + file
		}
		if found, err := r.findWithExts(candidate, exts); err == nil {
			return found, nil
		}
	}
	return "", exec.ErrNotFound
}

// executableExts returns the suffixes tried after a bare name. On Windows
// these come from PATHEXT.
func (r *Resolver) executableExts() []string {
	if r.goos != "windows" {
		return []string{""}
	}

	pathext := r.getenv("PATHEXT")
	if pathext == "" {
		pathext = ".COM;.EXE;.BAT;.CMD"
	}

	exts := []string{""}
	for _, ext := range strings.Split(strings.ToLower(pathext), ";") {
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

func (r *Resolver) getenv(key string) string {
	for i := len(r.env) - 1; i >= 0; i-- {
		k, v, ok := strings.Cut(r.env[i], "=")
		if !ok {
			continue
		}
		if k == key || (r.goos == "windows" && strings.EqualFold(k, key)) {
			return v
		}
	}
	return ""
}

func (r *Resolver) findWithExts(file string, exts []string) (string, error) {
	for _, ext := range exts {
		if err := r.findExecutable(file + ext); err == nil {
			return file + ext, nil
		}
	}
	return "", exec.ErrNotFound
}

// findExecutable accepts any regular file on Windows and requires an
// executable bit elsewhere.
func (r *Resolver) findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	m := d.Mode()
	if m.IsDir() {
		return os.ErrPermission
	}
	if r.goos == "windows" || m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
