package config

import (
	"bytes"
	"errors"
	"io"

	"github.com/spf13/afero"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/klse/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SettingsLoader implements ports.SettingsLoader using a YAML file.
type SettingsLoader struct {
	fs afero.Fs
}

var _ ports.SettingsLoader = (*SettingsLoader)(nil)

// NewSettingsLoader creates a SettingsLoader reading from fs.
func NewSettingsLoader(fs afero.Fs) *SettingsLoader {
	return &SettingsLoader{fs: fs}
}

// Load reads klse.yaml from root. A missing or empty file yields the defaults.
func (l *SettingsLoader) Load(root string) (domain.Settings, error) {
	path := domain.SettingsFilePath(root)

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if exists, _ := afero.Exists(l.fs, path); !exists {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrSettingsReadFailed, err), "cannot load settings"), "path", path)
	}

	var doc SettingsDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrSettingsMalformed, err), "cannot load settings"), "path", path)
	}

	settings, err := doc.toDomain()
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

func (d *SettingsDocument) toDomain() (domain.Settings, error) {
	shell, err := domain.ParseShellMode(d.Shell)
	if err != nil {
		return domain.Settings{}, err
	}

	policy, err := domain.ParseCachePolicy(d.Cache.Policy)
	if err != nil {
		return domain.Settings{}, err
	}

	settings := domain.Settings{Shell: shell, CachePolicy: policy}
	if len(d.Compilers) == 0 {
		return settings, nil
	}

	settings.Compilers = make(map[domain.Language][]string, len(d.Compilers))
	for tag, candidates := range d.Compilers {
		lang, err := domain.ParseLanguage(tag)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.Compilers[lang] = candidates
	}

	return settings, nil
}
