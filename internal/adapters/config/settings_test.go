package config_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/klse/internal/adapters/config"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestSettingsLoader_Load(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    domain.Settings
	}{
		{
			name: "missing file yields defaults",
			want: domain.DefaultSettings(),
		},
		{
			name:    "empty file yields defaults",
			content: ptr(""),
			want:    domain.DefaultSettings(),
		},
		{
			name: "full settings",
			content: ptr(`
shell: builtin
cache:
  policy: write-after
compilers:
  c: [clang, gcc-14]
  c++: [clang++]
`),
			want: domain.Settings{
				Shell:       domain.ShellBuiltin,
				CachePolicy: domain.CacheWriteAfter,
				Compilers: map[domain.Language][]string{
					domain.LanguageC:   {"clang", "gcc-14"},
					domain.LanguageCXX: {"clang++"},
				},
			},
		},
		{
			name:    "partial settings keep defaults",
			content: ptr("cache:\n  policy: write-before\n"),
			want:    domain.DefaultSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != nil {
				writeFile(t, fs, domain.SettingsFilePath("proj"), *tt.content)
			}

			got, err := config.NewSettingsLoader(fs).Load("proj")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid yaml",
			content: "shell: [builtin",
			wantErr: domain.ErrSettingsMalformed,
		},
		{
			name:    "unknown key",
			content: "shel: builtin\n",
			wantErr: domain.ErrSettingsMalformed,
		},
		{
			name:    "unknown shell",
			content: "shell: fish\n",
			wantErr: domain.ErrInvalidShell,
		},
		{
			name:    "unknown cache policy",
			content: "cache:\n  policy: never\n",
			wantErr: domain.ErrInvalidCachePolicy,
		},
		{
			name:    "unknown compiler language",
			content: "compilers:\n  rust: [rustc]\n",
			wantErr: domain.ErrUnsupportedLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := domain.SettingsFilePath("proj")
			writeFile(t, fs, path, tt.content)

			_, err := config.NewSettingsLoader(fs).Load("proj")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, path, zErr.Metadata()["path"])
		})
	}
}
