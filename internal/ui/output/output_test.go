package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/klse/internal/ui/output"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestProfile(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want termenv.Profile
	}{
		{name: "NO_COLOR", vars: map[string]string{"NO_COLOR": "1"}, want: termenv.Ascii},
		{name: "CLICOLOR_FORCE", vars: map[string]string{"CLICOLOR_FORCE": "1"}, want: termenv.ANSI},
		{
			name: "NO_COLOR wins over CLICOLOR_FORCE",
			vars: map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"},
			want: termenv.Ascii,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, output.Profile(env(tt.vars)))
		})
	}
}

func TestProfile_ForceZeroIsIgnored(t *testing.T) {
	p := output.Profile(env(map[string]string{"CLICOLOR_FORCE": "0"}))
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii)
}

func TestNew(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)
	_, _ = out.WriteString(out.String("✓ hello.o is up to date").Foreground(out.Color("#22A06B")).String())
	assert.Equal(t, "✓ hello.o is up to date", buf.String())

	assert.NotNil(t, output.New(nil))
}
