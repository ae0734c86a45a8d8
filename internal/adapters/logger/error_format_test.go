package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/klse/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "joined errors are walked in order",
			err:          errors.Join(zerr.New("first"), errors.New("second")),
			wantMessages: []string{"first", "second"},
		},
		{
			name:         "fmt wrapping stops at the standard error",
			err:          fmt.Errorf("outer: %w", errors.New("inner")),
			wantMessages: []string{"outer: inner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)

			messages := make([]string, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message)
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestCollectErrorEntries_MetadataOnPlainError(t *testing.T) {
	err := zerr.With(errors.New("permission denied"), "path", "out/klse_CFLAGS.json.cache")

	entries := logger.CollectErrorEntriesExported(err)

	assert.Len(t, entries, 1)
	assert.Equal(t, "permission denied", entries[0].Message)
	assert.Equal(t, "out/klse_CFLAGS.json.cache", entries[0].Metadata["path"])
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42)

	entries := logger.CollectErrorEntriesExported(err)

	assert.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"key1": "value1", "key2": 42}, entries[0].Metadata)
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntriesExported([]logger.ErrorEntry{
		{Message: "task not found", Metadata: map[string]any{"task": "nope", "path": "klse.json"}},
		{Message: "root cause"},
	})

	want := "Error: task not found\n" +
		"       path: klse.json\n" +
		"       task: nope\n" +
		"\n" +
		"  Caused by:\n" +
		"    → root cause"
	assert.Equal(t, want, got)
}
