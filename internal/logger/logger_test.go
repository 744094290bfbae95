package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf)
	require.NotNil(t, l)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()
	l, closer := NewClientLogger("client", dir)
	require.NotNil(t, l)

	l.Warn().Str("func", "test").Msg("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), `"role":"client"`)
}

func TestNewClientLogger_FallbackWhenDirMissing(t *testing.T) {
	l, closer := NewClientLogger("client", filepath.Join(t.TempDir(), "missing", "dir"))
	require.NotNil(t, l)
	assert.NoError(t, closer.Close())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", &buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestForComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("client", &buf).ForComponent("Customers")

	l.Info().Msg("fetched")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "Customers", entry["component"])
	assert.Equal(t, "client", entry["role"])
}

func TestFromContext(t *testing.T) {
	t.Run("never nil", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("returns attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger("ctx-role", &buf)
		ctx := l.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "ctx-role", decodeEntry(t, &buf)["role"])
	})
}
