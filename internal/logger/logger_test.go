package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zzpboek/zzptax/internal/calculation"
)

var _ calculation.Logger = (*CalculationLogger)(nil)

func TestCalculationLogger_WritesLevels(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	l := NewCalculationLogger(New(&buf, LogConfig{Format: "json"}))

	l.Warnf("invalid asset %q", "van")
	l.Debugf("taxable %s", "40094.00")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "warn", first["level"])
	assert.Equal(t, `invalid asset "van"`, first["message"])

	var second map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "debug", second["level"])
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	zl := New(&buf, LogConfig{Format: "console", TimeFormat: "15:04"})
	zl.Info().Str("component", "engine").Msg("generated report")

	out := buf.String()
	assert.Contains(t, out, "generated report")
	assert.Contains(t, out, "component=")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { _ = Setup(DefaultConfig()) })

	t.Run("invalid level", func(t *testing.T) {
		err := Setup(LogConfig{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "zzptax.log")
		require.NoError(t, Setup(LogConfig{Level: "info", Format: "json", Output: path}))

		l := WithComponent("test")
		l.Info().Msg("hello")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"component":"test"`)
		assert.Contains(t, string(data), `"message":"hello"`)
	})

	t.Run("unwritable output", func(t *testing.T) {
		err := Setup(LogConfig{Level: "info", Output: filepath.Join(t.TempDir(), "missing", "x.log")})
		assert.Error(t, err)
	})
}

func TestWithYear(t *testing.T) {
	t.Cleanup(func() { _ = Setup(DefaultConfig()) })
	path := filepath.Join(t.TempDir(), "year.log")
	require.NoError(t, Setup(LogConfig{Level: "debug", Format: "json", Output: path}))

	zl := WithYear("report", 2024)
	zl.Info().Msg("done")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fiscal_year":2024`)
}
