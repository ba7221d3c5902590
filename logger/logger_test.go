package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/amp-kvstore/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &rec))

	return rec
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("default subsystem")
	assert.Equal(t, "test", lastRecord(t, &buf)["subsystem"])

	ctx := WithSubsystem(t.Context(), "overridden")
	Get(ctx).Info("overridden subsystem")
	assert.Equal(t, "overridden", lastRecord(t, &buf)["subsystem"])

	ctx = With(ctx, "store", "users")
	ctx = With(ctx, "op", "insert")
	Get(ctx).Info("with values")

	rec := lastRecord(t, &buf)
	assert.Equal(t, "users", rec["store"])
	assert.Equal(t, "insert", rec["op"])
	assert.Equal(t, "overridden", rec["subsystem"])

	before := buf.Len()
	Get(WithMuted(ctx, true)).Error("muted")
	assert.Equal(t, before, buf.Len())

	Get(nil, ctx).Info("first non-nil context wins") //nolint:staticcheck
	assert.Equal(t, "users", lastRecord(t, &buf)["store"])
}

func TestMinLevel(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		JSON:     true,
		MinLevel: slog.LevelWarn,
		Output:   &buf,
	})

	Get().Info("dropped")
	assert.Zero(t, buf.Len())

	Get().Warn("kept")
	assert.Equal(t, "kept", lastRecord(t, &buf)["msg"])
}

func TestLegacy(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem:   "test",
		JSON:        true,
		MinLevel:    slog.LevelDebug,
		LegacyLevel: slog.LevelInfo,
		Output:      &buf,
	})

	log.Println("legacy line")

	rec := lastRecord(t, &buf)
	assert.Equal(t, "legacy line", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "debug")

	ConfigureLogging(ctx, "kvstore-test", WithOutput(&buf))

	Get().Debug("debug enabled")

	rec := lastRecord(t, &buf)
	assert.Equal(t, "kvstore-test", rec["subsystem"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestOutputFor(t *testing.T) {
	t.Parallel()

	_, err := outputFor("stderr")
	require.NoError(t, err)

	_, err = outputFor("/var/log/nowhere")
	require.ErrorIs(t, err, ErrInvalidLogOutput)
}
