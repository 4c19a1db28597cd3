package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})
	return FromSlog(slog.New(h))
}

func TestModuleChain(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug).Module("zassenhaus").With("prime", 7)

	l.Debug("lifted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "zassenhaus", entry["module"])
	assert.Equal(t, float64(7), entry["prime"])
	assert.Equal(t, "lifted", entry["msg"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelInfo)

	assert.False(t, l.Enabled())
	l.Debug("dropped")
	assert.Zero(t, buf.Len())

	l.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestDiscard(t *testing.T) {
	a := assert.New(t)

	l := Discard().Module("x").With("k", "v")
	a.False(l.Enabled())
	a.NotPanics(func() { l.Warn("nothing") })

	a.False(FromSlog(nil).Enabled())
}
