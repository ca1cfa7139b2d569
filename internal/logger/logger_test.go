package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Writer(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		log      func(Logger)
		contains []string
		excludes []string
	}{
		{
			name:     "InfoIsWrittenByDefault",
			log:      func(l Logger) { l.Info("installed", "signals", 60) },
			contains: []string{"level=INFO", "msg=installed", "signals=60"},
		},
		{
			name:     "DebugIsFilteredByDefault",
			log:      func(l Logger) { l.Debug("hidden") },
			excludes: []string{"hidden"},
		},
		{
			name:     "DebugIsWrittenWithDebugOption",
			opts:     []Option{WithDebug()},
			log:      func(l Logger) { l.Debugf("seen %d", 1) },
			contains: []string{"level=DEBUG", "seen 1"},
		},
		{
			name:     "WithAddsAttributes",
			log:      func(l Logger) { l.With("signal", "SIGINT").Warn("delivered") },
			contains: []string{"level=WARN", "signal=SIGINT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := append([]Option{WithQuiet(), WithFormat("text"), WithWriter(&buf)}, tt.opts...)
			tt.log(NewLogger(opts...))

			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithQuiet(), WithFormat("json"), WithWriter(&buf))
	l.Errorf("failed to hook callback on %q (%d)", "SIGINT", 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, `failed to hook callback on "SIGINT" (2)`, record["msg"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithQuiet(), WithWriter(&buf))

	ctx := WithLogger(context.Background(), l)
	require.Same(t, l, FromContext(ctx))
	Info(ctx, "from context")
	assert.Contains(t, buf.String(), "from context")

	require.NotNil(t, FromContext(context.Background()))
}
