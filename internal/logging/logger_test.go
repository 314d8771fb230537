package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewFromConfigValues_FallsBack(t *testing.T) {
	logger := NewFromConfigValues("nope", "xml")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "control")
	ctx = WithWorkspaceID(ctx, "primary")
	ctx = WithItemID(ctx, "item-1")

	FromContext(ctx).Debug().Msg("moved")

	out := buf.String()
	assert.Contains(t, out, `"component":"control"`)
	assert.Contains(t, out, `"workspace_id":"primary"`)
	assert.Contains(t, out, `"item_id":"item-1"`)
	assert.Contains(t, out, `"message":"moved"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info().Msg("dropped")
}

func TestWith_AddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := With(WithContext(context.Background(), logger), map[string]any{"node_id": "tools", "zone": "center"})
	FromContext(ctx).Info().Msg("dropped")

	assert.Contains(t, buf.String(), `"node_id":"tools"`)
	assert.Contains(t, buf.String(), `"zone":"center"`)
}
