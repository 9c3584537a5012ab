package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json output honours the level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, "json", "warn")

		logger.Info("hidden")
		logger.Warn("shown", "section", "contact")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, `"msg":"shown"`)
		assert.Contains(t, out, `"section":"contact"`)
	})

	t.Run("text output carries the source", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, "text", "debug").Debug("hello")
		assert.Contains(t, buf.String(), "source=")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelDebug, ParseLevel(""))
}
