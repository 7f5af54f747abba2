package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warning ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.in, slog.LevelWarn))
		})
	}
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/config/manifest.go", shortPath("/home/dev/src/treb-toolchain/internal/config/manifest.go"))
	assert.Equal(t, "main.go", shortPath("/elsewhere/main.go"))
}
