package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnreads/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnreads"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnreads", "logs"),
		},
		{
			msg: "config file path",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnreads", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, 2, cfg.CompressionLevel)

		// Extraction settings have no defaults
		assert.Empty(t, cfg.Extract.Inputs)
		assert.Empty(t, cfg.Extract.TaxonIDs)
		assert.False(t, cfg.Extract.Exclude)
	})
}

func TestOptionCompressionLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid level",
			input:    9,
			expected: 9,
		},
		{
			name:     "ignores level below range",
			input:    0,
			expected: 2, // Should keep default
		},
		{
			name:     "ignores level above range",
			input:    10,
			expected: 2, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptCompressionLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.CompressionLevel)
		})
	}
}

func TestOptionCompression(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets gzip",
			input:    "gz",
			expected: "gz",
		},
		{
			name:     "sets bzip2",
			input:    "bz2",
			expected: "bz2",
		},
		{
			name:     "normalizes case",
			input:    "NONE",
			expected: "none",
		},
		{
			name:     "rejects unknown format",
			input:    "rar",
			expected: "",
		},
		{
			name:     "empty means infer from extension",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptCompression(tt.input)})
			assert.Equal(t, tt.expected, cfg.Extract.Compression)
		})
	}
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLogLevel("debug"),
		config.OptLogDestination("stderr"),
		config.OptCompressionLevel(5),
		// runtime-only, must not survive the round trip
		config.OptTaxonIDs([]int{562}),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, "debug", clone.Log.Level)
	assert.Equal(t, "stderr", clone.Log.Destination)
	assert.Equal(t, 5, clone.CompressionLevel)
	assert.Empty(t, clone.Extract.TaxonIDs)
}
