package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/simpak/internal/loader"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("pakset: /games/pak64\n"))
	require.NoError(t, err)
	assert.Equal(t, "/games/pak64", cfg.Pakset)
	assert.Equal(t, loader.DefaultBootstrap, cfg.Bootstrap)
	assert.Equal(t, loader.DefaultExtensions, cfg.Extensions)
	assert.Equal(t, loader.DefaultPrefetch, cfg.Prefetch)
	assert.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lvl)
}

func TestParseOverrides(t *testing.T) {
	t.Parallel()

	raw := `{"pakset": "base", "addons": "addons", "recursive": true, "bootstrap": [],
		"extensions": [".pak"], "prefetch": 1, "skip_broken": true, "log_level": "debug"}`
	cfg, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "addons", cfg.Addons)
	assert.True(t, cfg.Recursive)
	assert.Empty(t, cfg.Bootstrap)
	assert.NotNil(t, cfg.Bootstrap, "an empty list disables bootstrap files")
	assert.Equal(t, []string{".pak"}, cfg.Extensions)

	opts := cfg.Options(nil)
	assert.Equal(t, 1, opts.Prefetch)
	assert.True(t, opts.SkipBroken)
	assert.True(t, opts.Recursive)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default without pakset", Default(), false},
		{"blank pakset", Config{Pakset: "  "}, false},
		{"unknown level", Config{Pakset: "p", LogLevel: "loud"}, false},
		{"negative prefetch", Config{Pakset: "p", Prefetch: -1}, false},
		{"minimal", Config{Pakset: "p"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "simpak.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pakset: pak128\nprefetch: 8\n"), 0o600))

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "pak128", cfg.Pakset)
	assert.Equal(t, 8, cfg.Prefetch)

	out, err := cfg.Encode()
	require.NoError(t, err)
	back, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)

	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("pakset: [unterminated"))
	assert.Error(t, err)
}
