package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesDocumentedSeed(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, uint64(2005), cfg.ZobristSeed)
	assert.Equal(t, 4, cfg.DefaultDepthLimit)
	assert.Equal(t, 1<<16, cfg.TransTableSizeHint)
}

func TestLoadConfigOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_depth_limit = 6\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.DefaultDepthLimit)
	assert.Equal(t, uint64(2005), cfg.ZobristSeed)
	assert.Equal(t, 1<<16, cfg.TransTableSizeHint)
}

func TestLoadConfigFullOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	contents := "zobrist_seed = 99\ndefault_depth_limit = 2\ntrans_table_size_hint = 1024\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, Config{ZobristSeed: 99, DefaultDepthLimit: 2, TransTableSizeHint: 1024}, cfg)
}

func TestLoadConfigRejectsMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}
