package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input_dir: /scans
format: obj
dump_textures: true
texture_size: 512
workers: 4
log_level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/scans", cfg.InputDir)
	assert.Equal(t, "obj", cfg.Format)
	assert.True(t, cfg.DumpTextures)
	assert.Equal(t, 512, cfg.TextureSize)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	cfg := Config{}
	cfg.Resolve(Flags{InputDir: "/scans"})

	assert.Equal(t, "/scans", cfg.InputDir)
	assert.Equal(t, "/scans-export", cfg.OutputDir)
	assert.Equal(t, "stl", cfg.Format)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{
		InputDir:  "/from-file",
		OutputDir: "/out-file",
		Format:    "obj",
		Workers:   2,
	}
	cfg.Resolve(Flags{InputDir: "/from-flag", Format: "ply", Workers: 8})

	assert.Equal(t, "/from-flag", cfg.InputDir)
	assert.Equal(t, "/out-file", cfg.OutputDir)
	assert.Equal(t, "ply", cfg.Format)
	assert.Equal(t, 8, cfg.Workers)
}
