package constants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chordsheet.yaml")
	yml := "addr: \":9090\"\ntable: songs\ncors_origins:\n  - https://example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	t.Setenv(EnvTable, "other")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvCorsOrigins, "https://a.example, https://b.example,")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(":9090", cfg.Addr)
	assert.Equal("other", cfg.Table)
	assert.True(cfg.Debug)
	assert.Equal([]string{"https://a.example", "https://b.example"}, cfg.CorsOrigins)
	assert.Equal("http://localhost:8000", cfg.DynamoEndpoint)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv(EnvDebug, "maybe")
	_, err = Load("")
	assert.Error(t, err)
}
