package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.APIBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 10.0, c.RequestsPerSecond)
	assert.Equal(t, 5, c.Burst)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.RefreshToken)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TOURS_DB=env.db\nTOURS_API_URL=http://env\nTOURS_LOG_LEVEL=warn\n"), 0o600))
	jsonFile := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"api_base_url": "http://json",
		"burst":        9,
	})
	t.Setenv("TOURS_LOG_LEVEL", "debug")

	os.Args = []string{"tours", "-env", envFile, "-c", jsonFile, "-d", "flag.db", "-t", "3"}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.DatabaseDSN, "flag beats env file")
	assert.Equal(t, "http://json", cfg.APIBaseURL, "json beats env file")
	assert.Equal(t, "debug", cfg.LogLevel, "process env beats env file")
	assert.Equal(t, 9, cfg.Burst)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ".tours_history", cfg.HistoryFile)
}
