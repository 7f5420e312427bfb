package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"store_dsn":    "/var/lib/arunika.db",
		"base_url":     "https://learn.example/",
		"cors_origins": []string{"https://learn.example"},
		"login_delay":  "10ms",
		"share_ttl":    "48h",
	})

	t.Run("loads from flags, keeps absent fields", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/var/lib/arunika.db", cfg.StoreDSN)
		assert.Equal(t, "https://learn.example/", cfg.BaseURL)
		assert.Equal(t, []string{"https://learn.example"}, cfg.CORSOrigins)
		assert.Equal(t, 10*time.Millisecond, cfg.LoginDelay)
		assert.Equal(t, 48*time.Hour, cfg.ShareTTL)
		assert.Equal(t, "sqlite", cfg.StoreDriver)
		assert.Equal(t, 2*time.Second, cfg.CopiedReset)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{StoreDSN: "defaults.db", LoginDelay: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "defaults.db", cfg.StoreDSN)
		assert.Equal(t, 42*time.Second, cfg.LoginDelay)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-c", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
