package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.StoreDriver)
	assert.Equal(t, "arunika.db", c.StoreDSN)
	assert.Equal(t, "http://localhost:8080/", c.BaseURL)
	assert.Equal(t, ":8080", c.PreviewAddr)
	assert.Equal(t, 600*time.Millisecond, c.LoginDelay)
	assert.Equal(t, 2*time.Second, c.CopiedReset)
	assert.Equal(t, 30*24*time.Hour, c.ShareTTL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*24*time.Hour, cfg.ShareTTL)
}
