package config

import (
	"time"

	"github.com/dmitrijs2005/arunika/internal/common"
)

// Config holds runtime settings shared by the terminal client and the
// public preview server.
type Config struct {
	StoreDriver string
	StoreDSN    string
	BaseURL     string
	PreviewAddr string
	CORSOrigins []string
	LogLevel    string
	LoginDelay  time.Duration
	CopiedReset time.Duration
	ShareTTL    time.Duration
	// StartURL is the address the client was opened with. Its query may
	// carry share or publicCourse/publicLesson parameters.
	StartURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = "sqlite"
	c.StoreDSN = "arunika.db"
	c.BaseURL = "http://localhost:8080/"
	c.PreviewAddr = ":8080"
	c.CORSOrigins = []string{"http://localhost:5173"}
	c.LogLevel = "info"
	c.LoginDelay = common.DefaultLoginDelay
	c.CopiedReset = common.DefaultCopiedReset
	c.ShareTTL = common.DefaultShareTTL
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, JSON (if present) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
