package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/arunika/internal/flagx"
	"github.com/dmitrijs2005/arunika/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they can be written as "600ms" or integer nanoseconds.
// Absent fields leave the current value untouched.
type JsonConfig struct {
	StoreDriver *string         `json:"store_driver"`
	StoreDSN    *string         `json:"store_dsn"`
	BaseURL     *string         `json:"base_url"`
	PreviewAddr *string         `json:"preview_addr"`
	CORSOrigins []string        `json:"cors_origins"`
	LogLevel    *string         `json:"log_level"`
	LoginDelay  *timex.Duration `json:"login_delay"`
	CopiedReset *timex.Duration `json:"copied_reset"`
	ShareTTL    *timex.Duration `json:"share_ttl"`
	StartURL    *string         `json:"start_url"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.StoreDriver, jc.StoreDriver)
	setIf(&cfg.StoreDSN, jc.StoreDSN)
	setIf(&cfg.BaseURL, jc.BaseURL)
	setIf(&cfg.PreviewAddr, jc.PreviewAddr)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.StartURL, jc.StartURL)
	if jc.CORSOrigins != nil {
		cfg.CORSOrigins = jc.CORSOrigins
	}
	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.CopiedReset != nil {
		cfg.CopiedReset = jc.CopiedReset.Duration
	}
	if jc.ShareTTL != nil {
		cfg.ShareTTL = jc.ShareTTL.Duration
	}
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
