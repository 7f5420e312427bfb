package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/arunika/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv loads a dotenv file into the environment and overlays LMS_*
// variables onto cfg.
//
// An explicit -env file that cannot be read panics, like a broken -config.
// The implicit ./.env is optional. Existing environment variables are never
// overwritten by the file.
func parseEnv(cfg *Config) {
	if file := flagx.EnvFileFlag(); file != "" {
		if err := godotenv.Load(file); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) {
		if v, ok := lookup(name); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(err)
			}
			*dst = d
		}
	}

	str("LMS_STORE_DRIVER", &cfg.StoreDriver)
	str("LMS_STORE_DSN", &cfg.StoreDSN)
	str("LMS_BASE_URL", &cfg.BaseURL)
	str("LMS_PREVIEW_ADDR", &cfg.PreviewAddr)
	str("LMS_LOG_LEVEL", &cfg.LogLevel)
	str("LMS_START_URL", &cfg.StartURL)
	dur("LMS_LOGIN_DELAY", &cfg.LoginDelay)
	dur("LMS_COPIED_RESET", &cfg.CopiedReset)
	dur("LMS_SHARE_TTL", &cfg.ShareTTL)

	if v, ok := lookup("LMS_CORS_ORIGINS"); ok && v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}
}
