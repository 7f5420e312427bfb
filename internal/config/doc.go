// Package config loads runtime configuration for the Arunika binaries.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: an optional dotenv file (-env, or ./.env when present) is
//     loaded into the process environment, then LMS_* variables are applied.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   store driver: "sqlite" or "pgx"
//	-d string   store DSN (file path for sqlite, URL for postgres)
//	-b string   base URL used when building share links
//	-a string   listen address of the public preview server
//	-l string   log level (debug, info, warn, error)
//	-t int      share token validity (days)
//	-u string   start URL; ?share=<token> or ?publicCourse=<id> opens a shared view
//
// # Environment
//
//	LMS_STORE_DRIVER, LMS_STORE_DSN, LMS_BASE_URL, LMS_PREVIEW_ADDR,
//	LMS_CORS_ORIGINS (comma separated), LMS_LOG_LEVEL, LMS_LOGIN_DELAY,
//	LMS_COPIED_RESET, LMS_SHARE_TTL, LMS_START_URL (durations such as "600ms" or "720h")
//
// # JSON schema
//
//	{
//	  "store_driver": "sqlite",
//	  "store_dsn": "arunika.db",
//	  "base_url": "http://localhost:8080/",
//	  "preview_addr": ":8080",
//	  "cors_origins": ["http://localhost:5173"],
//	  "log_level": "info",
//	  "login_delay": "600ms",
//	  "copied_reset": "2s",
//	  "share_ttl": "720h",
//	  "start_url": ""
//	}
package config
