package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/arunika/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// os.Args is filtered with flagx.FilterArgs first so that flags owned by
// other components (-c, -env) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-b", "-a", "-l", "-t", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "store driver (sqlite or pgx)")
	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "store DSN")
	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "base URL for share links")
	fs.StringVar(&cfg.PreviewAddr, "a", cfg.PreviewAddr, "preview server listen address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.StartURL, "u", cfg.StartURL, "start URL (may carry ?share=)")
	shareTTL := fs.Int("t", int(cfg.ShareTTL.Hours()/24), "share token validity (in days)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.ShareTTL = time.Duration(*shareTTL) * 24 * time.Hour
		}
	})
}
