package main

import (
	"context"
	"log"
	"net/url"
	"os"

	"github.com/dmitrijs2005/arunika/internal/app"
	"github.com/dmitrijs2005/arunika/internal/cli"
	"github.com/dmitrijs2005/arunika/internal/config"
	"github.com/dmitrijs2005/arunika/internal/kvstore"
	"github.com/dmitrijs2005/arunika/internal/logging"
	"github.com/dmitrijs2005/arunika/internal/router"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, os.Stderr)

	var entry router.Entry
	if cfg.StartURL != "" {
		u, err := url.Parse(cfg.StartURL)
		if err != nil {
			log.Fatalf("start url: %v", err)
			return
		}
		entry = router.EntryFromQuery(u.Query())
	}

	store, err := kvstore.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	lms, err := app.New(ctx, app.Deps{Store: store, Config: cfg, Log: logger}, entry)
	if err != nil {
		_ = store.Close()
		log.Fatalf("%v", err)
		return
	}
	defer lms.Close()

	cli.NewApp(lms, logger, os.Stdin, os.Stdout).Root(ctx)

}
