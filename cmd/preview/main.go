package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/arunika/internal/config"
	"github.com/dmitrijs2005/arunika/internal/kvstore"
	"github.com/dmitrijs2005/arunika/internal/logging"
	"github.com/dmitrijs2005/arunika/internal/preview"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, os.Stderr)

	store, err := kvstore.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer store.Close()

	if err := preview.NewServer(cfg, store, logger).Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
