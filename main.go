package main

import (
	"context"
	"farebot/app/client/amadeus"
	"farebot/app/config"
	"farebot/app/server"
	"farebot/app/service/catalog"
	"farebot/app/service/dialog"
	"farebot/app/util/mylog"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, amadeus.NewClient)
	do.Provide(di, catalog.New)
	do.Provide(di, dialog.New)
	do.Provide(di, server.New)

	slog.Info("Service started", "listen", cfg.Server.Listen)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	if err = do.MustInvoke[*server.Server](di).Run(appCtx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
