package main

import (
	"context"
	"log"

	"github.com/Arshavi-03/Finergize-recommend/internal/bootstrap"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/config"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (env=%s)", addr, cfg.Env)
	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
