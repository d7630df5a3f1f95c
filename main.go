package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"entropylab/internal/api"
	"entropylab/internal/config"
	"entropylab/internal/external"
	"entropylab/internal/service"
	"entropylab/internal/store"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[entropy] ")

	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Serve == "" {
		if err := service.RunBatch(ctx, cfg, os.Stdout); err != nil {
			if errors.Is(err, external.ErrInputUnavailable) {
				log.Fatalf("error: file '%s' not found: %v", cfg.Input, err)
			}
			log.Fatalf("error: %v", err)
		}
		return
	}

	mux := http.NewServeMux()
	handler := api.NewAPIHandler(service.NewAnalysisService(cfg.Parallel), store.NewReportStore())
	handler.RegisterRoutes(mux)

	fmt.Printf("Entropy API started on http://%s\n", cfg.Serve)
	if err := http.ListenAndServe(cfg.Serve, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
