package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/olhovivo/internal/config"
	"github.com/UnknownOlympus/olhovivo/internal/importer"
	"github.com/UnknownOlympus/olhovivo/internal/logging"
	"github.com/UnknownOlympus/olhovivo/internal/repository"
)

func main() {
	file := flag.String("file", "", "path to a zipped static GTFS feed")
	workers := flag.Int("workers", 4, "number of concurrent database writers")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := logging.New(cfg.Env, os.Stdout)

	content, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read GTFS feed: %v", err)
	}

	static, err := importer.Parse(content)
	if err != nil {
		log.Fatalf("Failed to load GTFS feed: %v", err)
	}

	dtb, err := repository.NewDatabase(ctx,
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	repo := repository.NewRepository(dtb, logger)
	if err = repo.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	summary, err := importer.New(repo, logger, *workers).Import(ctx, static)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	// Warnings are dropped by the production handler, so the outcome goes to stderr too.
	log.Printf("imported %d stops and %d lines, skipped %d stops without coordinates, %d failures",
		summary.Stops, summary.Lines, summary.SkippedStops, summary.Failed)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
