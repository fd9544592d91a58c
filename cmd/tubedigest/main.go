// Package main provides the main entry point for TubeDigest
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tubedigest/tubedigest/api"
	"github.com/tubedigest/tubedigest/pkg/client"
	"github.com/tubedigest/tubedigest/pkg/config"
	"github.com/tubedigest/tubedigest/pkg/extract"
	"github.com/tubedigest/tubedigest/pkg/logger"
	"github.com/tubedigest/tubedigest/pkg/store"
)

// Version information (set by build process)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Command line flags
var (
	configFile  = flag.String("config", "", "Path to configuration file")
	showVersion = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("TubeDigest %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully shutting down...")
		cancel()
	}()

	if err := run(ctx); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func run(ctx context.Context) error {
	manager := config.NewConfigManager()
	cfg, err := manager.Load(*configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.NewConsoleLogger(cfg.LogLevel)

	engine := extract.NewEngine(
		extract.WithAliasTable(extract.DefaultAliasTable().Merge(cfg.Extractor.Aliases)),
		extract.WithMojibakeTable(extract.DefaultMojibakeTable().Merge(cfg.Extractor.Mojibake)),
	)

	st, err := store.New(store.Options{
		DatabasePath: cfg.DatabasePath,
		ProgressTTL:  time.Duration(cfg.ProgressTTLHours) * time.Hour,
	}, appLogger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	go st.RunCleanupLoop(ctx, 15*time.Minute)

	publisher, err := store.NewProgressPublisher(ctx, cfg.RedisURL, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer publisher.Close()

	source, err := client.NewSummaryClient(&cfg.Upstream, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create upstream client: %w", err)
	}
	if !source.IsAvailable() {
		appLogger.Warn("upstream credentials not configured, /api/v1/summarize disabled")
	}

	server := api.NewServer(api.Deps{
		Engine:    engine,
		Summaries: st,
		Progress:  st,
		Source:    source,
		Publisher: publisher,
	}, cfg, appLogger)

	// Hot-reload keeps the config file authoritative for log level changes;
	// structural changes (ports, stores) need a restart
	manager.Watch(ctx, func(updated *config.Config) {
		appLogger.Info("configuration reloaded", map[string]interface{}{
			"log_level": updated.LogLevel,
		})
	})

	appLogger.Info("TubeDigest starting", map[string]interface{}{
		"version": Version,
		"port":    cfg.APIPort,
	})

	return server.Start(ctx)
}
