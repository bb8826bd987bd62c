// Package main runs the coliseum console: one character, one inventory, a numbered menu.
// It wires together configuration, logging, starting-kit content, and the menu driver.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/coliseum/internal/config"
	"github.com/cory-johannsen/coliseum/internal/frontend/console"
	"github.com/cory-johannsen/coliseum/internal/frontend/handlers"
	"github.com/cory-johannsen/coliseum/internal/game/character"
	"github.com/cory-johannsen/coliseum/internal/game/command"
	"github.com/cory-johannsen/coliseum/internal/game/inventory"
	"github.com/cory-johannsen/coliseum/internal/game/item"
	"github.com/cory-johannsen/coliseum/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	itemsDir := flag.String("items", "", "path to starting kit item YAML directory (overrides content.items_dir)")
	name := flag.String("name", "", "character name (overrides character.name)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *itemsDir != "" {
		cfg.Content.ItemsDir = *itemsDir
	}
	if *name != "" {
		cfg.Character.Name = *name
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	// Build the character
	inv := inventory.New(cfg.Inventory.MaxDistinctItems)
	stats := character.Stats{
		HP:      cfg.Character.HP,
		MP:      cfg.Character.MP,
		Attack:  cfg.Character.Attack,
		Defense: cfg.Character.Defense,
	}
	char, err := character.New(cfg.Character.Name, stats, inv)
	if err != nil {
		logger.Fatal("creating character", zap.Error(err))
	}

	if cfg.Content.ItemsDir != "" {
		defs, err := item.LoadDefs(cfg.Content.ItemsDir)
		if err != nil {
			logger.Fatal("loading starting kit", zap.String("dir", cfg.Content.ItemsDir), zap.Error(err))
		}
		if err := character.GrantStartingKit(char, defs); err != nil {
			logger.Fatal("granting starting kit", zap.Error(err))
		}
		logger.Info("starting kit granted",
			zap.String("dir", cfg.Content.ItemsDir),
			zap.Int("items", len(defs)),
		)
	}

	logger.Info("coliseum ready",
		zap.String("character", char.Name),
		zap.Int("max_distinct_items", inv.MaxDistinct()),
		zap.Duration("startup", time.Since(start)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Unblock a pending read when a signal arrives.
	go func() {
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	conn := console.NewConn(os.Stdin, os.Stdout, cfg.Console.Color)
	driver := handlers.NewMenuDriver(conn, char, command.DefaultRegistry(), logger, cfg.Console.Prompt)
	if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session failed", zap.Error(err))
		return
	}

	logger.Info("coliseum stopped", zap.Duration("uptime", time.Since(start)))
}
