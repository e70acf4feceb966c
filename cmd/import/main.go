// Command import bulk-loads words from *.json files into the database. Each
// file holds an array of {en, ja, example, notes, category, created_at}
// objects; words whose en already exists are skipped.
//
// Flags:
//
//	--import-config  path to import config YAML (optional; falls back to env)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/vocab-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/vocab-backend/internal/adapter/postgres/category"
	wordrepo "github.com/heartmarshall/vocab-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/vocab-backend/internal/app"
	"github.com/heartmarshall/vocab-backend/internal/app/wordimport"
	"github.com/heartmarshall/vocab-backend/internal/config"
	"github.com/heartmarshall/vocab-backend/internal/service/category"
	"github.com/heartmarshall/vocab-backend/internal/service/dictionary"
)

func main() {
	importConfigPath := flag.String("import-config", "", "path to import config YAML")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	importCfg, err := wordimport.LoadConfig(*importConfigPath)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	words := wordrepo.New(pool)
	deps := wordimport.Deps{
		Words:      dictionary.NewService(logger, words),
		Existing:   words,
		Categories: category.NewService(logger, categoryrepo.New(pool)),
	}

	if importCfg.DryRun {
		logger.Info("dry-run mode: no DB writes")
	}

	if _, err := wordimport.Run(ctx, importCfg, deps, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
