package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/murkotick/storefront-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-service/internal/app/catalog/importer"
	"github.com/murkotick/storefront-service/internal/config"
	"github.com/murkotick/storefront-service/internal/pkg/cache"
	committer "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/database"
	"github.com/murkotick/storefront-service/internal/pkg/logging"
)

// Loads a catalog JSON document into Spanner.
//
//	go run ./cmd/seed -file internal/app/catalog/importer/testdata/catalog.json
func main() {
	file := flag.String("file", "", "catalog JSON document to import")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	if *file == "" {
		logger.Error("-file is required")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("open catalog", "file", *file, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	client, err := database.Connect(ctx, database.ConnectOptions{
		Database:       cfg.SpannerDatabase,
		Attempts:       cfg.ConnectAttempts,
		InitialBackoff: cfg.ConnectBackoff,
		MaxBackoff:     cfg.ConnectMaxBackoff,
		Logger:         logger,
	})
	if err != nil {
		logger.Error("connect", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	// Only a shared cache outlives this process, so only Redis is cleared.
	var clearer contracts.CacheClearer
	if cfg.CacheBackend == config.CacheRedis {
		store, err := cache.NewRedisStore(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.CachePrefix,
		})
		if err != nil {
			logger.Warn("redis unavailable, cache left as is", "error", err)
		} else {
			defer store.Close()
			clearer = store
		}
	}

	stats, err := importer.New(committer.NewAdapter(client), clearer, logger).ImportReader(ctx, f)
	if err != nil {
		logger.Error("import failed", "imported_products", stats.Products, "error", err)
		os.Exit(1)
	}
	logger.Info("seed complete", "file", *file, "categories", stats.Categories, "products", stats.Products)
}
