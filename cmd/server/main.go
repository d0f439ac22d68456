package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries"
	catalogrepo "github.com/murkotick/storefront-service/internal/app/catalog/repo"
	orderrepo "github.com/murkotick/storefront-service/internal/app/order/repo"
	"github.com/murkotick/storefront-service/internal/app/order/usecases/create_order"
	"github.com/murkotick/storefront-service/internal/config"
	"github.com/murkotick/storefront-service/internal/pkg/cache"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	committer "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/database"
	"github.com/murkotick/storefront-service/internal/pkg/logging"
	"github.com/murkotick/storefront-service/internal/transport/graphql/storefront"
	"github.com/murkotick/storefront-service/internal/transport/httpapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := database.Connect(ctx, database.ConnectOptions{
		Database:       cfg.SpannerDatabase,
		Attempts:       cfg.ConnectAttempts,
		InitialBackoff: cfg.ConnectBackoff,
		MaxBackoff:     cfg.ConnectMaxBackoff,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	clk := clock.RealClock{}
	store, closeStore, err := cache.Open(ctx, cache.OpenOptions{
		Backend: cfg.CacheBackend,
		Redis: cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.CachePrefix,
		},
		Clock: clk,
	})
	if err != nil {
		return err
	}
	defer closeStore()

	// Catalog read side
	readModel := queries.NewSpannerReadModel(client, domain.DefaultFactory())
	products := catalogrepo.NewProductRepository(readModel, store, cfg.CacheTTL, logger)
	categories := catalogrepo.NewCategoryRepository(readModel, products, store, cfg.CacheTTL, logger)

	// Order write side
	placeOrder := create_order.NewInteractor(
		orderrepo.NewOrderRepo(),
		orderrepo.NewOutboxRepo(),
		committer.NewAdapter(client),
		clk,
		logger,
	)

	schema, err := storefront.NewSchema(storefront.Deps{
		Categories:      categories,
		Products:        products,
		Orders:          placeOrder,
		DefaultCurrency: cfg.DefaultCurrency,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(storefront.NewExecutor(schema), logger),
	}

	go watchCacheReset(ctx, categories, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr, "cache", cfg.CacheBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()
	return srv.Shutdown(shutdownCtx)
}

// watchCacheReset drops every cached catalog entry on SIGHUP, e.g. after a
// manual catalog edit.
func watchCacheReset(ctx context.Context, categories *catalogrepo.CategoryRepository, logger *slog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := categories.Clear(ctx); err != nil {
				logger.Error("cache reset failed", "error", err)
				continue
			}
			logger.Info("catalog cache cleared")
		}
	}
}
