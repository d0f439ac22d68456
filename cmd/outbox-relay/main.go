package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/murkotick/storefront-service/internal/config"
	"github.com/murkotick/storefront-service/internal/outbox"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	committer "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/database"
	"github.com/murkotick/storefront-service/internal/pkg/logging"
)

// Publishes pending outbox events (order.placed) to Kafka.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

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
		logger.Error("connect", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	pub, err := outbox.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderEventsTopic)
	if err != nil {
		logger.Error("kafka publisher", "error", err)
		os.Exit(1)
	}
	defer pub.Close()

	relay := &outbox.Relay{
		Source:    &outbox.SpannerSource{Client: client},
		Publisher: pub,
		Committer: committer.NewAdapter(client),
		Clock:     clock.RealClock{},
		Logger:    logger,
		BatchSize: cfg.OutboxBatchSize,
		Interval:  cfg.OutboxPollInterval,
	}

	logger.Info("outbox relay started", "topic", cfg.OrderEventsTopic, "brokers", cfg.KafkaBrokers)
	if err := relay.Run(ctx); err != nil {
		logger.Error("outbox relay", "error", err)
		os.Exit(1)
	}
	logger.Info("outbox relay stopped")
}
