package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-leave/internal/config"
	"go-leave/internal/messaging/kafka/producer"
	"go-leave/internal/reconciliation"
	"go-leave/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes the outbox and runs the reconciliation schedule until
// SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	// The worker never serves cached holiday lookups, so it runs without redis.
	svc, err := buildServices(gormDB, nil, cfg, zap.L())
	if err != nil {
		return err
	}

	scheduler, err := reconciliation.NewScheduler(svc.reconciliation, cfg.ReconcileCron, zap.L())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		svc.outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	scheduler.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	// Wait for a run in progress before the database closes.
	<-scheduler.Stop().Done()

	return nil
}
