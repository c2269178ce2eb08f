package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-payledger/internal/config"
	"go-payledger/internal/ledger"
	"go-payledger/internal/live"
	"go-payledger/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker menjalankan poller live payroll: fetch snapshot bulan berjalan
// dari ledger lalu publish event refresh ke Kafka setiap ada snapshot baru.
func RunWorker() error {
	logger := zap.L().Named("app.worker")
	cfg := config.Load()

	ledgerClient := ledger.NewClient(cfg.LedgerBaseURL, nil)

	publisher := live.NewNoopEventPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBrokers, 5)
		if err != nil {
			return err
		}
		defer kafkaWriter.Close()
		publisher = live.NewKafkaEventPublisher(kafkaWriter)
	} else {
		logger.Warn("KAFKA_BROKERS not set, snapshot events are dropped")
	}

	poller := live.NewPoller(
		ledgerClient.LiveCurrentMonth,
		cfg.PollInterval,
		publisher,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := poller.Start(ctx); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	poller.Stop()
	cancel()

	return nil
}
