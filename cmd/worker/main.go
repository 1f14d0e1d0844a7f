// Worker consumes activity events from Kafka and pushes them to Loki.
// Requires KAFKA_BROKERS and LOKI_URL; ACTIVITY_KAFKA_TOPIC and KAFKA_GROUP_ID have defaults.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"projectboard/internal/config"
	"projectboard/internal/logging"
	"projectboard/internal/telemetry/loki"
)

const pushTimeout = 10 * time.Second

// messageReader is the part of *kafka.Reader used by consume.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// eventPusher is the part of *loki.Client used by consume.
type eventPusher interface {
	PushEventJSON(ctx context.Context, rawJSON []byte) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := logging.Install(logging.New(os.Stdout, cfg.SlogLevel()))

	brokers := cfg.KafkaBrokersList()
	if len(brokers) == 0 {
		logger.Error("worker: KAFKA_BROKERS is required")
		os.Exit(1)
	}
	if cfg.LokiURL == "" {
		logger.Error("worker: LOKI_URL is required")
		os.Exit(1)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          cfg.ActivityKafkaTopic,
		GroupID:        cfg.KafkaGroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        time.Second,
		CommitInterval: time.Second,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("worker: consuming",
		"topic", cfg.ActivityKafkaTopic,
		"group", cfg.KafkaGroupID,
		"loki", cfg.LokiURL)
	consume(ctx, reader, loki.NewClient(cfg.LokiURL, "projectboard"), logger)
	logger.Info("worker: stopped")
}

// consume forwards messages until ctx is cancelled. Read and push failures are logged and skipped.
func consume(ctx context.Context, reader messageReader, pusher eventPusher, logger *slog.Logger) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			logger.Warn("worker: kafka read failed", "error", err)
			continue
		}
		pushCtx, cancel := context.WithTimeout(ctx, pushTimeout)
		if err := pusher.PushEventJSON(pushCtx, msg.Value); err != nil {
			logger.Warn("worker: loki push failed", "offset", msg.Offset, "error", err)
		}
		cancel()
	}
}
