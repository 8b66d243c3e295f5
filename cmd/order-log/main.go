package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/config"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/consumer"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/logging"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// This binary exists to print events, so info is the floor.
	level := cfg.Log.Level
	if level == "warn" || level == "error" {
		level = "info"
	}
	logger, err := logging.New(level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mq, err := messaging.NewRabbitMQ(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, logger)
	if err != nil {
		logger.Fatal("failed to connect to RabbitMQ", zap.Error(err))
	}
	defer mq.Close()

	if err := mq.DeclareQueue(cfg.RabbitMQ.Queue); err != nil {
		logger.Fatal("failed to declare queue", zap.Error(err))
	}

	messages, err := mq.Consume(cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal("failed to consume messages", zap.Error(err))
	}

	consumer.NewOrderLogConsumer(logger).Run(ctx, messages)
	logger.Info("order log stopped")
}
