package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"foodapp/agg-svc/internal/service"
	"foodapp/agg-svc/internal/storage"
	"foodapp/config"
)

const consumerGroup = "agg-svc"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if cfg.KafkaBroker == "" || cfg.RedisAddr == "" {
		log.Fatal("KAFKA_BROKER and REDIS_HOST must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg.RedisAddr)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.OrdersTopic, consumerGroup)
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb))
	if err := consumer.Start(ctx); err != nil {
		log.Printf("[agg-svc] consumer exited: %v", err)
	}
}
