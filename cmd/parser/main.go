package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MichalMitros/frame-order-parser/cmd/parser/app"
	"github.com/MichalMitros/frame-order-parser/cmd/parser/config"
	"github.com/MichalMitros/frame-order-parser/internal/dedupe"
	"github.com/MichalMitros/frame-order-parser/internal/handler"
	"github.com/MichalMitros/frame-order-parser/internal/platform/rabbitmq"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("level", cfg.LogLevel).
			Msg("can't parse log level")
	}
	logger = logger.Level(level)

	registry, err := app.LoadRegistry(&cfg)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't load vendor registry")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	emails, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}
	if err := emails.Declare(cfg.RabbitMQ.Queue, cfg.RabbitMQ.EmailRoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare emails queue")
	}

	inventory, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}
	if err := inventory.Declare(cfg.RabbitMQ.InventoryQueue, cfg.RabbitMQ.InventoryRoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare inventory queue")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}
	store := app.NewStorage(&cfg, pgDB)

	proc, err := app.NewProcessor(&cfg, registry, store, &http.Client{Timeout: cfg.HTTPTimeout}, &logger)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't build processing pipeline")
	}

	var handlerOps []handler.Option
	if cfg.Redis.Addr != "" {
		pool := dedupe.NewPool(cfg.Redis.Addr)
		defer pool.Close()
		handlerOps = append(handlerOps, handler.WithDeduper(dedupe.NewRedis(pool, cfg.Redis.DedupeTTL)))
	}

	han := handler.NewHandler(
		proc,
		store,
		emails,
		handler.RoutingKeys{
			Parsed: cfg.RabbitMQ.ParsedRoutingKey,
			Review: cfg.RabbitMQ.ReviewRoutingKey,
		},
		&logger,
		handlerOps...,
	)

	// start consuming and handling messages
	if err := han.Start(ctx, emails, cfg.RabbitMQ.Queue, han.HandleEmail); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming emails")
	}
	if err := han.Start(ctx, inventory, cfg.RabbitMQ.InventoryQueue, han.HandleInventory); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming inventory commands")
	}

	logger.Info().
		Int("vendors", len(registry.Active())).
		Msg("frame order parser up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumers to finish
	<-emails.Done()
	<-inventory.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
