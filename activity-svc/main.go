package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	httpapi "rik-restaurant/activity-svc/internal/api/http"
	"rik-restaurant/activity-svc/internal/service"
	"rik-restaurant/activity-svc/internal/storage"
	"rik-restaurant/auth"
	"rik-restaurant/config"
	"rik-restaurant/logging"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load("8083")
	logging.Setup("activity-svc", cfg.LogLevel, cfg.LogFormat)
	if err := cfg.RequireJWTSecret(); err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	feed := storage.NewFeed(redisClient, cfg.ActivityFeedSize)
	hub := service.NewHub()

	if cfg.KafkaBroker != "" {
		reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaGroupID)
		defer reader.Close()
		go service.NewConsumer(reader, feed, hub).Start(ctx)
	} else {
		log.Warn().Msg("KAFKA_BROKER not set, activity feed will stay empty")
	}

	handler := httpapi.NewHandler(service.NewActivityService(feed, feed.Size), hub)
	router := httpapi.NewRouter(handler, auth.NewAuthenticator(cfg.JWTSecret))
	if err := httpapi.StartServer(ctx, ":"+cfg.Port, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("activity-svc stopped")
	}
}
