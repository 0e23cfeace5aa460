package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"rik-restaurant/auth"
	"rik-restaurant/config"
	"rik-restaurant/logging"
	httpapi "rik-restaurant/restaurant-svc/internal/api/http"
	"rik-restaurant/restaurant-svc/internal/service"
	"rik-restaurant/restaurant-svc/internal/storage"

	"github.com/rs/zerolog/log"
)

func newStore(cfg *config.Config) storage.Store {
	switch cfg.StoreDriver {
	case "postgres":
		pg := storage.NewPostgresStore(config.MustInitPostgres())
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure kv_store schema")
		}
		return pg
	case "redis":
		return storage.NewRedisStore(config.MustInitRedis(), cfg.RedisNamespace)
	case "sqlite":
		store, err := storage.NewSQLiteStore(config.MustInitSQLite(cfg.SQLitePath))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to migrate sqlite store")
		}
		return store
	case "memory":
		return storage.NewMemoryStore()
	default:
		log.Fatal().Str("driver", cfg.StoreDriver).Msg("unknown STORE_DRIVER")
		return nil
	}
}

func main() {
	cfg := config.Load("8081")
	logging.Setup("restaurant-svc", cfg.LogLevel, cfg.LogFormat)
	if err := cfg.RequireJWTSecret(); err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := storage.NewRepository(newStore(cfg))

	var publisher service.EventPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Info().Msg("KAFKA_BROKER not set, domain events disabled")
	}

	handler := &httpapi.Handler{
		Catalog:  service.NewCatalogService(repo, publisher),
		Carts:    service.NewCartService(repo),
		Bookings: service.NewBookingService(repo, publisher, nil),
		Orders:   service.NewOrderService(repo, repo, publisher),
		Messages: service.NewMessageService(repo, publisher),
		Users:    service.NewUserService(repo, repo, publisher),
		Admin: service.NewAdminService(service.AdminRepositories{
			Users:     repo,
			Bookings:  repo,
			Orders:    repo,
			Inquiries: repo,
			Menu:      repo,
			Carts:     repo,
		}),
		QR: service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL},
	}

	router := httpapi.NewRouter(handler, auth.NewAuthenticator(cfg.JWTSecret))
	if err := httpapi.StartServer(ctx, ":"+cfg.Port, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("restaurant-svc stopped")
	}
}
