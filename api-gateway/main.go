package main

import (
	"net/http"
	"time"

	"rik-restaurant/api-gateway/internal/gateway"
	"rik-restaurant/config"
	"rik-restaurant/logging"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load("8080")
	logging.Setup("api-gateway", cfg.LogLevel, cfg.LogFormat)

	gw := gateway.NewGateway(gateway.Config{
		RestaurantSvcURL: cfg.RestaurantSvcURL,
		ActivitySvcURL:   cfg.ActivitySvcURL,
		FrontendDir:      cfg.FrontendDir,
	}, &http.Client{Timeout: 30 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	handler := logging.Middleware(c.Handler(gw.SetupRoutes()))

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("api-gateway starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("api-gateway stopped")
	}
}
