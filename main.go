package main

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retoque/internal/adapters/generator"
	"retoque/internal/adapters/httpserver"
	"retoque/internal/core/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting retoque...")

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.listen_addr", ":8080")
	viper.SetDefault("gemini.model", "gemini-2.5-flash-image-preview")
	viper.SetDefault("edit.timeout", "2m")
	viper.SetDefault("session.ttl", "1h")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Warn().Msg("no config file found, using defaults and environment")
	}

	if err := viper.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		log.Fatal().Err(err).Msg("could not bind API key environment variable")
	}

	var logLevel zerolog.Level

	switch viper.GetString("app.log_level") {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		log.Fatal().Msg("generation API key not configured (gemini.api_key or GEMINI_API_KEY)")
	}

	gemini, err := generator.NewGemini(ctx, apiKey, viper.GetString("gemini.model"), "")
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing gemini generator")
	}

	editTimeout, err := time.ParseDuration(viper.GetString("edit.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for edit requests in config")
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("session.ttl"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid session TTL in config")
	}

	store := service.NewMemoryStore(ctx, sessionTTL)
	controller := service.NewController(gemini, editTimeout)

	srv, err := httpserver.NewServer(store, controller, cookieSecret())
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing http server")
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	addr := viper.GetString("app.listen_addr")
	log.Info().Str("addr", addr).Msg("server listening")

	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
}

func cookieSecret() []byte {
	if secret := viper.GetString("session.cookie_secret"); secret != "" {
		return []byte(secret)
	}

	log.Warn().Msg("no cookie secret configured, generating an ephemeral one")

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatal().Err(err).Msg("could not generate cookie secret")
	}

	return secret
}
