package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hbalmes/webtoapp-api/api/app"
	"github.com/hbalmes/webtoapp-api/api/configs"
	"github.com/hbalmes/webtoapp-api/api/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	config := configs.Load()
	logger.Init(config.Scope, config.LogLevel)

	if err := config.RequireRepository(); err != nil {
		log.Warn().Msg("GITHUB_REPOSITORY is not set, every request will fail with a configuration error")
	} else if !config.HasCredentials() {
		log.Warn().Msg("GITHUB_PAT is not set, only release listing is available")
	}

	srv := &http.Server{
		Addr:    ":" + config.Port,
		Handler: app.NewRouter(config),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", srv.Addr).Str("repository", config.GithubRepository).Msg("api server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen error")
		}
	}()

	<-stop
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
