package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"relay/internal/content"
	"relay/internal/forward"
	"relay/internal/http/handlers"
	"relay/internal/http/httpapi"
	"relay/internal/infra"
	"relay/internal/n8n"
	"relay/internal/store"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	encoding, err := forward.ParseEncoding(cfg.FormEncoding)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid FORM_ENCODING")
	}

	jobs := store.NewMemoryStore()
	generator := content.NewGenerator(content.Options{})
	attempter := forward.NewAttempter(forward.Options{
		SharedSecret:   cfg.FormSharedSecret,
		RequestTimeout: cfg.ForwardTimeout,
		Logger:         &logger,
	})
	client := n8n.NewClient(n8n.Options{
		BaseURL: cfg.N8NBaseURL,
		APIKey:  cfg.N8NAPIKey,
		Timeout: cfg.ForwardTimeout,
		Logger:  &logger,
	})

	app := handlers.NewApp(cfg, logger, jobs, generator, attempter, client, encoding)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
