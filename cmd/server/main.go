package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/phishwise/phishwise/internal/adapters/assistant"
	"github.com/phishwise/phishwise/internal/adapters/httpapi"
	"github.com/phishwise/phishwise/internal/application"
	"github.com/phishwise/phishwise/internal/config"
	"github.com/phishwise/phishwise/internal/corpus"
	"github.com/phishwise/phishwise/internal/domain/classify"
	"github.com/phishwise/phishwise/internal/ports"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	store, err := corpus.Open(cfg.CorpusDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.CorpusDir).Msg("failed to load example corpus")
	}

	var chat ports.ChatProvider
	if cfg.OpenAIAPIKey != "" {
		client, err := assistant.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure assistant")
		}
		chat = client
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, chat assistant disabled")
	}

	service := application.NewAnalysisService(classify.New(), store, chat, log)
	server := httpapi.New(service, log)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
