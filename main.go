package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"workstatus-engine/internal/config"
	"workstatus-engine/internal/handler"
	"workstatus-engine/internal/metrics"
	"workstatus-engine/internal/roster"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.IsDevelopment() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Logger = logger

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("config invalid")
	}

	source, closeSource, err := newSource(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize roster source")
	}
	defer closeSource()

	h := handler.New(source, metrics.New(), handler.Options{
		Location:       cfg.Location(),
		RequestTimeout: cfg.RequestTimeout,
	}, logger)

	srv := &fasthttp.Server{
		Handler:      h.Handle,
		Name:         "workstatus-engine",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  30 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	addr := ":" + strconv.Itoa(cfg.HTTPPort)
	go func() {
		logger.Info().
			Str("addr", addr).
			Str("environment", cfg.Environment).
			Str("roster_source", cfg.RosterSource).
			Str("timezone", cfg.Timezone).
			Msg("work-status engine listening")
		if err := srv.ListenAndServe(addr); err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-sigCh
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}

func newSource(cfg *config.Config, logger zerolog.Logger) (roster.Source, func(), error) {
	noop := func() {}
	switch strings.ToLower(cfg.RosterSource) {
	case config.SourceHTTP:
		return roster.NewHTTPSource(cfg.RosterURL, cfg.RosterHTTPTimeout, logger), noop, nil
	case config.SourcePostgres:
		src, err := roster.NewPostgresSource(cfg.DatabaseURL, cfg.RosterTable, logger)
		if err != nil {
			return nil, noop, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := src.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("postgres roster not reachable yet")
		}
		return src, func() { _ = src.Close() }, nil
	case config.SourceFile:
		return roster.NewFileSource(cfg.RosterFile, logger), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown roster source %q", cfg.RosterSource)
}
