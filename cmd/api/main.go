package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bryanwahyu/ia-decifra/internal/application"
	appai "github.com/bryanwahyu/ia-decifra/internal/application/ai"
	"github.com/bryanwahyu/ia-decifra/internal/application/decifra"
	"github.com/bryanwahyu/ia-decifra/internal/config"
	"github.com/bryanwahyu/ia-decifra/internal/infra/ai/openai"
	"github.com/bryanwahyu/ia-decifra/internal/infra/extractor"
	"github.com/bryanwahyu/ia-decifra/internal/infra/httpserver"
	"github.com/bryanwahyu/ia-decifra/internal/middleware"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Warn("configuration incomplete, analysis requests will fail", zap.Error(err))
	}

	client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	metrics := middleware.NewMetrics()

	svc := &decifra.Service{
		Extractor: extractor.New(),
		Analyzer:  appai.NewService(client, cfg.OpenAI.Model, cfg.OpenAI.Timeout),
		Recorder:  metrics,
		Clock:     application.SystemClock{},
		Logger:    logger,
	}

	checkers := map[string]middleware.HealthChecker{
		"config": middleware.CheckFunc(func(context.Context) error { return cfg.Validate() }),
	}

	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(svc, metrics, checkers, logger))

	addr := cfg.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		// leave room for the completion call on top of reading the upload
		WriteTimeout: cfg.OpenAI.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", addr), zap.String("model", cfg.OpenAI.Model))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
