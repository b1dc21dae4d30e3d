package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/starboard-ai/deal-overview/internal/common"
	"github.com/starboard-ai/deal-overview/internal/gemini"
	"github.com/starboard-ai/deal-overview/internal/server"
	"github.com/starboard-ai/deal-overview/internal/storage"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	// Config, loaded once and passed into constructors; never read again
	// during request handling.
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gateway, err := storage.NewGateway(storage.Config{
		Region:           cfg.S3.Region,
		AccessKey:        cfg.S3.AccessKey,
		SecretKey:        cfg.S3.SecretKey,
		Bucket:           cfg.S3.Bucket,
		Endpoint:         cfg.S3.Endpoint,
		UseSSL:           cfg.S3.UseSSL,
		MaxDocumentBytes: int64(cfg.S3.MaxDocumentMB) << 20,
	}, slogger)
	if err != nil {
		log.Fatalf("creating storage gateway: %v", err)
	}

	extractor := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
		Timeout:     cfg.Gemini.Timeout,
	}, slogger)

	srv := server.New(gateway, extractor, logger)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router(),
	}

	go func() {
		log.Infof("serving on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	log.Info("stopped.")
}
