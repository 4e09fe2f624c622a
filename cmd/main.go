package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointment-intake-service/internal/app"
	"appointment-intake-service/internal/config"
	"appointment-intake-service/internal/events"
	httpapi "appointment-intake-service/internal/http"
	"appointment-intake-service/internal/observability"
	"appointment-intake-service/internal/service/acquire"
	"appointment-intake-service/internal/service/extract"
	"appointment-intake-service/internal/service/intake"
	"appointment-intake-service/internal/service/normalize"
	"appointment-intake-service/internal/service/ocr"
	"appointment-intake-service/internal/service/ocr/google"
	"appointment-intake-service/internal/service/ocr/mock"
)

func main() {
	cfg := config.Load()

	application := app.New(cfg)
	if err := application.Start(); err != nil {
		log.Fatalf("application start failed: %v", err)
	}
	defer application.Shutdown()

	// Create Kafka publisher with separate topics for booked appointments
	// and clarification requests
	publisher := events.New(&events.Config{
		Enabled:      cfg.Kafka.Enabled,
		Brokers:      cfg.Kafka.Brokers,
		TopicBooked:  cfg.Kafka.TopicBooked,
		TopicClarify: cfg.Kafka.TopicClarify,
		Principal:    cfg.Kafka.Principal,
	})
	defer publisher.Close()

	engine, err := newEngine(cfg)
	if err != nil {
		log.Fatalf("ocr engine init failed: %v", err)
	}
	defer engine.Close()

	pipeline := intake.New(acquire.New(engine), extract.New(), normalize.New(), publisher)

	router := httpapi.NewRouter(pipeline, httpapi.RouterConfig{
		RequestsPerMinute: cfg.Limits.RequestsPerMinute,
		OCRPerMinute:      cfg.Limits.OCRPerMinute,
	})

	// Metrics and health endpoints on a separate port
	obsServer := observability.NewServer(":" + cfg.Service.MetricsPort)
	obsServer.Start()

	server := &http.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		application.Logger.Info().Str("addr", server.Addr).Msg("Appointment intake service started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	application.Logger.Info().Msg("Shutting down HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		application.Logger.Error().Err(err).Msg("HTTP server shutdown error")
	}
	if err := obsServer.Shutdown(ctx); err != nil {
		application.Logger.Error().Err(err).Msg("Observability server shutdown error")
	}
}

// newEngine selects the OCR engine from configuration.
func newEngine(cfg *config.Config) (ocr.Engine, error) {
	switch cfg.OCR.Provider {
	case "google":
		return google.New(context.Background(), cfg.OCR.LanguageHint)
	default:
		return mock.New(), nil
	}
}
