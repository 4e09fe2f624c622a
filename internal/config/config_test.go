package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVICE_PRINCIPAL", "HTTP_PORT", "METRICS_PORT", "LOG_LEVEL", "LOG_FORMAT",
		"OCR_PROVIDER", "OCR_LANGUAGE_HINT",
		"RATE_LIMIT_PER_MINUTE", "OCR_RATE_LIMIT_PER_MINUTE",
		"KAFKA_ENABLED", "KAFKA_BROKERS", "KAFKA_TOPIC_BOOKED", "KAFKA_TOPIC_CLARIFY", "KAFKA_PRINCIPAL",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	// Service defaults
	if cfg.Service.Principal != "svc-appointment-intake" {
		t.Errorf("expected default principal 'svc-appointment-intake', got %s", cfg.Service.Principal)
	}
	if cfg.Service.HTTPPort != "8080" {
		t.Errorf("expected default HTTP port '8080', got %s", cfg.Service.HTTPPort)
	}
	if cfg.Service.MetricsPort != "9090" {
		t.Errorf("expected default metrics port '9090', got %s", cfg.Service.MetricsPort)
	}

	// OCR defaults
	if cfg.OCR.Provider != "mock" {
		t.Errorf("expected default OCR provider 'mock', got %s", cfg.OCR.Provider)
	}
	if cfg.OCR.LanguageHint != "en" {
		t.Errorf("expected default language hint 'en', got %s", cfg.OCR.LanguageHint)
	}

	// Limits defaults
	if cfg.Limits.RequestsPerMinute != 30 {
		t.Errorf("expected 30 requests/minute, got %d", cfg.Limits.RequestsPerMinute)
	}
	if cfg.Limits.OCRPerMinute != 10 {
		t.Errorf("expected 10 OCR requests/minute, got %d", cfg.Limits.OCRPerMinute)
	}

	// Kafka defaults
	if cfg.Kafka.Enabled {
		t.Error("expected Kafka disabled by default")
	}
	if cfg.Kafka.TopicBooked != "appointments.booked" {
		t.Errorf("expected default booked topic, got %s", cfg.Kafka.TopicBooked)
	}
	if cfg.Kafka.TopicClarify != "appointments.clarification" {
		t.Errorf("expected default clarification topic, got %s", cfg.Kafka.TopicClarify)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("OCR_PROVIDER", "google")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")

	cfg := Load()

	if cfg.Service.HTTPPort != "3000" {
		t.Errorf("expected HTTP port '3000', got %s", cfg.Service.HTTPPort)
	}
	if cfg.OCR.Provider != "google" {
		t.Errorf("expected OCR provider 'google', got %s", cfg.OCR.Provider)
	}
	if cfg.Limits.RequestsPerMinute != 5 {
		t.Errorf("expected 5 requests/minute, got %d", cfg.Limits.RequestsPerMinute)
	}
	if !cfg.Kafka.Enabled {
		t.Error("expected Kafka enabled")
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "broker-1:9092" || cfg.Kafka.Brokers[1] != "broker-2:9092" {
		t.Errorf("expected two trimmed brokers, got %v", cfg.Kafka.Brokers)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("KAFKA_ENABLED", "definitely")

	cfg := Load()

	if cfg.Limits.RequestsPerMinute != 30 {
		t.Errorf("expected fallback to 30 requests/minute, got %d", cfg.Limits.RequestsPerMinute)
	}
	if cfg.Kafka.Enabled {
		t.Error("expected fallback to Kafka disabled for unparsable bool")
	}
}
