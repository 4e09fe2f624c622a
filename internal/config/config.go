// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// ServiceConfig holds core service settings.
type ServiceConfig struct {
	Principal   string
	HTTPPort    string
	MetricsPort string
	LogLevel    string
	LogFormat   string
}

// OCRConfig holds OCR engine settings.
type OCRConfig struct {
	Provider     string // "mock" or "google"
	LanguageHint string
}

// LimitsConfig holds request guardrails.
type LimitsConfig struct {
	RequestsPerMinute int
	OCRPerMinute      int
}

// KafkaConfig holds event publishing settings.
type KafkaConfig struct {
	Enabled      bool
	Brokers      []string
	TopicBooked  string
	TopicClarify string
	Principal    string
}

// Config is the full service configuration.
type Config struct {
	Service ServiceConfig
	OCR     OCRConfig
	Limits  LimitsConfig
	Kafka   KafkaConfig
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development (mock OCR, Kafka disabled).
func Load() *Config {
	return &Config{
		Service: ServiceConfig{
			Principal:   envOrDefault("SERVICE_PRINCIPAL", "svc-appointment-intake"),
			HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
			MetricsPort: envOrDefault("METRICS_PORT", "9090"),
			LogLevel:    envOrDefault("LOG_LEVEL", "info"),
			LogFormat:   envOrDefault("LOG_FORMAT", "json"),
		},
		OCR: OCRConfig{
			Provider:     envOrDefault("OCR_PROVIDER", "mock"),
			LanguageHint: envOrDefault("OCR_LANGUAGE_HINT", "en"),
		},
		Limits: LimitsConfig{
			RequestsPerMinute: envIntOrDefault("RATE_LIMIT_PER_MINUTE", 30),
			OCRPerMinute:      envIntOrDefault("OCR_RATE_LIMIT_PER_MINUTE", 10),
		},
		Kafka: KafkaConfig{
			Enabled:      envBoolOrDefault("KAFKA_ENABLED", false),
			Brokers:      envListOrDefault("KAFKA_BROKERS", nil),
			TopicBooked:  envOrDefault("KAFKA_TOPIC_BOOKED", "appointments.booked"),
			TopicClarify: envOrDefault("KAFKA_TOPIC_CLARIFY", "appointments.clarification"),
			Principal:    envOrDefault("KAFKA_PRINCIPAL", "svc-appointment-intake"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBoolOrDefault(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envListOrDefault(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return def
}
