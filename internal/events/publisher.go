// Package events provides event publishing functionality.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"appointment-intake-service/internal/observability/metrics"
)

// Publisher publishes appointment events to separate Kafka topics.
type Publisher struct {
	writerBooked  *kafka.Writer
	writerClarify *kafka.Writer
	principal     string
	topicBooked   string
	topicClarify  string
	enabled       bool
	metrics       *metrics.Metrics
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers      []string
	TopicBooked  string
	TopicClarify string
	Principal    string
	Enabled      bool
}

// New creates a new Kafka event publisher with separate topics for booked
// appointments and clarification requests.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics

	// Handle nil config case
	if cfg == nil {
		log.Info().Msg("Kafka disabled (nil config), using log-only mode")
		return &Publisher{
			enabled: false,
			metrics: m,
		}
	}

	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, using log-only mode")
		return &Publisher{
			principal:    cfg.Principal,
			topicBooked:  cfg.TopicBooked,
			topicClarify: cfg.TopicClarify,
			enabled:      false,
			metrics:      m,
		}
	}

	// Create a custom dialer with longer timeouts for DNS resolution in Kubernetes
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	transport := &kafka.Transport{
		Dial: dialer.DialFunc,
	}

	// Writer for booked appointments
	writerBooked := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicBooked,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	// Writer for clarification requests
	writerClarify := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicClarify,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topicBooked", cfg.TopicBooked).
		Str("topicClarify", cfg.TopicClarify).
		Str("principal", cfg.Principal).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writerBooked:  writerBooked,
		writerClarify: writerClarify,
		principal:     cfg.Principal,
		topicBooked:   cfg.TopicBooked,
		topicClarify:  cfg.TopicClarify,
		enabled:       true,
		metrics:       m,
	}
}

// PublishBooked publishes a booked appointment event to the booked topic.
func (p *Publisher) PublishBooked(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerBooked, p.topicBooked, "booked", key, event)
}

// PublishClarification publishes a clarification request event to the
// clarification topic.
func (p *Publisher) PublishClarification(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerClarify, p.topicClarify, "clarification", key, event)
}

// publish is the internal method that writes to a specific Kafka writer.
func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, topic, eventType, key string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return err
	}

	// Log the event
	log.Debug().
		Str("principal", p.principal).
		Str("topic", topic).
		Str("key", key).
		RawJSON("payload", payload).
		Msg("Publishing event")

	// If Kafka is disabled, just log
	if !p.enabled || writer == nil {
		p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
		return nil
	}

	// Publish to Kafka
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(topic)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to write to Kafka")
		p.metrics.RecordKafkaPublish(topic, eventType, err, time.Since(start).Seconds())
		return err
	}

	p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
	return nil
}

// Close closes both Kafka writers.
func (p *Publisher) Close() error {
	var err error
	if p.writerBooked != nil {
		if e := p.writerBooked.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing booked writer")
			err = e
		}
	}
	if p.writerClarify != nil {
		if e := p.writerClarify.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing clarification writer")
			err = e
		}
	}
	return err
}
