// Appointment Viewer - console display of intake events
// Consumes booked and clarification topics and prints them as they arrive
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Appointment mirrors the structured record published by the intake service.
type Appointment struct {
	Department string `json:"department"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	TZ         string `json:"tz"`
}

// IntakeEvent covers both event shapes; unused fields stay zero.
type IntakeEvent struct {
	EventType     string       `json:"eventType"`
	CorrelationID string       `json:"correlationId"`
	Timestamp     int64        `json:"timestamp"`
	Appointment   *Appointment `json:"appointment,omitempty"`
	RawText       string       `json:"rawText,omitempty"`
	Confidence    float64      `json:"confidence,omitempty"`
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func consumeKafka(ctx context.Context, brokers, topic string) {
	// Use partition reader without consumer group (works better through port-forward)
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   strings.Split(brokers, ","),
		Topic:     topic,
		Partition: 0, // Read from partition 0 only (simplest for demo)
		MinBytes:  1,
		MaxBytes:  10e6,
	})
	defer reader.Close()

	// Start from the last hour of messages
	reader.SetOffsetAt(ctx, time.Now().Add(-1*time.Hour))

	log.Printf("Consuming from Kafka topic: %s partition 0 (last hour)", topic)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("Kafka read error on %s: %v", topic, err)
				time.Sleep(time.Second)
				continue
			}

			var event IntakeEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("JSON unmarshal error: %v", err)
				continue
			}

			printEvent(event)
		}
	}
}

func printEvent(event IntakeEvent) {
	when := time.UnixMilli(event.Timestamp).Format(time.RFC3339)
	switch {
	case event.Appointment != nil:
		log.Printf("[%s] %s  %s on %s at %s (%s)  confidence=%.2f  correlationId=%s",
			when, event.EventType,
			event.Appointment.Department, event.Appointment.Date,
			event.Appointment.Time, event.Appointment.TZ,
			event.Confidence, event.CorrelationID)
	default:
		log.Printf("[%s] %s  %q  confidence=%.2f  correlationId=%s",
			when, event.EventType, truncate(event.RawText, 60),
			event.Confidence, event.CorrelationID)
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "Kafka brokers (comma-separated)")
	topicBooked := flag.String("topic-booked", "appointments.booked", "Booked appointments topic")
	topicClarify := flag.String("topic-clarify", "appointments.clarification", "Clarification requests topic")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumeKafka(ctx, *brokers, *topicBooked)
	go consumeKafka(ctx, *brokers, *topicClarify)

	log.Printf("Appointment Viewer started")
	log.Printf("   Kafka brokers: %s", *brokers)
	log.Printf("   Topics: %s, %s", *topicBooked, *topicClarify)

	select {}
}
