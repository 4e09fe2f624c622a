package events

import (
	"context"
	"testing"

	"appointment-intake-service/internal/models"
)

func TestNew_DisabledMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"disabled", &Config{Enabled: false, Brokers: []string{"localhost:9092"}}},
		{"no brokers", &Config{Enabled: true, Brokers: []string{}}},
		{"empty brokers", &Config{Enabled: true, Brokers: nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.cfg)
			if p == nil {
				t.Fatal("expected non-nil publisher")
			}
			if p.enabled {
				t.Error("expected publisher to be disabled")
			}
			if p.writerBooked != nil {
				t.Error("expected nil booked writer when disabled")
			}
			if p.writerClarify != nil {
				t.Error("expected nil clarification writer when disabled")
			}
		})
	}
}

func TestNew_NilConfig(t *testing.T) {
	p := New(nil)
	if p == nil {
		t.Fatal("expected non-nil publisher")
	}
	if p.enabled {
		t.Error("expected publisher to be disabled for nil config")
	}
}

func TestNew_ConfigValues(t *testing.T) {
	cfg := &Config{
		Enabled:      false,
		Brokers:      []string{"localhost:9092"},
		TopicBooked:  "appointments.booked",
		TopicClarify: "appointments.clarification",
		Principal:    "svc-appointment-intake",
	}

	p := New(cfg)

	if p.principal != "svc-appointment-intake" {
		t.Errorf("expected principal 'svc-appointment-intake', got %s", p.principal)
	}
	if p.topicBooked != "appointments.booked" {
		t.Errorf("expected topic booked 'appointments.booked', got %s", p.topicBooked)
	}
	if p.topicClarify != "appointments.clarification" {
		t.Errorf("expected topic clarify 'appointments.clarification', got %s", p.topicClarify)
	}
}

func TestPublisher_PublishBooked_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false})

	event := models.AppointmentBooked{
		EventType:     "appointment.booked",
		CorrelationID: "req-123",
		Appointment: models.Appointment{
			Department: "Cardiology",
			Date:       "2026-01-16",
			Time:       "10:00",
			TZ:         "Asia/Kolkata",
		},
		Confidence: 0.95,
	}

	if err := p.PublishBooked(context.Background(), "req-123", event); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestPublisher_PublishClarification_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false})

	event := models.ClarificationRequested{
		EventType:     "appointment.clarification",
		CorrelationID: "req-456",
		RawText:       "see you soon",
	}

	if err := p.PublishClarification(context.Background(), "req-456", event); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestPublisher_Publish_InvalidJSON(t *testing.T) {
	p := New(&Config{Enabled: false})

	// Create an unmarshalable value (channel)
	event := make(chan int)

	if err := p.PublishBooked(context.Background(), "test-key", event); err == nil {
		t.Error("expected error for unmarshalable booked event")
	}
	if err := p.PublishClarification(context.Background(), "test-key", event); err == nil {
		t.Error("expected error for unmarshalable clarification event")
	}
}

func TestPublisher_Close_NoWriters(t *testing.T) {
	p := New(&Config{Enabled: false})

	if err := p.Close(); err != nil {
		t.Errorf("expected no error closing disabled publisher, got %v", err)
	}
}

func TestPublisher_Close_NilPublisher(t *testing.T) {
	p := &Publisher{
		writerBooked:  nil,
		writerClarify: nil,
	}

	if err := p.Close(); err != nil {
		t.Errorf("expected no error closing publisher with nil writers, got %v", err)
	}
}
