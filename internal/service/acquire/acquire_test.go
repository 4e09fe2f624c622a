package acquire

import (
	"context"
	"errors"
	"testing"

	"appointment-intake-service/internal/models"
	"appointment-intake-service/internal/service/ocr/mock"
)

func TestAcquire_TextPassthrough(t *testing.T) {
	a := New(mock.New())

	res, err := a.Acquire(context.Background(), models.RawInput{Text: "Book dentist next Friday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Book dentist next Friday" {
		t.Errorf("expected text unchanged, got %q", res.Text)
	}
	if res.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0 for text input, got %v", res.Confidence)
	}
}

func TestAcquire_TextWhitespaceNormalized(t *testing.T) {
	a := New(mock.New())

	res, err := a.Acquire(context.Background(), models.RawInput{Text: "  Book\tdentist \n next   Friday  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Book dentist next Friday" {
		t.Errorf("expected whitespace collapsed, got %q", res.Text)
	}
}

func TestAcquire_ImageUsesEngine(t *testing.T) {
	engine := mock.NewWithScans([]mock.SimulatedScan{
		{Text: " Book   cardiology\ntomorrow ", Confidence: 0.87},
	})
	a := New(engine)

	res, err := a.Acquire(context.Background(), models.RawInput{ImageBytes: []byte{0x89, 0x50}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Book cardiology tomorrow" {
		t.Errorf("expected recognized text cleaned, got %q", res.Text)
	}
	if res.Confidence != 0.87 {
		t.Errorf("expected engine confidence 0.87, got %v", res.Confidence)
	}
}

func TestAcquire_EngineFailurePropagates(t *testing.T) {
	engine := mock.New()
	engineErr := errors.New("corrupt image")
	engine.FailWith(engineErr)
	a := New(engine)

	_, err := a.Acquire(context.Background(), models.RawInput{ImageBytes: []byte{0xff}})
	if err == nil {
		t.Fatal("expected error from failing engine")
	}
	if !errors.Is(err, engineErr) {
		t.Errorf("expected wrapped engine error, got %v", err)
	}
}

func TestAcquire_EmptyInput(t *testing.T) {
	a := New(mock.New())

	res, err := a.Acquire(context.Background(), models.RawInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "" || res.Confidence != 0 {
		t.Errorf("expected empty result for empty input, got %+v", res)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"tabs and newlines", "a\t\tb\nc", "a b c"},
		{"leading and trailing", "  x  ", "x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
