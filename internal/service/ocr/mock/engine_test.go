package mock

import (
	"context"
	"errors"
	"testing"
)

func TestEngine_CyclesThroughScans(t *testing.T) {
	scans := []SimulatedScan{
		{Text: "first", Confidence: 0.9},
		{Text: "second", Confidence: 0.8},
	}
	e := NewWithScans(scans)
	ctx := context.Background()

	for i, want := range []string{"first", "second", "first"} {
		res, err := e.Recognize(ctx, nil)
		if err != nil {
			t.Fatalf("Recognize %d: unexpected error: %v", i, err)
		}
		if res.Text != want {
			t.Errorf("Recognize %d: expected text %q, got %q", i, want, res.Text)
		}
	}
}

func TestEngine_ReportsConfidence(t *testing.T) {
	e := NewWithScans([]SimulatedScan{{Text: "x", Confidence: 0.42}})

	res, err := e.Recognize(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Confidence != 0.42 {
		t.Errorf("expected confidence 0.42, got %v", res.Confidence)
	}
}

func TestEngine_FailWith(t *testing.T) {
	e := New()
	wantErr := errors.New("engine crashed")
	e.FailWith(wantErr)

	_, err := e.Recognize(context.Background(), []byte{0x1})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected injected error, got %v", err)
	}
}

func TestEngine_EmptyScans(t *testing.T) {
	e := NewWithScans(nil)

	res, err := e.Recognize(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "" || res.Confidence != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}
