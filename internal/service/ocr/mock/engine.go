// Package mock provides a mock OCR engine for running without cloud credentials.
// It cycles through canned scan results so the pipeline can be exercised
// end to end in tests and local development.
package mock

import (
	"context"
	"sync"

	"appointment-intake-service/internal/service/ocr"
)

// SimulatedScan represents one canned recognition result.
type SimulatedScan struct {
	Text       string
	Confidence float64
}

// DefaultScans provides sample scans for simulation.
var DefaultScans = []SimulatedScan{
	{Text: "Book cardiology tomorrow at 10am", Confidence: 0.93},
	{Text: "Schedule orthopedics visit on January 20th at 11:30am", Confidence: 0.88},
	{Text: "Need a dentist appointment next Friday at 3pm", Confidence: 0.91},
	{Text: "eye doctor checkup in 3 days", Confidence: 0.84},
	{Text: "please call me back", Confidence: 0.79},
}

// Engine implements ocr.Engine with canned responses.
type Engine struct {
	mu    sync.Mutex
	scans []SimulatedScan
	next  int
	fail  error
}

// New creates a mock engine cycling through DefaultScans.
func New() *Engine {
	return &Engine{scans: DefaultScans}
}

// NewWithScans creates a mock engine with a fixed set of scans.
func NewWithScans(scans []SimulatedScan) *Engine {
	return &Engine{scans: scans}
}

// FailWith makes every subsequent Recognize call return err.
func (e *Engine) FailWith(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fail = err
}

// Recognize returns the next canned scan, ignoring the image bytes.
func (e *Engine) Recognize(ctx context.Context, image []byte) (ocr.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.fail != nil {
		return ocr.Result{}, e.fail
	}
	if len(e.scans) == 0 {
		return ocr.Result{}, nil
	}

	scan := e.scans[e.next%len(e.scans)]
	e.next++
	return ocr.Result{Text: scan.Text, Confidence: scan.Confidence}, nil
}

// Close is a no-op for the mock engine.
func (e *Engine) Close() error {
	return nil
}
