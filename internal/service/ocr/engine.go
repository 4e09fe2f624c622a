// Package ocr defines the interface for optical character recognition engines.
package ocr

import "context"

// Result is the recognizer's output: the recognized text and the engine's
// reported confidence scaled to [0,1].
type Result struct {
	Text       string
	Confidence float64
}

// Engine defines the interface for OCR providers (Google Vision, Tesseract, etc.).
type Engine interface {
	// Recognize extracts text from the given image bytes.
	// A low-confidence result is a valid result; Recognize returns an error
	// only when decoding or recognition itself fails.
	Recognize(ctx context.Context, image []byte) (Result, error)

	// Close releases engine resources.
	Close() error
}
