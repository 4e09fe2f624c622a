// Package acquire implements the text acquisition stage: it turns a raw
// request (text or image) into whitespace-normalized plain text plus a
// confidence score.
package acquire

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"appointment-intake-service/internal/models"
	"appointment-intake-service/internal/service/ocr"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Result is the acquired text. Confidence is 1.0 for direct text input and
// the engine's reported score for image input.
type Result struct {
	Text       string
	Confidence float64
}

// Acquirer resolves raw input to plain text, delegating image input to an
// OCR engine.
type Acquirer struct {
	engine ocr.Engine
}

// New creates an Acquirer backed by the given OCR engine.
func New(engine ocr.Engine) *Acquirer {
	return &Acquirer{engine: engine}
}

// Acquire returns the plain text for the input. Text input is passed through
// at confidence 1.0 with no recognition work. Image input is recognized by
// the engine; a recognition failure is returned as an error, a low-confidence
// result is not.
func (a *Acquirer) Acquire(ctx context.Context, in models.RawInput) (Result, error) {
	if in.Text != "" {
		return Result{Text: CleanText(in.Text), Confidence: 1.0}, nil
	}

	if len(in.ImageBytes) == 0 {
		return Result{}, nil
	}

	rec, err := a.engine.Recognize(ctx, in.ImageBytes)
	if err != nil {
		return Result{}, fmt.Errorf("ocr recognition failed: %w", err)
	}

	return Result{Text: CleanText(rec.Text), Confidence: rec.Confidence}, nil
}

// CleanText collapses consecutive whitespace to single spaces and trims.
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
