// Package google provides a Google Cloud Vision OCR engine.
package google

import (
	"bytes"
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"appointment-intake-service/internal/service/ocr"
)

// Engine implements ocr.Engine using Google Cloud Vision document text detection.
type Engine struct {
	client       *vision.ImageAnnotatorClient
	languageHint string
}

// New creates a new Google Vision OCR engine.
// Requires GOOGLE_APPLICATION_CREDENTIALS environment variable to be set.
func New(ctx context.Context, languageHint string) (*Engine, error) {
	c, err := vision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, err
	}
	if languageHint == "" {
		languageHint = "en"
	}
	return &Engine{client: c, languageHint: languageHint}, nil
}

// Recognize runs document text detection on the image bytes.
// The engine confidence is the mean page confidence reported by Vision,
// already in [0,1].
func (e *Engine) Recognize(ctx context.Context, image []byte) (ocr.Result, error) {
	img, err := vision.NewImageFromReader(bytes.NewReader(image))
	if err != nil {
		return ocr.Result{}, fmt.Errorf("decode image: %w", err)
	}

	annotation, err := e.client.DetectDocumentText(ctx, img, &visionpb.ImageContext{
		LanguageHints: []string{e.languageHint},
	})
	if err != nil {
		return ocr.Result{}, fmt.Errorf("document text detection: %w", err)
	}
	if annotation == nil {
		// No text found is a valid, empty result.
		return ocr.Result{}, nil
	}

	return ocr.Result{
		Text:       annotation.GetText(),
		Confidence: pageConfidence(annotation.GetPages()),
	}, nil
}

// Close releases the Vision client.
func (e *Engine) Close() error {
	return e.client.Close()
}

func pageConfidence(pages []*visionpb.Page) float64 {
	if len(pages) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pages {
		sum += float64(p.GetConfidence())
	}
	return sum / float64(len(pages))
}
