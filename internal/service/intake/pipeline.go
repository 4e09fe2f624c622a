// Package intake provides the pipeline orchestrator that coordinates text
// acquisition, entity extraction, and timezone normalization, and applies
// the ambiguity gate.
package intake

import (
	"context"
	"time"

	"appointment-intake-service/internal/events"
	"appointment-intake-service/internal/models"
	"appointment-intake-service/internal/observability/logging"
	"appointment-intake-service/internal/observability/metrics"
	"appointment-intake-service/internal/service/acquire"
	"appointment-intake-service/internal/service/extract"
)

// Messages carried on business outcomes.
const (
	msgNoInput   = "No input provided"
	msgAmbiguous = "Ambiguous date/time or department"
)

// Confidence assigned to a successful normalization. Not data-dependent:
// any successfully parsed instant normalizes deterministically.
const normalizationConfidence = 0.95

// TextAcquirer resolves raw input to plain text plus a confidence score.
type TextAcquirer interface {
	Acquire(ctx context.Context, in models.RawInput) (acquire.Result, error)
}

// EntityExtractor finds a department and a date/time expression in text.
type EntityExtractor interface {
	Extract(text string, ref time.Time) extract.Result
}

// Normalizer converts an absolute instant into the target timezone.
type Normalizer interface {
	Normalize(t time.Time) models.NormalizedDateTime
}

// Pipeline sequences the three stages and assembles the final result.
// Stateless between requests; safe for concurrent use.
type Pipeline struct {
	acquirer   TextAcquirer
	extractor  EntityExtractor
	normalizer Normalizer
	publisher  *events.Publisher
	metrics    *metrics.Metrics
	now        func() time.Time
}

// New creates a Pipeline. The publisher may be a disabled (log-only)
// publisher; events are best-effort and never fail a request.
func New(acquirer TextAcquirer, extractor EntityExtractor, normalizer Normalizer, publisher *events.Publisher) *Pipeline {
	return &Pipeline{
		acquirer:   acquirer,
		extractor:  extractor,
		normalizer: normalizer,
		publisher:  publisher,
		metrics:    metrics.DefaultMetrics,
		now:        time.Now,
	}
}

// WithClock overrides the reference clock used to resolve relative date
// phrases. Intended for tests.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Process runs one request through the pipeline. Business outcomes
// (error/needs_clarification) are returned as values in the result; only
// stage faults (such as an OCR engine failure) are returned as an error.
func (p *Pipeline) Process(ctx context.Context, in models.RawInput, correlationID string) (models.PipelineResult, error) {
	start := p.now()
	logger := logging.WithRequest(correlationID)

	if in.Empty() {
		p.metrics.RecordRequest(models.StatusError, time.Since(start).Seconds())
		return errorResult(msgNoInput, correlationID), nil
	}

	// Step 1: text acquisition
	acquireStart := p.now()
	acquired, err := p.acquirer.Acquire(ctx, in)
	if len(in.ImageBytes) > 0 {
		p.metrics.RecordOCR(acquired.Confidence, err)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Text acquisition failed")
		return models.PipelineResult{}, err
	}
	p.metrics.RecordStage("acquire", time.Since(acquireStart).Seconds())

	if acquired.Text == "" {
		p.metrics.RecordRequest(models.StatusError, time.Since(start).Seconds())
		return errorResult(msgNoInput, correlationID), nil
	}

	ocrReport := &models.OCRReport{RawText: acquired.Text, Confidence: acquired.Confidence}

	// Step 2: entity extraction
	extractStart := p.now()
	extracted := p.extractor.Extract(acquired.Text, p.now())
	p.metrics.RecordStage("extract", time.Since(extractStart).Seconds())
	p.metrics.RecordExtraction(extracted.Confidence, extracted.Entities.Department)

	extractionReport := &models.ExtractionReport{
		Entities:   extracted.Entities,
		Confidence: extracted.Confidence,
	}

	// Ambiguity gate
	if extracted.Entities.Department == "" || extracted.Entities.ParsedDate == nil {
		logger.Info().
			Str("department", extracted.Entities.Department).
			Bool("hasInstant", extracted.Entities.ParsedDate != nil).
			Msg("Request needs clarification")
		p.metrics.RecordAmbiguous()
		p.metrics.RecordRequest(models.StatusNeedsClarification, time.Since(start).Seconds())

		p.publishClarification(ctx, correlationID, acquired.Text, extracted)

		return models.PipelineResult{
			Step1OCR:        ocrReport,
			Step2Extraction: extractionReport,
			Status:          models.StatusNeedsClarification,
			Message:         msgAmbiguous,
			CorrelationID:   correlationID,
		}, nil
	}

	// Step 3: normalization
	normalizeStart := p.now()
	normalized := p.normalizer.Normalize(*extracted.Entities.ParsedDate)
	p.metrics.RecordStage("normalize", time.Since(normalizeStart).Seconds())

	appointment := &models.Appointment{
		Department: capitalize(extracted.Entities.Department),
		Date:       normalized.Date,
		Time:       normalized.Time,
		TZ:         normalized.TZ,
	}

	logger.Info().
		Str("department", appointment.Department).
		Str("date", appointment.Date).
		Str("time", appointment.Time).
		Msg("Appointment resolved")
	p.metrics.RecordRequest(models.StatusOK, time.Since(start).Seconds())

	p.publishBooked(ctx, correlationID, *appointment, extracted.Confidence)

	return models.PipelineResult{
		Step1OCR:        ocrReport,
		Step2Extraction: extractionReport,
		Step3Normalization: &models.NormalizationReport{
			Normalized: normalized,
			Confidence: normalizationConfidence,
		},
		Appointment:   appointment,
		Status:        models.StatusOK,
		CorrelationID: correlationID,
	}, nil
}

func (p *Pipeline) publishBooked(ctx context.Context, correlationID string, appt models.Appointment, confidence float64) {
	if p.publisher == nil {
		return
	}
	event := models.AppointmentBooked{
		EventType:     "appointment.booked",
		CorrelationID: correlationID,
		Timestamp:     p.now().UnixMilli(),
		Appointment:   appt,
		Confidence:    confidence,
	}
	// Best-effort: publish failures are logged by the publisher, never
	// surfaced to the caller.
	_ = p.publisher.PublishBooked(ctx, correlationID, event)
}

func (p *Pipeline) publishClarification(ctx context.Context, correlationID, rawText string, extracted extract.Result) {
	if p.publisher == nil {
		return
	}
	event := models.ClarificationRequested{
		EventType:     "appointment.clarification",
		CorrelationID: correlationID,
		Timestamp:     p.now().UnixMilli(),
		RawText:       rawText,
		Entities:      extracted.Entities,
		Confidence:    extracted.Confidence,
	}
	_ = p.publisher.PublishClarification(ctx, correlationID, event)
}

func errorResult(message, correlationID string) models.PipelineResult {
	return models.PipelineResult{
		Status:        models.StatusError,
		Message:       message,
		CorrelationID: correlationID,
	}
}

// capitalize upper-cases the first character only. Canonical names from the
// lexicon table already carry their casing, so this is a no-op for them;
// fallback-canonicalized keywords get their first letter raised here.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
