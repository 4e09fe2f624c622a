// Package models defines the data structures for the intake pipeline
// and its published events.
package models

import "time"

// Pipeline result statuses.
const (
	StatusOK                 = "ok"
	StatusNeedsClarification = "needs_clarification"
	StatusError              = "error"
)

// RawInput is the request payload handed to the pipeline. Exactly one of
// Text or ImageBytes is populated by the caller.
type RawInput struct {
	Text       string
	ImageBytes []byte
}

// Empty reports whether the input carries neither text nor an image.
func (r RawInput) Empty() bool {
	return r.Text == "" && len(r.ImageBytes) == 0
}

// OCRReport is the text acquisition stage report.
type OCRReport struct {
	RawText    string  `json:"raw_text"`
	Confidence float64 `json:"confidence"`
}

// Entities holds what the extractor recognized in the text.
// Department is the canonical department name ("Cardiology"), DepartmentRaw
// the lexicon keyword that matched ("cardiologist"). DateTimePhrase is the
// full phrase the date parser matched, before the time/date split.
type Entities struct {
	DepartmentRaw  string     `json:"department_raw,omitempty"`
	Department     string     `json:"department,omitempty"`
	DateTimePhrase string     `json:"datetime_phrase,omitempty"`
	DatePhrase     string     `json:"date_phrase,omitempty"`
	TimePhrase     string     `json:"time_phrase,omitempty"`
	ParsedDate     *time.Time `json:"parsed_date,omitempty"`
}

// ExtractionReport is the entity extraction stage report.
type ExtractionReport struct {
	Entities   Entities `json:"entities"`
	Confidence float64  `json:"confidence"`
}

// NormalizedDateTime is an instant expressed in the target timezone.
type NormalizedDateTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
	TZ   string `json:"tz"`
}

// NormalizationReport is the timezone normalization stage report.
type NormalizationReport struct {
	Normalized NormalizedDateTime `json:"normalized"`
	Confidence float64            `json:"confidence"`
}

// Appointment is the final structured record, built only when both a
// department and an instant were extracted. Never mutated once built.
type Appointment struct {
	Department string `json:"department"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	TZ         string `json:"tz"`
}

// PipelineResult is the structured outcome of one intake request.
// Stage reports are included for traceability; Appointment is present only
// on StatusOK.
type PipelineResult struct {
	Step1OCR           *OCRReport           `json:"step1_ocr,omitempty"`
	Step2Extraction    *ExtractionReport    `json:"step2_extraction,omitempty"`
	Step3Normalization *NormalizationReport `json:"step3_normalization,omitempty"`
	Appointment        *Appointment         `json:"appointment,omitempty"`
	Status             string               `json:"status"`
	Message            string               `json:"message,omitempty"`
	CorrelationID      string               `json:"correlationId,omitempty"`
}

// AppointmentBooked is published when a request resolves to an appointment.
type AppointmentBooked struct {
	EventType     string      `json:"eventType"`
	CorrelationID string      `json:"correlationId"`
	Timestamp     int64       `json:"timestamp"`
	Appointment   Appointment `json:"appointment"`
	Confidence    float64     `json:"confidence"`
}

// ClarificationRequested is published when the ambiguity gate rejects a
// request.
type ClarificationRequested struct {
	EventType     string   `json:"eventType"`
	CorrelationID string   `json:"correlationId"`
	Timestamp     int64    `json:"timestamp"`
	RawText       string   `json:"rawText"`
	Entities      Entities `json:"entities"`
	Confidence    float64  `json:"confidence"`
}
