// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "appointment_intake"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Request metrics
	RequestsTotal    prometheus.Counter
	RequestsByStatus *prometheus.CounterVec
	RequestDuration  prometheus.Histogram
	RequestsRejected *prometheus.CounterVec
	RateLimited      prometheus.Counter

	// Pipeline stage metrics
	StageDuration *prometheus.HistogramVec

	// OCR metrics
	OCRRequests   prometheus.Counter
	OCRErrors     prometheus.Counter
	OCRConfidence prometheus.Histogram

	// Extraction metrics
	ExtractionConfidence prometheus.Histogram
	DepartmentsMatched   *prometheus.CounterVec
	AmbiguousRequests    prometheus.Counter

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		// Request metrics
		RequestsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of intake requests received",
		}),
		RequestsByStatus: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_by_status_total",
			Help:      "Total number of pipeline results by status",
		}, []string{"status"}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of intake request processing in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
		RequestsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_rejected_total",
			Help:      "Total number of requests rejected before the pipeline ran",
		}, []string{"reason"}),
		RateLimited: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),

		// Pipeline stage metrics
		StageDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual pipeline stages in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}, []string{"stage"}),

		// OCR metrics
		OCRRequests: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ocr_requests_total",
			Help:      "Total number of image inputs submitted to the OCR engine",
		}),
		OCRErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ocr_errors_total",
			Help:      "Total number of OCR engine failures",
		}),
		OCRConfidence: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ocr_confidence",
			Help:      "Confidence reported by the OCR engine",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		}),

		// Extraction metrics
		ExtractionConfidence: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_confidence",
			Help:      "Confidence of the entity extraction stage",
			Buckets:   []float64{0, 0.45, 0.55, 0.95, 1},
		}),
		DepartmentsMatched: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "departments_matched_total",
			Help:      "Total number of department matches by canonical name",
		}, []string{"department"}),
		AmbiguousRequests: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ambiguous_requests_total",
			Help:      "Total number of requests returned for clarification",
		}),

		// Kafka publish metrics
		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordRequest records one completed intake request.
func (m *Metrics) RecordRequest(status string, durationSeconds float64) {
	m.RequestsTotal.Inc()
	m.RequestsByStatus.WithLabelValues(status).Inc()
	m.RequestDuration.Observe(durationSeconds)
}

// RecordRejected records a request rejected before the pipeline ran.
func (m *Metrics) RecordRejected(reason string) {
	m.RequestsRejected.WithLabelValues(reason).Inc()
}

// RecordRateLimited records a request rejected by the rate limiter.
func (m *Metrics) RecordRateLimited() {
	m.RateLimited.Inc()
}

// RecordStage records the duration of a single pipeline stage.
func (m *Metrics) RecordStage(stage string, durationSeconds float64) {
	m.StageDuration.WithLabelValues(stage).Observe(durationSeconds)
}

// RecordOCR records an OCR engine call.
func (m *Metrics) RecordOCR(confidence float64, err error) {
	m.OCRRequests.Inc()
	if err != nil {
		m.OCRErrors.Inc()
		return
	}
	m.OCRConfidence.Observe(confidence)
}

// RecordExtraction records the extraction stage outcome.
func (m *Metrics) RecordExtraction(confidence float64, department string) {
	m.ExtractionConfidence.Observe(confidence)
	if department != "" {
		m.DepartmentsMatched.WithLabelValues(department).Inc()
	}
}

// RecordAmbiguous records a request returned for clarification.
func (m *Metrics) RecordAmbiguous() {
	m.AmbiguousRequests.Inc()
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}
