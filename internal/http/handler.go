package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"appointment-intake-service/internal/apperrors"
	"appointment-intake-service/internal/models"
	"appointment-intake-service/internal/observability/metrics"
	"appointment-intake-service/internal/sanitize"
)

// IntakeRunner runs one request through the intake pipeline.
type IntakeRunner interface {
	Process(ctx context.Context, in models.RawInput, correlationID string) (models.PipelineResult, error)
}

// Handler serves the intake API endpoints.
type Handler struct {
	pipeline IntakeRunner
	ocrLimit *clientLimiter
	metrics  *metrics.Metrics
}

// NewHandler creates a Handler. ocrPerMinute caps image requests per client
// on top of the router-wide rate limit; zero disables the cap.
func NewHandler(pipeline IntakeRunner, ocrPerMinute int) *Handler {
	var ocrLimit *clientLimiter
	if ocrPerMinute > 0 {
		ocrLimit = newClientLimiter(ocrPerMinute)
	}
	return &Handler{
		pipeline: pipeline,
		ocrLimit: ocrLimit,
		metrics:  metrics.DefaultMetrics,
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Status        string         `json:"status"`
	ErrorCode     apperrors.Code `json:"errorCode"`
	Message       string         `json:"message"`
	CorrelationID string         `json:"correlationId,omitempty"`
}

// Parse handles POST /v1/parse. It accepts either a JSON body with a text
// field or a multipart form with an image file (or a text field), and
// responds with the full pipeline result. Business outcomes, including
// needs_clarification, are 200s; only validation, rate-limit, and stage
// faults map to error statuses.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	correlationID := r.Header.Get("X-Request-ID")
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	in, appErr := h.readInput(r)
	if appErr != nil {
		h.metrics.RecordRejected(string(appErr.Code))
		writeError(w, appErr, correlationID)
		return
	}

	if len(in.ImageBytes) > 0 && h.ocrLimit != nil && !h.ocrLimit.allow(clientKey(r)) {
		h.metrics.RecordRateLimited()
		writeError(w, apperrors.RateLimited("Too many OCR requests, please try again later."), correlationID)
		return
	}

	result, err := h.pipeline.Process(r.Context(), in, correlationID)
	if err != nil {
		log.Error().Err(err).Str("correlationId", correlationID).Msg("Pipeline fault")
		if len(in.ImageBytes) > 0 {
			writeError(w, apperrors.Processing(apperrors.CodeOCRFailed, "Could not read text from the image."), correlationID)
		} else {
			writeError(w, apperrors.Internal(), correlationID)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// readInput extracts and validates the raw input from the request body.
func (h *Handler) readInput(r *http.Request) (models.RawInput, *apperrors.Error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		return h.readMultipart(r)
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.RawInput{}, apperrors.Validation(apperrors.CodeInvalidInput, "Request body must be valid JSON.")
	}
	return h.validateText(req.Text)
}

func (h *Handler) readMultipart(r *http.Request) (models.RawInput, *apperrors.Error) {
	if err := r.ParseMultipartForm(sanitize.MaxImageBytes + 1024*1024); err != nil {
		return models.RawInput{}, apperrors.Validation(apperrors.CodeInvalidInput, "Could not parse multipart form.")
	}

	file, _, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image, readErr := io.ReadAll(io.LimitReader(file, sanitize.MaxImageBytes+1))
		if readErr != nil {
			return models.RawInput{}, apperrors.Validation(apperrors.CodeInvalidInput, "Could not read uploaded file.")
		}
		if vErr := sanitize.ValidateImage(image); vErr != nil {
			return models.RawInput{}, imageError(vErr)
		}
		return models.RawInput{ImageBytes: image}, nil
	}

	if text := r.FormValue("text"); text != "" {
		return h.validateText(text)
	}

	return models.RawInput{}, apperrors.Validation(apperrors.CodeMissingInput, "Provide a text field or an image file.")
}

func (h *Handler) validateText(text string) (models.RawInput, *apperrors.Error) {
	if err := sanitize.ValidateText(text); err != nil {
		return models.RawInput{}, textError(err)
	}
	return models.RawInput{Text: sanitize.Text(text)}, nil
}

func textError(err error) *apperrors.Error {
	switch {
	case errors.Is(err, sanitize.ErrEmptyText):
		return apperrors.Validation(apperrors.CodeMissingInput, err.Error())
	case errors.Is(err, sanitize.ErrTextTooLong):
		return apperrors.Validation(apperrors.CodeTextTooLong, err.Error())
	case errors.Is(err, sanitize.ErrSuspiciousText):
		return apperrors.Validation(apperrors.CodeMaliciousInput, err.Error())
	default:
		return apperrors.Validation(apperrors.CodeInvalidInput, err.Error())
	}
}

func imageError(err error) *apperrors.Error {
	switch {
	case errors.Is(err, sanitize.ErrImageTooLarge):
		return apperrors.Validation(apperrors.CodeFileTooLarge, err.Error())
	case errors.Is(err, sanitize.ErrBadImageType):
		return apperrors.Validation(apperrors.CodeInvalidFileType, err.Error())
	default:
		return apperrors.Validation(apperrors.CodeInvalidInput, err.Error())
	}
}

func writeError(w http.ResponseWriter, appErr *apperrors.Error, correlationID string) {
	writeJSON(w, appErr.HTTPStatus, errorResponse{
		Status:        models.StatusError,
		ErrorCode:     appErr.Code,
		Message:       appErr.Message,
		CorrelationID: correlationID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
