// Package sanitize validates and cleans intake request payloads before they
// reach the pipeline.
package sanitize

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// Validation failures. Callers match with errors.Is to pick an error code.
var (
	ErrEmptyText      = errors.New("text input cannot be empty")
	ErrTextTooLong    = errors.New("text input too long")
	ErrSuspiciousText = errors.New("input contains potentially malicious content")
	ErrImageTooLarge  = errors.New("file too large")
	ErrBadImageType   = errors.New("invalid file type")
)

// Input limits.
const (
	// MaxTextLength is the maximum accepted text input length in characters.
	MaxTextLength = 5000

	// MaxImageBytes is the maximum accepted image upload size (5MB).
	MaxImageBytes = 5 * 1024 * 1024
)

// AllowedImageTypes lists the accepted image MIME types.
var AllowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	sqlKeywordRe = regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|CREATE|ALTER|EXEC|EXECUTE)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	suspiciousRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)on\w+\s*=`), // inline event handlers like onclick=
		regexp.MustCompile(`(?i)\b(eval|exec|system)\b`),
	}
)

// Text removes potentially harmful content from text input: HTML tags, SQL
// keywords, then normalizes whitespace, trims, and caps the length.
func Text(text string) string {
	if text == "" {
		return ""
	}

	s := htmlTagRe.ReplaceAllString(text, "")
	s = sqlKeywordRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if len(s) > MaxTextLength {
		s = s[:MaxTextLength]
	}
	return s
}

// ValidateText rejects empty, oversized, or suspicious text input.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("%w: maximum %d characters allowed", ErrTextTooLong, MaxTextLength)
	}
	for _, re := range suspiciousRes {
		if re.MatchString(text) {
			return ErrSuspiciousText
		}
	}
	return nil
}

// ValidateImage rejects uploads that are too large or not an allowed image
// type. The type is determined by content sniffing, not caller-supplied
// headers.
func ValidateImage(image []byte) error {
	if len(image) > MaxImageBytes {
		return fmt.Errorf("%w: maximum size %dMB", ErrImageTooLarge, MaxImageBytes/(1024*1024))
	}

	contentType := http.DetectContentType(image)
	for _, allowed := range AllowedImageTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w %s: allowed types are %s", ErrBadImageType, contentType, strings.Join(AllowedImageTypes, ", "))
}
