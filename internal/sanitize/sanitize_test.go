package sanitize

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Book dentist next Friday at 3pm", "Book dentist next Friday at 3pm"},
		{"html tags removed", "Book <b>dentist</b> tomorrow", "Book dentist tomorrow"},
		{"script tag removed", "hello <script>alert(1)</script> world", "hello alert(1) world"},
		{"sql keywords removed", "DROP TABLE appointments; book dentist", "TABLE appointments; book dentist"},
		{"whitespace normalized", "book   dentist\n\ttomorrow", "book dentist tomorrow"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestText_CapsLength(t *testing.T) {
	long := strings.Repeat("a", MaxTextLength+500)
	got := Text(long)
	if len(got) != MaxTextLength {
		t.Errorf("expected capped length %d, got %d", MaxTextLength, len(got))
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", "Book cardiology tomorrow at 10am", false},
		{"empty", "", true},
		{"only whitespace", "   \t\n", true},
		{"too long", strings.Repeat("x", MaxTextLength+1), true},
		{"script tag", "book <script>alert(1)</script>", true},
		{"javascript url", "click javascript:void(0)", true},
		{"event handler", `<img onerror= "x">`, true},
		{"eval call", "please eval this", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.in)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidateImage(t *testing.T) {
	// Minimal valid PNG and JPEG signatures; DetectContentType only needs
	// the leading bytes.
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)
	text := []byte("definitely not an image")

	if err := ValidateImage(png); err != nil {
		t.Errorf("expected PNG to validate, got %v", err)
	}
	if err := ValidateImage(jpeg); err != nil {
		t.Errorf("expected JPEG to validate, got %v", err)
	}
	if err := ValidateImage(text); err == nil {
		t.Error("expected plain text bytes to be rejected")
	}
}

func TestValidateImage_SizeCap(t *testing.T) {
	huge := make([]byte, MaxImageBytes+1)
	huge[0] = 0x89
	if err := ValidateImage(huge); err == nil {
		t.Error("expected oversized image to be rejected")
	}
}
