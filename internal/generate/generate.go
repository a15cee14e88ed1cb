// Package generate is the boundary to the external image-generation service.
// It defines the request/response contract and the Gemini-backed client; the
// model internals are opaque to the rest of the system.
package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// Request is one image-generation call: the user's base photo plus the
// assembled prompt.
type Request struct {
	Image    []byte
	MIMEType string
	Prompt   string
}

// Result carries the generated image bytes.
type Result struct {
	Image    []byte
	MIMEType string
}

// Generator produces a future-self image from a request. Implementations may
// take arbitrarily long; callers own retry and timeout policy.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// ErrNoImage indicates the service answered but returned no image payload.
// Callers treat it the same as a transport error for retry purposes.
var ErrNoImage = errors.New("response contained no image")

// NoImageError wraps ErrNoImage with whatever explanatory text the service
// returned in place of an image.
type NoImageError struct {
	Text string
}

func (e *NoImageError) Error() string {
	if e.Text == "" {
		return ErrNoImage.Error()
	}
	return fmt.Sprintf("%v: %s", ErrNoImage, e.Text)
}

func (e *NoImageError) Unwrap() error { return ErrNoImage }

// Filename names a produced artifact for external consumption, deriving the
// extension from the payload's MIME type.
func Filename(offsetYears int, mimeType string) string {
	ext := "jpg"
	switch mimeType {
	case "image/png":
		ext = "png"
	case "image/webp":
		ext = "webp"
	}
	return fmt.Sprintf("future-self-%d-years.%s", offsetYears, ext)
}

// LoadPhoto reads a base photo from disk and sniffs its MIME type. Only the
// formats the service accepts are allowed through.
func LoadPhoto(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read photo %s: %w", path, err)
	}
	mime := http.DetectContentType(data)
	switch mime {
	case "image/jpeg", "image/png", "image/webp":
		return data, mime, nil
	default:
		return nil, "", fmt.Errorf("unsupported photo type %s (want jpeg, png, or webp)", mime)
	}
}
