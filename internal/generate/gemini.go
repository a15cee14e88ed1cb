package generate

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is the image-capable Gemini model driven by this client.
const DefaultModel = "gemini-2.5-flash-image-preview"

// Gemini generates images through the Google Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGemini creates a Gemini generator. The API key is required; model falls
// back to DefaultModel when empty.
func NewGemini(ctx context.Context, apiKey, model string, log *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{client: client, model: model, log: log}, nil
}

// Generate sends the base image and prompt and returns the first inline image
// part of the response. A response with only text yields a NoImageError so
// the caller can retry.
func (g *Gemini) Generate(ctx context.Context, req Request) (*Result, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(req.Image, req.MIMEType),
		genai.NewPartFromText(req.Prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	var text string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/jpeg"
				}
				return &Result{Image: part.InlineData.Data, MIMEType: mime}, nil
			}
			if part.Text != "" && text == "" {
				text = part.Text
			}
		}
	}

	g.log.Warn("gemini response had no image part", zap.String("model", g.model), zap.String("text", text))
	return nil, &NoImageError{Text: text}
}

// Close releases the underlying client. The genai client holds no resources
// that require explicit release, so this is a no-op.
func (g *Gemini) Close() error {
	return nil
}
