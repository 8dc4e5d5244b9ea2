package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"google.golang.org/genai"
)

const maxEmbedInputChars = 40000

type geminiEncoder struct {
	client     *genai.Client
	embedModel string
}

// NewGeminiEncoder returns an Encoder backed by the Gemini embeddings API.
func NewGeminiEncoder(ctx context.Context, apiKey, embedModel string) (Encoder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if embedModel == "" {
		embedModel = "text-embedding-004"
	}

	return &geminiEncoder{
		client:     client,
		embedModel: embedModel,
	}, nil
}

func (g *geminiEncoder) Name() string { return "gemini:" + g.embedModel }

// Encode implements Encoder.
func (g *geminiEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	text = truncateUTF8(text, maxEmbedInputChars)

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, &EncodingError{Encoder: g.Name(), Cause: err}
	}

	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, &EncodingError{Encoder: g.Name(), Cause: fmt.Errorf("empty embedding result")}
	}

	return result.Embeddings[0].Values, nil
}

// truncateUTF8 cuts text to at most maxBytes without splitting a rune.
func truncateUTF8(text string, maxBytes int) string {
	if len(text) <= maxBytes {
		return text
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
