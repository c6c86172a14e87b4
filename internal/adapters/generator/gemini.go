package generator

import (
	"context"
	"fmt"

	"retoque/internal/core/domain"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Gemini provides a wrapper for the Gemini generation API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds an image editing client for the given model. baseURL is
// normally empty; tests point it at a stub server.
func NewGemini(ctx context.Context, apiKey, model, baseURL string) (*Gemini, error) {
	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	if baseURL != "" {
		config.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// EditImage sends the prompt and inline image payload in one request and
// maps the first candidate's content parts, preserving API order.
func (g *Gemini) EditImage(ctx context.Context, request domain.EditRequest) ([]domain.ResultPart, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(request.Prompt),
		{InlineData: &genai.Blob{MIMEType: request.Image.MIMEType, Data: request.Image.Data}},
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return nil, domain.ErrNoResponse
	}

	var result []domain.ResultPart

	for _, part := range res.Candidates[0].Content.Parts {
		switch {
		case part.InlineData != nil && len(part.InlineData.Data) > 0:
			result = append(result, domain.ResultPart{
				Image: &domain.Image{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType},
			})
		case part.Text != "":
			result = append(result, domain.ResultPart{Text: part.Text})
		}
	}

	log.Debug().Str("model", g.model).Int("parts", len(result)).Msg("gemini response mapped")

	return result, nil
}
