package assistant

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Gemini generates replies through the Google GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates the remote strategy. The API key is required; callers
// fall back to the rule engine when none is configured.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("assistant: API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	instruction := systemPrompt(req.Personality) + "\n\n" + contextBlock(req.Tasks, req.Stats, req.Context)

	contents := []*genai.Content{
		genai.NewContentFromText(req.Message, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		MaxOutputTokens:   500,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", errors.New("assistant: empty response from model")
	}
	return reply, nil
}
