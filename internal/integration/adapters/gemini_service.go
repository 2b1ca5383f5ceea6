// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finai/backend/internal/application/adapter"
	domainerror "github.com/finai/backend/internal/domain/error"
)

// GeminiService implements the InferenceService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Name identifies the provider.
func (s *GeminiService) Name() string {
	return "gemini"
}

// Generate sends the prompt to Gemini and returns the text of the first candidate.
func (s *GeminiService) Generate(ctx context.Context, request adapter.InferenceRequest) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.ErrAdvisorUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(request.Temperature)
	if request.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(request.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(request.Prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerror.ErrAdvisorUpstream, err)
	}

	return extractText(resp)
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domainerror.ErrAdvisorEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", domainerror.ErrAdvisorEmptyResponse
	}
	return text, nil
}

// NewInferenceService selects the configured provider. Unknown providers fall back to Hugging Face.
func NewInferenceService(provider string, hf *HuggingFaceService, gemini *GeminiService) adapter.InferenceService {
	if strings.EqualFold(provider, "gemini") {
		return gemini
	}
	return hf
}
