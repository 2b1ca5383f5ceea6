// Package adapters provides implementations for external service integrations.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/finai/backend/internal/application/adapter"
	domainerror "github.com/finai/backend/internal/domain/error"
)

// maxErrorBody bounds how much of an upstream error body ends up in error messages.
const maxErrorBody = 512

// HuggingFaceService implements the InferenceService using the Hugging Face
// text-generation inference API.
type HuggingFaceService struct {
	token    string
	endpoint string
	model    string
	client   *http.Client
}

// NewHuggingFaceService creates a new Hugging Face service instance.
func NewHuggingFaceService(token, endpoint, model string, timeout time.Duration) *HuggingFaceService {
	return &HuggingFaceService{
		token:    token,
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

// IsAvailable checks if the service has a token configured.
func (s *HuggingFaceService) IsAvailable() bool {
	return s.token != ""
}

// Name identifies the provider.
func (s *HuggingFaceService) Name() string {
	return "huggingface"
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float32 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
	Error         string `json:"error"`
}

// Generate sends one text-generation request.
func (s *HuggingFaceService) Generate(ctx context.Context, request adapter.InferenceRequest) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.ErrAdvisorUnavailable
	}

	body, err := json.Marshal(hfRequest{
		Inputs: request.Prompt,
		Parameters: hfParameters{
			MaxNewTokens:   request.MaxTokens,
			Temperature:    request.Temperature,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", s.endpoint, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call inference endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", domainerror.ErrAdvisorUpstream, resp.StatusCode, truncate(string(raw), maxErrorBody))
	}

	return parseGeneration(raw)
}

// parseGeneration accepts both the list form [{"generated_text": ...}] and a single object.
func parseGeneration(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)

	var generations []hfGeneration
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &generations); err != nil {
			return "", fmt.Errorf("failed to parse response: %w", err)
		}
	} else {
		var single hfGeneration
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return "", fmt.Errorf("failed to parse response: %w", err)
		}
		generations = append(generations, single)
	}

	if len(generations) == 0 {
		return "", domainerror.ErrAdvisorEmptyResponse
	}
	if generations[0].Error != "" {
		return "", fmt.Errorf("%w: %s", domainerror.ErrAdvisorUpstream, generations[0].Error)
	}

	text := strings.TrimSpace(generations[0].GeneratedText)
	if text == "" {
		return "", domainerror.ErrAdvisorEmptyResponse
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
