package adapters

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/finai/backend/internal/application/adapter"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/test/integration/mock"
)

const modelPath = "/models/test-model"

func newHFService(t *testing.T) (*HuggingFaceService, *mock.ApiMock) {
	t.Helper()
	api := mock.NewApiServer()
	api.Start()
	t.Cleanup(api.Close)
	return NewHuggingFaceService("hf_token", api.GetUrl(), "test-model", 5*time.Second), api
}

func TestHuggingFaceService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("sends prompt and parameters", func(t *testing.T) {
		svc, api := newHFService(t)
		api.SetResponse(0, http.MethodPost, modelPath, http.StatusOK, map[string]any{
			"generated_text": " Build an emergency fund first. ",
		})

		text, err := svc.Generate(ctx, adapter.InferenceRequest{Prompt: "hello", MaxTokens: 500, Temperature: 0.7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "Build an emergency fund first." {
			t.Errorf("unexpected text %q", text)
		}

		body := api.GetRequestBody(http.MethodPost, modelPath, 0)
		if body["inputs"] != "hello" {
			t.Errorf("expected prompt in inputs, got %v", body["inputs"])
		}
		params, _ := body["parameters"].(map[string]any)
		if params["max_new_tokens"] != float64(500) || params["return_full_text"] != false {
			t.Errorf("unexpected parameters %v", params)
		}

		headers := api.GetRequestHeaders(http.MethodPost, modelPath, 0)
		if headers["Authorization"] != "Bearer hf_token" {
			t.Errorf("expected bearer token, got %q", headers["Authorization"])
		}
	})

	t.Run("upstream error status", func(t *testing.T) {
		svc, api := newHFService(t)
		api.SetResponse(0, http.MethodPost, modelPath, http.StatusServiceUnavailable, map[string]any{
			"error": "Model is currently loading",
		})

		_, err := svc.Generate(ctx, adapter.InferenceRequest{Prompt: "hello"})
		if !errors.Is(err, domainerror.ErrAdvisorUpstream) {
			t.Errorf("expected upstream error, got %v", err)
		}
	})

	t.Run("empty generation", func(t *testing.T) {
		svc, api := newHFService(t)
		api.SetResponse(0, http.MethodPost, modelPath, http.StatusOK, map[string]any{"generated_text": ""})

		_, err := svc.Generate(ctx, adapter.InferenceRequest{Prompt: "hello"})
		if !errors.Is(err, domainerror.ErrAdvisorEmptyResponse) {
			t.Errorf("expected empty response error, got %v", err)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		svc := NewHuggingFaceService("", "http://unused", "m", time.Second)
		if svc.IsAvailable() {
			t.Error("expected service to be unavailable")
		}
		if _, err := svc.Generate(ctx, adapter.InferenceRequest{}); !errors.Is(err, domainerror.ErrAdvisorUnavailable) {
			t.Errorf("expected unavailable error, got %v", err)
		}
	})
}

func TestParseGeneration_ListForm(t *testing.T) {
	text, err := parseGeneration([]byte(`[{"generated_text":"Invest monthly."}]`))
	if err != nil || text != "Invest monthly." {
		t.Errorf("unexpected result %q %v", text, err)
	}
}

func TestNewInferenceService(t *testing.T) {
	hf := NewHuggingFaceService("t", "http://x", "m", time.Second)
	gemini := NewGeminiService("k", "gemini-1.5-flash")

	if NewInferenceService("gemini", hf, gemini).Name() != "gemini" {
		t.Error("expected gemini provider")
	}
	if NewInferenceService("unknown", hf, gemini).Name() != "huggingface" {
		t.Error("expected huggingface fallback")
	}
}
