// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// InferenceRequest is a single text-generation call.
type InferenceRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// InferenceService defines the interface for hosted language-model inference.
type InferenceService interface {
	// Generate returns the generated text for the prompt.
	Generate(ctx context.Context, request InferenceRequest) (string, error)

	// IsAvailable checks if the service is properly configured.
	IsAvailable() bool

	// Name identifies the provider in logs and health output.
	Name() string
}
