package generation

import (
	"testing"

	"github.com/gerador-ia/backend/internal/config"
)

func TestSelectProviderPrecedence(t *testing.T) {
	tests := []struct {
		name              string
		groqKey           string
		openAIKey         string
		expectedProvider  string
		expectedBaseURL   string
		expectedTextModel string
	}{
		{
			name:              "groq wins over openai",
			groqKey:           "groq-key",
			openAIKey:         "openai-key",
			expectedProvider:  "Groq",
			expectedBaseURL:   "https://api.groq.com/openai/v1",
			expectedTextModel: "llama-3.1-8b-instant",
		},
		{
			name:              "openai when no groq key",
			openAIKey:         "openai-key",
			expectedProvider:  "OpenAI",
			expectedBaseURL:   "https://api.openai.com/v1",
			expectedTextModel: "gpt-3.5-turbo",
		},
		{
			name:              "ollama when no cloud keys",
			expectedProvider:  "Ollama",
			expectedBaseURL:   "http://localhost:11434/v1",
			expectedTextModel: "llama3.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				GroqAPIKey:      tt.groqKey,
				GroqModel:       "llama-3.1-8b-instant",
				GroqVisionModel: "meta-llama/llama-4-scout-17b-16e-instruct",
				OpenAIAPIKey:    tt.openAIKey,
				OllamaBaseURL:   "http://localhost:11434/v1",
				OllamaModel:     "llama3.2",
			}

			provider := SelectProvider(cfg)
			if provider.Name != tt.expectedProvider {
				t.Errorf("expected provider %s, got %s", tt.expectedProvider, provider.Name)
			}
			if provider.BaseURL != tt.expectedBaseURL {
				t.Errorf("expected base URL %s, got %s", tt.expectedBaseURL, provider.BaseURL)
			}
			if provider.TextModel != tt.expectedTextModel {
				t.Errorf("expected text model %s, got %s", tt.expectedTextModel, provider.TextModel)
			}
		})
	}
}

func TestSelectProviderGroqModelOverrides(t *testing.T) {
	cfg := &config.Config{
		GroqAPIKey:      "groq-key",
		GroqModel:       "custom-text-model",
		GroqVisionModel: "custom-vision-model",
	}

	provider := SelectProvider(cfg)
	if provider.TextModel != "custom-text-model" {
		t.Errorf("expected configured text model, got %s", provider.TextModel)
	}
	if provider.VisionModel != "custom-vision-model" {
		t.Errorf("expected configured vision model, got %s", provider.VisionModel)
	}
}

func TestSelectProviderOpenAIFixedModels(t *testing.T) {
	cfg := &config.Config{OpenAIAPIKey: "openai-key"}

	provider := SelectProvider(cfg)
	if provider.TextModel != "gpt-3.5-turbo" {
		t.Errorf("expected gpt-3.5-turbo, got %s", provider.TextModel)
	}
	if provider.VisionModel != "gpt-4o-mini" {
		t.Errorf("expected gpt-4o-mini, got %s", provider.VisionModel)
	}
}

func TestSelectProviderOllamaUsesSameModelForVision(t *testing.T) {
	cfg := &config.Config{
		OllamaBaseURL: "http://127.0.0.1:11434/v1",
		OllamaModel:   "llama3.2",
	}

	provider := SelectProvider(cfg)
	if provider.VisionModel != provider.TextModel {
		t.Errorf("expected same model for text and vision, got %s and %s",
			provider.TextModel, provider.VisionModel)
	}
	if provider.APIKey != "ollama" {
		t.Errorf("expected placeholder key 'ollama', got %s", provider.APIKey)
	}
	if provider.BaseURL != "http://127.0.0.1:11434/v1" {
		t.Errorf("expected configured base URL, got %s", provider.BaseURL)
	}
}

func TestModelFor(t *testing.T) {
	provider := Provider{TextModel: "text-model", VisionModel: "vision-model"}

	if model := provider.ModelFor(false); model != "text-model" {
		t.Errorf("expected text-model, got %s", model)
	}
	if model := provider.ModelFor(true); model != "vision-model" {
		t.Errorf("expected vision-model, got %s", model)
	}
}
