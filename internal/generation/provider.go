package generation

import (
	"github.com/gerador-ia/backend/internal/config"
)

// Provider describes the upstream completion endpoint selected at startup.
// It is resolved once from configuration and injected into the service;
// there is no runtime reconfiguration and no cross-provider retry.
type Provider struct {
	Name        string
	BaseURL     string
	APIKey      string
	TextModel   string
	VisionModel string
}

const (
	groqBaseURL   = "https://api.groq.com/openai/v1"
	openAIBaseURL = "https://api.openai.com/v1"

	openAITextModel   = "gpt-3.5-turbo"
	openAIVisionModel = "gpt-4o-mini"

	// Ollama's OpenAI-compatible endpoint ignores the key but requires one.
	ollamaAPIKey = "ollama"
)

// SelectProvider picks the upstream provider from configuration.
// Precedence: Groq (free cloud) > OpenAI (paid) > Ollama (free, local).
//
// The Ollama path uses the same model for text and vision requests: there
// is no vision-specific fallback for self-hosted deployments.
func SelectProvider(cfg *config.Config) Provider {
	if cfg.GroqAPIKey != "" {
		return Provider{
			Name:        "Groq",
			BaseURL:     groqBaseURL,
			APIKey:      cfg.GroqAPIKey,
			TextModel:   cfg.GroqModel,
			VisionModel: cfg.GroqVisionModel,
		}
	}

	if cfg.OpenAIAPIKey != "" {
		return Provider{
			Name:        "OpenAI",
			BaseURL:     openAIBaseURL,
			APIKey:      cfg.OpenAIAPIKey,
			TextModel:   openAITextModel,
			VisionModel: openAIVisionModel,
		}
	}

	return Provider{
		Name:        "Ollama",
		BaseURL:     cfg.OllamaBaseURL,
		APIKey:      ollamaAPIKey,
		TextModel:   cfg.OllamaModel,
		VisionModel: cfg.OllamaModel,
	}
}

// ModelFor returns the model for a request, switching to the vision-capable
// model when an image is attached.
func (p Provider) ModelFor(hasImage bool) string {
	if hasImage {
		return p.VisionModel
	}
	return p.TextModel
}
