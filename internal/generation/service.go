package generation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gerador-ia/backend/internal/logger"
)

const (
	// errorPrefix marks in-band failure text in the resultado field.
	// Callers inspect the text to detect failure; /gerar never returns
	// an HTTP error.
	errorPrefix = "Erro ao gerar conteúdo: "

	// emptyCompletionMessage substitutes an upstream answer with no text.
	emptyCompletionMessage = "A IA não retornou texto. Tente novamente."
)

// completer abstracts the upstream completion call.
type completer interface {
	Complete(ctx context.Context, provider Provider, model string, messages []Message) (string, error)
}

// Service orchestrates prompt construction and the upstream call.
type Service struct {
	logger       *logger.Logger
	provider     Provider
	client       completer
	systemPrompt string
}

// NewService creates a new generation service bound to the provider
// selected at startup.
func NewService(logger *logger.Logger, provider Provider, client completer, systemPrompt string) *Service {
	logger.WithComponent("generation-service").Info("generation service initialized",
		slog.String("provider", provider.Name),
		slog.String("text_model", provider.TextModel),
		slog.String("vision_model", provider.VisionModel))

	return &Service{
		logger:       logger,
		provider:     provider,
		client:       client,
		systemPrompt: systemPrompt,
	}
}

// Provider returns the provider the service was constructed with.
func (s *Service) Provider() Provider {
	return s.provider
}

// Generate produces marketing copy for the request. It never fails from the
// caller's perspective: upstream and payload construction failures are
// converted into a normal response carrying the error text.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) GenerateResponse {
	log := s.logger.WithContext(ctx).WithComponent("generation-service")

	hasImage := req.Imagem != ""
	if hasImage {
		if err := validateImageDataURI(req.Imagem); err != nil {
			log.Warn("rejected image payload", slog.String("error", err.Error()))
			return GenerateResponse{Resultado: errorPrefix + err.Error()}
		}
	}

	prompt := BuildPrompt(req)
	model := s.provider.ModelFor(hasImage)
	messages := BuildMessages(s.systemPrompt, prompt, req.Imagem)

	log.Debug("calling upstream",
		slog.String("provider", s.provider.Name),
		slog.String("model", model),
		slog.Bool("has_image", hasImage))

	text, err := s.client.Complete(ctx, s.provider, model, messages)
	if err != nil {
		if errors.Is(err, ErrEmptyCompletion) {
			log.Warn("upstream returned no text",
				slog.String("provider", s.provider.Name),
				slog.String("model", model))
			return GenerateResponse{Resultado: emptyCompletionMessage}
		}

		log.Error("generation failed",
			slog.String("provider", s.provider.Name),
			slog.String("model", model),
			slog.String("error", err.Error()))
		return GenerateResponse{Resultado: errorPrefix + err.Error()}
	}

	log.Debug("generation succeeded",
		slog.String("provider", s.provider.Name),
		slog.String("model", model),
		slog.Int("length", len(text)))

	return GenerateResponse{Resultado: text}
}
