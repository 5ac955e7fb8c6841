package generation

import (
	"log/slog"
	"net/http"

	"github.com/gerador-ia/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for content generation.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new generation handler.
func NewHandler(service *Service, logger *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Generate handles POST /gerar.
// Always responds 200; failures are reported in the resultado text.
func (h *Handler) Generate(c *gin.Context) {
	log := h.logger.WithContext(c.Request.Context()).WithComponent("generation-handler")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, GenerateResponse{
			Resultado: errorPrefix + "corpo da requisição inválido",
		})
		return
	}

	resp := h.service.Generate(c.Request.Context(), req)

	c.JSON(http.StatusOK, resp)
}

// CurrentProvider handles GET /provider.
// Reports which upstream provider and models were selected at startup.
func (h *Handler) CurrentProvider(c *gin.Context) {
	p := h.service.Provider()

	c.JSON(http.StatusOK, ProviderInfo{
		Provider:    p.Name,
		TextModel:   p.TextModel,
		VisionModel: p.VisionModel,
		BaseURL:     p.BaseURL,
	})
}
