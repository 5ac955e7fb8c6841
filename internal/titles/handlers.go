package titles

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	apierrors "github.com/gerador-ia/backend/internal/errors"
	"github.com/gerador-ia/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for title history operations.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new titles handler.
func NewHandler(service *Service, logger *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListTitles handles GET /titles?user_id=<string>
// Returns the owner's history, newest first.
func (h *Handler) ListTitles(c *gin.Context) {
	log := h.logger.WithContext(c.Request.Context()).WithComponent("titles-handler")

	userID := c.Query("user_id")
	if userID == "" {
		apierrors.UnprocessableEntity(c, "user_id query parameter is required")
		return
	}

	results, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to list titles",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list titles"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// CreateTitle handles POST /titles
// Persists one generated title/description pair for the given owner.
func (h *Handler) CreateTitle(c *gin.Context) {
	log := h.logger.WithContext(c.Request.Context()).WithComponent("titles-handler")

	var req CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", slog.String("error", err.Error()))
		apierrors.UnprocessableEntity(c, "invalid request body")
		return
	}

	title, err := h.service.Create(c.Request.Context(), req.Titulo, req.Descricao, req.UserID)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			apierrors.UnprocessableEntity(c, err.Error())
			return
		}

		log.Error("failed to create title",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create title"})
		return
	}

	log.Info("title created",
		slog.Int64("id", title.ID),
		slog.String("user_id", title.UserID))

	c.JSON(http.StatusOK, title)
}

// DeleteTitle handles DELETE /titles/:id
// Permanently removes one record.
func (h *Handler) DeleteTitle(c *gin.Context) {
	log := h.logger.WithContext(c.Request.Context()).WithComponent("titles-handler")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.UnprocessableEntity(c, "id must be an integer")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			apierrors.NotFound(c, "Título não encontrado")
			return
		}

		log.Error("failed to delete title",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete title"})
		return
	}

	log.Info("title deleted", slog.Int64("id", id))

	c.Status(http.StatusNoContent)
}
