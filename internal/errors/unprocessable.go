package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UnprocessableEntity sends a 422 Unprocessable Entity response.
// Used for missing or empty required fields.
func UnprocessableEntity(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, NewAPIError(message))
}
