package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, NewAPIError(message))
}
