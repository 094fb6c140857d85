package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photo-market-backend/internal/middleware"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/services"
)

// respondError writes a service error with the status code its kind maps to.
// Causes stay in the logs; clients only see the service message.
func respondError(c *gin.Context, err error) {
	status := services.StatusCode(err)
	c.JSON(status, models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: services.Message(err),
	})
}

func callerOrAbort(c *gin.Context) (services.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized", Message: "user id not found"})
	}
	return caller, ok
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: http.StatusText(http.StatusBadRequest), Message: msg})
}
