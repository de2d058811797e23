package httpHandler

import (
	"errors"
	"net/http"

	"finance-server/usecases"

	"github.com/gin-gonic/gin"
)

// respondError maps the usecase error taxonomy onto HTTP statuses.
// Nothing unexpected leaks to the client beyond a generic message.
func respondError(c *gin.Context, err error) {
	var verr *usecases.ValidationError
	var cerr *usecases.ConflictError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
	case errors.As(err, &cerr):
		c.JSON(http.StatusBadRequest, gin.H{"message": cerr.Error()})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unknown error occurred"})
	}
}

// respondNotFound is used where a resource-specific message is wanted.
// Ownership mismatches intentionally take this same path.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}
