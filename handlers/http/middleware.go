package httpHandler

import (
	"errors"
	"net/http"
	"strings"

	"finance-server/auth"
	"finance-server/entities"
	"finance-server/repositories"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const contextUserKey = "currentUser"

// 401 codes clients can branch on.
const (
	CodeNoToken      = "NO_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeUserNotFound = "USER_NOT_FOUND"
)

// AuthMiddleware verifies the bearer token and resolves it to a stored
// user. Every failure is terminal for the request; the downstream
// handler never runs without an attached user.
func AuthMiddleware(users repositories.UserRepository, tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, CodeNoToken, "Not authorized, no token")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortUnauthorized(c, CodeTokenExpired, "Token expired, please sign in again")
				return
			}
			abortUnauthorized(c, CodeInvalidToken, "Invalid token")
			return
		}

		// Covers users deleted after token issuance
		user, err := users.GetByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthorized(c, CodeUserNotFound, "User not found")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "An unknown error occurred"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message, "code": code})
}

// CurrentUser returns the user the middleware attached to the request.
func CurrentUser(c *gin.Context) *entities.User {
	return c.MustGet(contextUserKey).(*entities.User)
}
