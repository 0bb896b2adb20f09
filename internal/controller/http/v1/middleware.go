package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/STEVENBOBER/LegacyBridge/internal/usecase/peoplesoft"
)

const (
	bearerScheme = "Bearer "

	// tokenContextKey carries the raw bearer value from the gate to the
	// handler so it can be echoed back and forwarded to the adapter.
	tokenContextKey = "psAuthToken"
)

// RequireSessionToken gates protected routes on the shape of the bearer
// token. The check is purely structural: no signature verification, no
// store lookup. Every syntactically valid token is authorized.
func RequireSessionToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if !strings.HasPrefix(authHeader, bearerScheme) {
			ErrorResponse(c, UnauthenticatedError{})

			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerScheme))

		if !peoplesoft.HasTokenShape(token) {
			ErrorResponse(c, InvalidTokenError{})

			return
		}

		c.Set(tokenContextKey, token)

		c.Next()
	}
}
