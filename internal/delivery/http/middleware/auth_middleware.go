package middleware

import (
	"strings"

	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// unauthorizedMessage is the single body returned for every auth failure.
// A missing header, a malformed header and a bad token are indistinguishable
// to the client.
const unauthorizedMessage = "Unauthorized access"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, unauthorizedMessage)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, unauthorizedMessage)
		}

		identity, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, unauthorizedMessage)
		}

		// Set the authenticated identity on the context for handlers to use
		c.Set("userID", identity.ID)
		c.Set("email", identity.Email)

		return next(c)
	}
}
