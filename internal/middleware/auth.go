package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentflix/api/internal/auth"
)

// identityKey is the echo context key under which RequireToken stores the
// verified caller identity.
const identityKey = "identity"

// RequireToken returns middleware that guards protected routes. The client
// presents its token in the x-auth-token header. A missing header is a 401;
// a present but unverifiable token is a 400. On success the decoded identity
// is stored in the context for downstream middleware and handlers.
func RequireToken(tokens *auth.Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("x-auth-token")
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied, no token provided"})
			}
			id, err := tokens.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid token"})
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// IdentityFrom retrieves the identity stored by RequireToken. The second
// return is false when the route was not behind RequireToken.
func IdentityFrom(c echo.Context) (auth.Identity, bool) {
	id, ok := c.Get(identityKey).(auth.Identity)
	return id, ok
}
