package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/order-service/internal/core/ports"
)

// UserContextKey is where the resolved account is stored on the echo context.
const UserContextKey = "user"

// Auth extracts the bearer token, resolves it to an account through the auth
// service, and injects the account into the request context. Invalid or
// expired tokens and tokens for deleted accounts all surface as 401 through
// the central error handler.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.CurrentUser(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
