package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/order-service/internal/api/middleware"
	"github.com/orderdesk/order-service/internal/core/domain"
)

// currentUser extracts the account injected by the Auth middleware. Its
// absence means the middleware did not run on this route; reject with 401
// rather than proceeding unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
