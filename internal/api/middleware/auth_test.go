package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/order-service/internal/core/domain"
	"github.com/orderdesk/order-service/internal/core/ports"
)

type stubAuthService struct {
	user *domain.User
	err  error
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.LoginResult, error) {
	panic("not used")
}

func (s *stubAuthService) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	alice := &domain.User{ID: "id-1", Username: "alice", Role: domain.RoleUser}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(&stubAuthService{user: alice})
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := c.Get(UserContextKey).(*domain.User)
		if !ok || user.Username != "alice" {
			t.Fatalf("user not injected into context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(&stubAuthService{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	e := echo.New()
	for _, header := range []string{"some-token", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		c := e.NewContext(req, httptest.NewRecorder())

		mw := Auth(&stubAuthService{})
		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next handler for %q", header)
			return nil
		})

		err := handler(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 HTTPError, got %v", header, err)
		}
	}
}

func TestAuth_ResolveFailurePropagates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(&stubAuthService{err: domain.ErrInvalidToken})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken to propagate, got %v", err)
	}
}

func TestAuth_DeletedAccount(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer orphan-token")
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(&stubAuthService{err: domain.ErrUserNotFound})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}
