package ports

import (
	"context"

	"github.com/orderdesk/order-service/internal/core/domain"
)

// RegisterInput carries a registration request into the auth service.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken string
	TokenType   string
	User        *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// CurrentUser resolves a bearer token to the account it was issued for.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
