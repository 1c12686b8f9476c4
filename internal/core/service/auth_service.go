package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orderdesk/order-service/internal/core/domain"
	"github.com/orderdesk/order-service/internal/core/ports"
	"github.com/orderdesk/order-service/internal/pkg/actionlog"
)

// AuthService implements registration, login, and token resolution.
type AuthService struct {
	users   ports.UserRepository
	hasher  PasswordHasher
	tokens  *TokenService
	actions *actionlog.Recorder
}

func NewAuthService(users ports.UserRepository, hasher PasswordHasher, tokens *TokenService, actions *actionlog.Recorder) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, actions: actions}
}

// Register validates the complexity policy and username uniqueness before
// creating the account. The role defaults to "user" when omitted.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	var created *domain.User
	err := s.actions.Do(ctx, "register_user", func(ctx context.Context) error {
		role := in.Role
		if role == "" {
			role = domain.RoleUser
		}
		if !domain.ValidRole(role) {
			return domain.ErrInvalidRole
		}
		if !ValidPassword(in.Password) {
			return domain.ErrWeakPassword
		}

		if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
			return domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("check username: %w", err)
		}

		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user := &domain.User{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         role,
			CreatedAt:    time.Now().UTC(),
		}

		created, err = s.users.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials and issues a session token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	var result *ports.LoginResult
	err := s.actions.Do(ctx, "authenticate_user", func(ctx context.Context) error {
		user, err := s.users.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return domain.ErrInvalidCredentials
			}
			return fmt.Errorf("find user: %w", err)
		}

		if !s.hasher.Verify(password, user.PasswordHash) {
			return domain.ErrInvalidCredentials
		}

		token, err := s.tokens.Issue(user)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}

		result = &ports.LoginResult{
			AccessToken: token,
			TokenType:   "bearer",
			User:        user,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CurrentUser verifies the token and loads the account it was issued for.
// A valid token whose account has since disappeared is an authentication
// failure, not a lookup miss.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	var user *domain.User
	err := s.actions.Do(ctx, "get_current_user", func(ctx context.Context) error {
		claims, err := s.tokens.Verify(token)
		if err != nil {
			return err
		}

		user, err = s.users.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("load user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
