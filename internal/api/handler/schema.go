package handler

import (
	"time"

	"github.com/orderdesk/order-service/internal/core/domain"
)

// errorResponse documents the error envelope rendered by the central error
// handler; handlers never build it themselves.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the identity summary returned on registration and /auth/me.
// It never carries the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	UserInfo    userResponse `json:"user_info"`
}

// --- Orders ---

// createOrderRequest carries the submission outcome. Success is a pointer so
// that an explicit false still passes the required check.
type createOrderRequest struct {
	Success *bool `json:"success" validate:"required"`
}

type orderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Success:   o.Success,
		CreatedAt: o.CreatedAt,
	}
}

type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
}
