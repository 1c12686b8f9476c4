package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orderdesk/order-service/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenClaims is the identity a verified session token proves.
type TokenClaims struct {
	Subject string
	UserID  string
	Role    string
}

// TokenService issues and verifies stateless HS256 session tokens. Tokens
// are valid for their full TTL; there is no refresh and no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for user expiring at now + TTL.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.ID,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature, algorithm, and expiry. Any failure collapses
// to ErrInvalidToken; callers never learn why a token was rejected.
func (s *TokenService) Verify(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return nil, domain.ErrInvalidToken
	}

	return &TokenClaims{Subject: subject, UserID: userID, Role: role}, nil
}

// TTL reports the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
