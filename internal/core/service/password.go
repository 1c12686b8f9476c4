package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	passwordMinLen   = 8
	passwordMaxLen   = 72
	passwordSpecials = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// PasswordHasher turns a plaintext password into a stored digest and checks
// candidates against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// NewHasher selects a hasher by name. "bcrypt" returns the salted variant;
// anything else returns the legacy SHA-256 hasher.
func NewHasher(name string) PasswordHasher {
	if strings.EqualFold(name, "bcrypt") {
		return BcryptHasher{}
	}
	return SHA256Hasher{}
}

// SHA256Hasher is an unsalted single-pass digest. It is the storage format
// existing credentials were written in, so it stays the default; new
// deployments without legacy data should prefer BcryptHasher.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(password, digest string) bool {
	computed, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// BcryptHasher is the salted, slow alternative behind the same contract.
type BcryptHasher struct{}

func (BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// ValidPassword enforces the registration complexity policy: 8 to 72
// characters with at least one uppercase letter, one lowercase letter, one
// digit, and one special character from passwordSpecials.
func ValidPassword(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < passwordMinLen || n > passwordMaxLen {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
		if strings.ContainsRune(passwordSpecials, r) {
			special = true
		}
	}
	return upper && lower && digit && special
}
