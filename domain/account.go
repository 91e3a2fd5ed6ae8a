package domain

import (
	"strings"
	"time"
)

const RoleUser = "user"

type Account struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"-"` // bcrypt hash, never the plaintext

	Role string `json:"role"`

	AccessToken string `bson:"-" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SignUpRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type ResetPasswordRequest struct {
	Email           string
	NewPassword     string
	ConfirmPassword string
}

// NormalizeEmail lowercases and trims an email. The normalized form is the
// uniqueness key for accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type AccountRepo interface {
	Create(firstName, lastName, email, passwordHash string) (*Account, error)
	Get(accountID string) (*Account, error)
	GetByEmail(email string) (*Account, error)
	UpdatePassword(accountID, passwordHash string) error
}

type AccountUseCase interface {
	Register(signUp *SignUpRequest) (*Account, error)
	Get(accountID string) (*Account, error)
}
