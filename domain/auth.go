package domain

import "time"

type AccountClaims struct {
	AccountID string
	Email     string
	Role      string
	ExpireAt  time.Time
}

type AuthTokenRepo interface {
	GenerateToken(account *Account, iat, exp time.Time) (string, error)
	VerifyToken(token string) (*AccountClaims, error)
}

type AuthUseCase interface {
	Login(email, password string) (*Account, error)
	Verify(token string) (*AccountClaims, error)
	ResetPassword(reset *ResetPasswordRequest) error
}
