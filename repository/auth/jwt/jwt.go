package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/superj80820/user-service/domain"
)

type authTokenRepo struct {
	secret []byte
}

// CreateAuthTokenRepo builds the session-token signer. The secret is required,
// a deployment without one must fail before serving requests.
func CreateAuthTokenRepo(secret string) (domain.AuthTokenRepo, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	return &authTokenRepo{secret: []byte(secret)}, nil
}

func (a *authTokenRepo) GenerateToken(account *domain.Account, iat, exp time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    account.ID,
		"email": account.Email,
		"role":  account.Role,
		"iat":   iat.Unix(),
		"exp":   exp.Unix(),
	})
	signedToken, err := token.SignedString(a.secret)
	if err != nil {
		return "", errors.Wrap(err, "signed token failed")
	}
	return signedToken, nil
}

func (a *authTokenRepo) VerifyToken(tokenString string) (*domain.AccountClaims, error) {
	token, err := a.parseAndValidToken(tokenString)
	if err != nil {
		return nil, errors.Wrap(err, "parse and valid token failed")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(domain.ErrInvalidData, "get claims failed")
	}
	accountID, ok := mapClaims["id"].(string)
	if !ok {
		return nil, errors.Wrap(domain.ErrInvalidData, "get id claim failed")
	}
	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, errors.Wrap(domain.ErrInvalidData, "get email claim failed")
	}
	role, ok := mapClaims["role"].(string)
	if !ok || role == "" {
		role = domain.RoleUser
	}
	expire, ok := mapClaims["exp"].(float64)
	if !ok {
		return nil, errors.Wrap(domain.ErrInvalidData, "get exp claim failed")
	}

	return &domain.AccountClaims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		ExpireAt:  time.Unix(int64(expire), 0),
	}, nil
}

func (a *authTokenRepo) parseAndValidToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(fmt.Sprintf("unexpected signing %s", token.Header["alg"]))
		}
		return a.secret, nil
	})
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
		return nil, errors.Wrap(domain.ErrInvalidData, fmt.Sprintf("%+v", err))
	} else if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, errors.Wrap(domain.ErrExpired, fmt.Sprintf("%+v", err))
	} else if err != nil {
		return nil, errors.Wrap(err, "parse token get error")
	}
	return token, nil
}
