package usecase

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/superj80820/user-service/domain"
	"github.com/superj80820/user-service/kit/code"
	loggerKit "github.com/superj80820/user-service/kit/logger"
	accountMemoryRepo "github.com/superj80820/user-service/repository/account/memory"
	authJWTRepo "github.com/superj80820/user-service/repository/auth/jwt"
	accountUseCaseLib "github.com/superj80820/user-service/usecase/account"
	authUseCaseLib "github.com/superj80820/user-service/usecase/auth"
	"github.com/superj80820/user-service/usecase/validator"
)

func createUseCases(t *testing.T) (domain.AccountUseCase, domain.AuthUseCase, domain.AuthTokenRepo) {
	logger, err := loggerKit.NewLogger("./go.log", loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	accountRepo := accountMemoryRepo.CreateAccountRepo()
	authTokenRepo, err := authJWTRepo.CreateAuthTokenRepo("test-secret")
	assert.Nil(t, err)

	accountUseCase, err := accountUseCaseLib.CreateAccountUseCase(accountRepo, logger)
	assert.Nil(t, err)
	authUseCase, err := authUseCaseLib.CreateAuthUseCase(authTokenRepo, accountRepo, logger)
	assert.Nil(t, err)

	return accountUseCase, authUseCase, authTokenRepo
}

func signUpRequest() *domain.SignUpRequest {
	return &domain.SignUpRequest{
		FirstName:       "York",
		LastName:        "Chen",
		Email:           "  User@Example.COM ",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRegister(t *testing.T) {
	accountUseCase, _, _ := createUseCases(t)

	account, err := accountUseCase.Register(signUpRequest())
	assert.Nil(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "user@example.com", account.Email)
	assert.Equal(t, domain.RoleUser, account.Role)
	assert.NotEqual(t, "secret1", account.Password)

	t.Run("duplicate email is case and whitespace insensitive", func(t *testing.T) {
		duplicate := signUpRequest()
		duplicate.Email = "user@example.com"
		_, err := accountUseCase.Register(duplicate)
		assert.NotNil(t, err)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusBadRequest, errorCode.HTTPCode)
		assert.Equal(t, "User with this email already exists", errorCode.Message)
	})

	t.Run("validation lists every violation", func(t *testing.T) {
		invalid := signUpRequest()
		invalid.FirstName = "Al"
		invalid.ConfirmPassword = "secret2"
		_, err := accountUseCase.Register(invalid)
		assert.NotNil(t, err)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusBadRequest, errorCode.HTTPCode)
		assert.Equal(t, "Validation failed", errorCode.Message)
		assert.Equal(t, []string{validator.MsgFirstNameLength, validator.MsgPasswordNoMatch}, errorCode.Details)
	})
}

func TestLogin(t *testing.T) {
	accountUseCase, authUseCase, _ := createUseCases(t)

	registered, err := accountUseCase.Register(signUpRequest())
	assert.Nil(t, err)

	t.Run("success issues a session token", func(t *testing.T) {
		account, err := authUseCase.Login("User@Example.COM", "secret1")
		assert.Nil(t, err)
		assert.Equal(t, registered.ID, account.ID)
		assert.NotEmpty(t, account.AccessToken)

		claims, err := authUseCase.Verify(account.AccessToken)
		assert.Nil(t, err)
		assert.Equal(t, registered.ID, claims.AccountID)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, domain.RoleUser, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		account, err := authUseCase.Login("user@example.com", "wrong-password")
		assert.Nil(t, account)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusForbidden, errorCode.HTTPCode)
		assert.Equal(t, "Invalid credentials", errorCode.Message)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authUseCase.Login("nobody@example.com", "secret1")
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusNotFound, errorCode.HTTPCode)
		assert.Equal(t, "No user found with this email", errorCode.Message)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := authUseCase.Login("user@example.com", "")
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusBadRequest, errorCode.HTTPCode)
		assert.Equal(t, "Email and password are required", errorCode.Message)
	})
}

func TestVerify(t *testing.T) {
	accountUseCase, authUseCase, authTokenRepo := createUseCases(t)

	registered, err := accountUseCase.Register(signUpRequest())
	assert.Nil(t, err)

	t.Run("absent token", func(t *testing.T) {
		_, err := authUseCase.Verify("")
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusUnauthorized, errorCode.HTTPCode)
		assert.Equal(t, "Unauthorized - No token provided", errorCode.Message)
		assert.Equal(t, code.TokenRequired, errorCode.Code)
	})

	t.Run("expired token is invalid, not absent", func(t *testing.T) {
		iat := time.Now().Add(-25 * time.Hour)
		expiredToken, err := authTokenRepo.GenerateToken(registered, iat, iat.Add(24*time.Hour))
		assert.Nil(t, err)

		_, err = authUseCase.Verify(expiredToken)
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusUnauthorized, errorCode.HTTPCode)
		assert.Equal(t, code.Expired, errorCode.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := authUseCase.Verify("garbage")
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusUnauthorized, errorCode.HTTPCode)
		assert.Equal(t, code.TokenInvalid, errorCode.Code)
	})
}

func TestProfile(t *testing.T) {
	accountUseCase, _, _ := createUseCases(t)

	registered, err := accountUseCase.Register(signUpRequest())
	assert.Nil(t, err)

	account, err := accountUseCase.Get(registered.ID)
	assert.Nil(t, err)
	assert.Equal(t, "York", account.FirstName)
	assert.Equal(t, "Chen", account.LastName)

	_, err = accountUseCase.Get("gone")
	errorCode := code.ParseErrorCode(err)
	assert.Equal(t, http.StatusNotFound, errorCode.HTTPCode)
	assert.Equal(t, "User not found", errorCode.Message)
}

func TestResetPassword(t *testing.T) {
	accountUseCase, authUseCase, _ := createUseCases(t)

	_, err := accountUseCase.Register(signUpRequest())
	assert.Nil(t, err)

	t.Run("rotates the credential", func(t *testing.T) {
		err := authUseCase.ResetPassword(&domain.ResetPasswordRequest{
			Email:           "User@Example.COM",
			NewPassword:     "secret2",
			ConfirmPassword: "secret2",
		})
		assert.Nil(t, err)

		_, err = authUseCase.Login("user@example.com", "secret1")
		assert.Equal(t, http.StatusForbidden, code.ParseErrorCode(err).HTTPCode)

		account, err := authUseCase.Login("user@example.com", "secret2")
		assert.Nil(t, err)
		assert.NotEmpty(t, account.AccessToken)
	})

	t.Run("short-circuit validation reports only the first violation", func(t *testing.T) {
		err := authUseCase.ResetPassword(&domain.ResetPasswordRequest{
			Email: "not-an-email",
		})
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusBadRequest, errorCode.HTTPCode)
		assert.Equal(t, validator.MsgResetRequired, errorCode.Message)
		assert.Empty(t, errorCode.Details)
	})

	t.Run("unknown email", func(t *testing.T) {
		err := authUseCase.ResetPassword(&domain.ResetPasswordRequest{
			Email:           "nobody@example.com",
			NewPassword:     "secret2",
			ConfirmPassword: "secret2",
		})
		errorCode := code.ParseErrorCode(err)
		assert.Equal(t, http.StatusNotFound, errorCode.HTTPCode)
		assert.Equal(t, "No user found with this email", errorCode.Message)
	})
}
