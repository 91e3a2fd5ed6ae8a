package auth

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/superj80820/user-service/domain"
	"github.com/superj80820/user-service/kit/code"
	loggerKit "github.com/superj80820/user-service/kit/logger"
	utilKit "github.com/superj80820/user-service/kit/util"
	"github.com/superj80820/user-service/usecase/validator"
)

// SessionTokenLifetime is the fixed lifetime of a session token. Logout does
// not revoke server-side, a captured token stays valid until this expires.
const SessionTokenLifetime = 24 * time.Hour

type authUseCase struct {
	authTokenRepo domain.AuthTokenRepo
	accountRepo   domain.AccountRepo
	logger        *loggerKit.Logger
}

func CreateAuthUseCase(authTokenRepo domain.AuthTokenRepo, accountRepo domain.AccountRepo, logger *loggerKit.Logger) (domain.AuthUseCase, error) {
	if logger == nil {
		return nil, errors.New("create use case failed")
	}
	return &authUseCase{
		authTokenRepo: authTokenRepo,
		accountRepo:   accountRepo,
		logger:        logger,
	}, nil
}

func (a *authUseCase) Login(email, password string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.MissingCredentials)
	}

	account, err := a.accountRepo.GetByEmail(domain.NormalizeEmail(email))
	if errors.Is(err, domain.ErrNoData) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddCode(code.UserNotFound).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account by email failed")
	}

	if err := utilKit.CompareBcrypt([]byte(account.Password), []byte(password)); err != nil {
		if errors.Is(err, utilKit.ErrBcryptMismatch) {
			return nil, code.CreateErrorCode(http.StatusForbidden).AddCode(code.PasswordInvalid).AddErrorMetaData(err)
		}
		return nil, errors.Wrap(err, "compare password failed")
	}

	now := time.Now()
	signedToken, err := a.authTokenRepo.GenerateToken(account, now, now.Add(SessionTokenLifetime))
	if err != nil {
		return nil, errors.Wrap(err, "signed token failed")
	}
	account.AccessToken = signedToken

	return account, nil
}

func (a *authUseCase) Verify(token string) (*domain.AccountClaims, error) {
	if token == "" {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.TokenRequired)
	}

	claims, err := a.authTokenRepo.VerifyToken(token)
	if errors.Is(err, domain.ErrExpired) {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.Expired).AddErrorMetaData(err)
	} else if errors.Is(err, domain.ErrInvalidData) {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.TokenInvalid).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "verify token failed")
	}

	return claims, nil
}

func (a *authUseCase) ResetPassword(reset *domain.ResetPasswordRequest) error {
	if violation := validator.ValidateResetPassword(reset); violation != "" {
		return code.CreateErrorCode(http.StatusBadRequest).AddMessage(violation)
	}

	// knowing the email is the only identity proof here, same as the original
	// service. A real hardening would add a reset token sent out of band.
	account, err := a.accountRepo.GetByEmail(domain.NormalizeEmail(reset.Email))
	if errors.Is(err, domain.ErrNoData) {
		return code.CreateErrorCode(http.StatusNotFound).AddCode(code.UserNotFound).AddErrorMetaData(err)
	} else if err != nil {
		return errors.Wrap(err, "get account by email failed")
	}

	passwordHash, err := utilKit.GetBcrypt(reset.NewPassword)
	if err != nil {
		return errors.Wrap(err, "hash password failed")
	}

	if err := a.accountRepo.UpdatePassword(account.ID, passwordHash); err != nil {
		if errors.Is(err, domain.ErrNoData) {
			return code.CreateErrorCode(http.StatusNotFound).AddCode(code.UserNotFound).AddErrorMetaData(err)
		}
		return errors.Wrap(err, "update password failed")
	}

	a.logger.With(loggerKit.String("account-id", account.ID)).Info("password rotated")

	return nil
}
