package account

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/superj80820/user-service/domain"
	"github.com/superj80820/user-service/kit/code"
	loggerKit "github.com/superj80820/user-service/kit/logger"
	utilKit "github.com/superj80820/user-service/kit/util"
	"github.com/superj80820/user-service/usecase/validator"
)

type accountUseCase struct {
	accountRepo domain.AccountRepo
	logger      *loggerKit.Logger
}

func CreateAccountUseCase(accountRepo domain.AccountRepo, logger *loggerKit.Logger) (domain.AccountUseCase, error) {
	if logger == nil {
		return nil, errors.New("create use case failed")
	}
	return &accountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}, nil
}

func (a *accountUseCase) Register(signUp *domain.SignUpRequest) (*domain.Account, error) {
	if violations := validator.ValidateSignUp(signUp); len(violations) != 0 {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.ValidationFailed).AddDetails(violations...)
	}

	email := domain.NormalizeEmail(signUp.Email)

	if _, err := a.accountRepo.GetByEmail(email); err == nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.DuplicateEmail)
	} else if !errors.Is(err, domain.ErrNoData) {
		return nil, errors.Wrap(err, "get account by email failed")
	}

	passwordHash, err := utilKit.GetBcrypt(signUp.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password failed")
	}

	account, err := a.accountRepo.Create(
		strings.TrimSpace(signUp.FirstName),
		strings.TrimSpace(signUp.LastName),
		email,
		passwordHash,
	)
	// the store owns uniqueness, a concurrent create for the same email can
	// still lose the race after the check above
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.DuplicateEmail).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "create account failed")
	}

	a.logger.With(loggerKit.String("account-id", account.ID)).Info("account registered")

	return account, nil
}

func (a *accountUseCase) Get(accountID string) (*domain.Account, error) {
	account, err := a.accountRepo.Get(accountID)
	if errors.Is(err, domain.ErrNoData) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddCode(code.AccountNotFound).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return account, nil
}
