package memory

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/superj80820/user-service/domain"
	utilKit "github.com/superj80820/user-service/kit/util"
)

type accountRepo struct {
	accountByID      map[string]*domain.Account
	accountIDByEmail map[string]string
	lock             *sync.RWMutex
}

// CreateAccountRepo is the in-memory account store, used by tests and local
// development. Uniqueness on email holds under the write lock.
func CreateAccountRepo() domain.AccountRepo {
	return &accountRepo{
		accountByID:      make(map[string]*domain.Account),
		accountIDByEmail: make(map[string]string),
		lock:             new(sync.RWMutex),
	}
}

func (a *accountRepo) Create(firstName, lastName, email, passwordHash string) (*domain.Account, error) {
	uniqueIDGenerate, err := utilKit.GetUniqueIDGenerate()
	if err != nil {
		return nil, errors.Wrap(err, "generate unique id failed")
	}

	a.lock.Lock()
	defer a.lock.Unlock()

	if _, ok := a.accountIDByEmail[email]; ok {
		return nil, errors.Wrap(domain.ErrDuplicate, "email already exists")
	}

	now := time.Now()
	account := &domain.Account{
		ID:        uniqueIDGenerate.Generate().GetBase62(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  passwordHash,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.accountByID[account.ID] = account
	a.accountIDByEmail[account.Email] = account.ID

	return cloneAccount(account), nil
}

func (a *accountRepo) Get(accountID string) (*domain.Account, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()

	account, ok := a.accountByID[accountID]
	if !ok {
		return nil, errors.Wrap(domain.ErrNoData, "account not found")
	}
	return cloneAccount(account), nil
}

func (a *accountRepo) GetByEmail(email string) (*domain.Account, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()

	accountID, ok := a.accountIDByEmail[email]
	if !ok {
		return nil, errors.Wrap(domain.ErrNoData, "account not found")
	}
	return cloneAccount(a.accountByID[accountID]), nil
}

func (a *accountRepo) UpdatePassword(accountID, passwordHash string) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	account, ok := a.accountByID[accountID]
	if !ok {
		return errors.Wrap(domain.ErrNoData, "account not found")
	}
	account.Password = passwordHash
	account.UpdatedAt = time.Now()
	return nil
}

func cloneAccount(account *domain.Account) *domain.Account {
	accountClone := *account
	return &accountClone
}
