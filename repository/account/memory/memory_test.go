package memory

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/superj80820/user-service/domain"
)

func TestAccountRepo(t *testing.T) {
	accountRepo := CreateAccountRepo()

	account, err := accountRepo.Create("York", "Chen", "user@example.com", "hash")
	assert.Nil(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, domain.RoleUser, account.Role)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := accountRepo.Create("Other", "Chen", "user@example.com", "hash")
		assert.True(t, errors.Is(err, domain.ErrDuplicate))
	})

	t.Run("get by id and email", func(t *testing.T) {
		byID, err := accountRepo.Get(account.ID)
		assert.Nil(t, err)
		assert.Equal(t, account.Email, byID.Email)

		byEmail, err := accountRepo.GetByEmail("user@example.com")
		assert.Nil(t, err)
		assert.Equal(t, account.ID, byEmail.ID)

		_, err = accountRepo.Get("missing")
		assert.True(t, errors.Is(err, domain.ErrNoData))

		_, err = accountRepo.GetByEmail("missing@example.com")
		assert.True(t, errors.Is(err, domain.ErrNoData))
	})

	t.Run("update password touches updated at", func(t *testing.T) {
		assert.Nil(t, accountRepo.UpdatePassword(account.ID, "new-hash"))

		updated, err := accountRepo.Get(account.ID)
		assert.Nil(t, err)
		assert.Equal(t, "new-hash", updated.Password)
		assert.True(t, !updated.UpdatedAt.Before(account.UpdatedAt))

		assert.True(t, errors.Is(accountRepo.UpdatePassword("missing", "new-hash"), domain.ErrNoData))
	})

	t.Run("read result is a copy", func(t *testing.T) {
		byID, err := accountRepo.Get(account.ID)
		assert.Nil(t, err)
		byID.Password = "mutated"

		again, err := accountRepo.Get(account.ID)
		assert.Nil(t, err)
		assert.Equal(t, "new-hash", again.Password)
	})
}
