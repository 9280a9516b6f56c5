package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-backend/internal/httperr"
)

func init() {
	PasswordCost = bcrypt.MinCost
}

func TestBuildNormalizesEmailAndHashes(t *testing.T) {
	acct, err := Build(NewAccount{Email: "Test2@Example.com", Password: "testpass123", Name: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, "Test2@example.com", acct.Email)
	assert.Equal(t, "Ana", acct.Name)
	assert.True(t, acct.IsActive)
	assert.True(t, acct.IsStaff)
	assert.False(t, acct.IsSuperuser)
	assert.NotEqual(t, "testpass123", acct.PasswordHash)
	assert.True(t, CheckPassword(acct.PasswordHash, "testpass123"))
	assert.False(t, CheckPassword(acct.PasswordHash, "wrong"))
}

func TestBuildRejectsEmptyEmail(t *testing.T) {
	for _, email := range []string{"", "   "} {
		_, err := Build(NewAccount{Email: email, Password: "test123"})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeEmailRequired), "email %q", email)
	}
}

func TestEmptyPasswordIsUnusable(t *testing.T) {
	hash, err := HashPassword("")
	require.NoError(t, err)

	assert.False(t, HasUsablePassword(hash))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword(hash, hash))

	other, err := HashPassword("")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestPromoteToSuperuser(t *testing.T) {
	acct, err := Build(NewAccount{Email: "admin@example.com", Password: "x"})
	require.NoError(t, err)

	PromoteToSuperuser(acct)

	assert.True(t, acct.IsSuperuser)
	assert.False(t, acct.IsStaff)
}
