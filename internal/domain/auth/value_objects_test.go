//go:build unit

package auth_test

import (
	"testing"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	c, err := auth.NewCredentials("  Jane@Example.com ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", c.Login())

	_, err = auth.NewCredentials("", "secret123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, errs.KindUnauthorized, errs.KindOf(err))
}

func TestPrincipal(t *testing.T) {
	self := uuid.New()
	customer := auth.Principal{UserID: self, Role: account.RoleCustomer}
	manager := auth.Principal{UserID: uuid.New(), Role: account.RoleManager}

	assert.NoError(t, customer.RequireSelfOrStaff(self))
	assert.ErrorIs(t, customer.RequireSelfOrStaff(uuid.New()), auth.ErrForbidden)
	assert.NoError(t, manager.RequireSelfOrStaff(self))

	assert.NoError(t, manager.Require(account.RoleManager, account.RoleAdmin))
	err := customer.Require(account.RoleAdmin)
	assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
}
