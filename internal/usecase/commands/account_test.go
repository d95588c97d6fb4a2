//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/infra"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/pkg/ptr"
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountCommands_Create(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()

	customerInput := commands.CreateAccountInput{
		Role:     account.RoleCustomer,
		Username: "casey",
		Email:    "Casey@Salon.test",
		Password: "s3cret-pass",
		Name:     "Casey",
	}

	t.Run("public customer signup", func(t *testing.T) {
		f := newTxFixture(t)
		f.accounts.EXPECT().UsernameOrEmailTaken(ctx, "casey", "casey@salon.test", uuid.Nil).Return(false, nil)
		var stored *account.Account
		f.accounts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *account.Account) error {
			stored = a
			return nil
		})

		id, err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).Create(ctx, auth.Principal{}, customerInput)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), id)
		assert.NotEqual(t, "s3cret-pass", stored.PasswordHash())
		assert.Equal(t, account.RoleCustomer, stored.Role())
	})

	t.Run("taken username or email is a conflict", func(t *testing.T) {
		f := newTxFixture(t)
		f.accounts.EXPECT().UsernameOrEmailTaken(ctx, "casey", "casey@salon.test", uuid.Nil).Return(true, nil)

		_, err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).Create(ctx, auth.Principal{}, customerInput)
		assert.ErrorIs(t, err, account.ErrUsernameOrEmailTaken)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	tests := []struct {
		name  string
		p     auth.Principal
		input commands.CreateAccountInput
		want  error
	}{
		{
			name:  "customer cannot add a stylist",
			p:     principal(account.RoleCustomer),
			input: commands.CreateAccountInput{Role: account.RoleStylist, Username: "sam", Email: "sam@salon.test", Password: "longenough", Name: "Sam", BranchID: &branchID},
			want:  auth.ErrForbidden,
		},
		{
			name:  "manager cannot add an admin",
			p:     principal(account.RoleManager),
			input: commands.CreateAccountInput{Role: account.RoleAdmin, Username: "root", Email: "root@salon.test", Password: "longenough", Name: "Root"},
			want:  auth.ErrForbidden,
		},
		{
			name:  "short password",
			p:     auth.Principal{},
			input: commands.CreateAccountInput{Role: account.RoleCustomer, Username: "casey", Email: "casey@salon.test", Password: "short", Name: "Casey"},
			want:  account.ErrPasswordTooWeak,
		},
		{
			name:  "stylist without branch",
			p:     principal(account.RoleAdmin),
			input: commands.CreateAccountInput{Role: account.RoleStylist, Username: "sam", Email: "sam@salon.test", Password: "longenough", Name: "Sam"},
			want:  account.ErrBranchRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t)
			_, err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).Create(ctx, tt.p, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAccountCommands_Update(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	customers := []account.Role{account.RoleCustomer}

	t.Run("self update of the name skips the uniqueness check", func(t *testing.T) {
		f := newTxFixture(t)
		f.accounts.EXPECT().FindByIDForUpdate(ctx, customerID).Return(customerAccount(customerID, 0), nil)
		f.accounts.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *account.Account) error {
			assert.Equal(t, "Casey Tan", a.Name())
			return nil
		})

		p := auth.Principal{UserID: customerID, Role: account.RoleCustomer}
		err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).
			Update(ctx, p, customerID, customers, commands.UpdateAccountInput{Name: ptr.Of("Casey Tan")})
		require.NoError(t, err)
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		f := newTxFixture(t)
		f.accounts.EXPECT().FindByIDForUpdate(ctx, customerID).Return(customerAccount(customerID, 0), nil)

		err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).
			Update(ctx, principal(account.RoleCustomer), customerID, customers, commands.UpdateAccountInput{Name: ptr.Of("X")})
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("role outside the route is not found", func(t *testing.T) {
		f := newTxFixture(t)
		admin := account.Reconstruct(customerID, account.RoleAdmin, "root", "root@salon.test", "x", "Root", "", nil, nil, 0, time.Time{}, time.Time{})
		f.accounts.EXPECT().FindByIDForUpdate(ctx, customerID).Return(admin, nil)

		err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).
			Update(ctx, principal(account.RoleAdmin), customerID, customers, commands.UpdateAccountInput{Name: ptr.Of("X")})
		assert.ErrorIs(t, err, commands.ErrAccountNotFound)
	})

	t.Run("email change to a taken address", func(t *testing.T) {
		f := newTxFixture(t)
		f.accounts.EXPECT().FindByIDForUpdate(ctx, customerID).Return(customerAccount(customerID, 0), nil)
		f.accounts.EXPECT().UsernameOrEmailTaken(ctx, "casey", "taken@salon.test", customerID).Return(true, nil)

		p := auth.Principal{UserID: customerID, Role: account.RoleCustomer}
		err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).
			Update(ctx, p, customerID, customers, commands.UpdateAccountInput{Email: ptr.Of("taken@salon.test")})
		assert.ErrorIs(t, err, account.ErrUsernameOrEmailTaken)
	})
}

func TestAccountCommands_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("admin deletes a customer", func(t *testing.T) {
		f := newTxFixture(t)
		f.accounts.EXPECT().FindByID(ctx, id).Return(customerAccount(id, 0), nil)
		f.accounts.EXPECT().Delete(ctx, id).Return(nil)

		err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).
			Delete(ctx, principal(account.RoleAdmin), id, []account.Role{account.RoleCustomer})
		require.NoError(t, err)
	})

	t.Run("missing account", func(t *testing.T) {
		f := newTxFixture(t)
		f.accounts.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("account not found", nil, infra.KindNotFound))

		err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).
			Delete(ctx, principal(account.RoleAdmin), id, []account.Role{account.RoleCustomer})
		assert.ErrorIs(t, err, commands.ErrAccountNotFound)
	})

	t.Run("manager cannot delete a customer", func(t *testing.T) {
		f := newTxFixture(t)
		f.accounts.EXPECT().FindByID(ctx, id).Return(customerAccount(id, 0), nil)

		err := commands.NewAccountCommands(f.uow, clock.NewRealClock()).
			Delete(ctx, principal(account.RoleManager), id, []account.Role{account.RoleCustomer})
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}
