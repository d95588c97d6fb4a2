//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/infra"
	"salon-backend/internal/pkg/password"
	"salon-backend/internal/testutil/mock/sharedmock"
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)
	acc := account.Reconstruct(id, account.RoleCustomer, "casey", "casey@salon.test", hash, "Casey", "", nil, nil, 0, time.Time{}, time.Time{})
	expiresAt := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("email login is case insensitive", func(t *testing.T) {
		f := newTxFixture(t)
		tokens := sharedmock.NewMockTokenIssuer(gomock.NewController(t))
		f.accounts.EXPECT().FindByLogin(ctx, "casey@salon.test").Return(acc, nil)
		tokens.EXPECT().GenerateToken(id, account.RoleCustomer).Return("signed", expiresAt, nil)

		res, err := commands.NewAuthCommands(f.uow, tokens).Login(ctx, "  Casey@Salon.test ", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, &commands.LoginResult{AccountID: id, Role: account.RoleCustomer, Token: "signed", ExpiresAt: expiresAt}, res)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newTxFixture(t)
		tokens := sharedmock.NewMockTokenIssuer(gomock.NewController(t))
		f.accounts.EXPECT().FindByLogin(ctx, "casey").Return(acc, nil)

		_, err := commands.NewAuthCommands(f.uow, tokens).Login(ctx, "casey", "battery-staple")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown login fails the same way", func(t *testing.T) {
		f := newTxFixture(t)
		tokens := sharedmock.NewMockTokenIssuer(gomock.NewController(t))
		f.accounts.EXPECT().FindByLogin(ctx, "nobody").Return(nil, infra.WrapRepoErr("account not found", nil, infra.KindNotFound))

		_, err := commands.NewAuthCommands(f.uow, tokens).Login(ctx, "nobody", "whatever")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("empty input", func(t *testing.T) {
		f := newTxFixture(t)
		tokens := sharedmock.NewMockTokenIssuer(gomock.NewController(t))

		_, err := commands.NewAuthCommands(f.uow, tokens).Login(ctx, "", "")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
