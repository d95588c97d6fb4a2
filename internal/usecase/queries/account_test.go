//go:build unit

package queries_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/infra"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/testutil/mock/queriesmock"
	"salon-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func principal(role account.Role) auth.Principal {
	return auth.Principal{UserID: uuid.New(), Role: role}
}

func accountView(role account.Role, createdAt time.Time) *queries.AccountView {
	return &queries.AccountView{ID: uuid.New(), Role: role.String(), Username: "user", CreatedAt: createdAt}
}

func TestAccountQueries_Get(t *testing.T) {
	ctx := context.Background()
	notFound := infra.WrapRepoErr("account not found", sql.ErrNoRows)

	testCases := []struct {
		name       string
		principal  auth.Principal
		group      queries.AccountGroup
		stored     *queries.AccountView
		storeErr   error
		callsStore bool
		expectKind errs.Kind
	}{
		{
			name:       "stylists are public",
			principal:  auth.Principal{},
			group:      queries.GroupStylists,
			stored:     accountView(account.RoleStylist, time.Now()),
			callsStore: true,
		},
		{
			name:       "customer cannot read another customer",
			principal:  principal(account.RoleCustomer),
			group:      queries.GroupCustomers,
			expectKind: errs.KindForbidden,
		},
		{
			name:       "manager reads customers",
			principal:  principal(account.RoleManager),
			group:      queries.GroupCustomers,
			stored:     accountView(account.RoleCustomer, time.Now()),
			callsStore: true,
		},
		{
			name:       "manager cannot read admins",
			principal:  principal(account.RoleManager),
			group:      queries.GroupAdmins,
			expectKind: errs.KindForbidden,
		},
		{
			name:       "id of another group is not found",
			principal:  principal(account.RoleAdmin),
			group:      queries.GroupStylists,
			stored:     accountView(account.RoleCustomer, time.Now()),
			callsStore: true,
			expectKind: errs.KindNotFound,
		},
		{
			name:       "missing account",
			principal:  principal(account.RoleAdmin),
			group:      queries.GroupAdmins,
			storeErr:   notFound,
			callsStore: true,
			expectKind: errs.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockAccountReadStore(ctrl)
			id := uuid.New()
			if tc.callsStore {
				store.EXPECT().FindByID(ctx, id).Return(tc.stored, tc.storeErr)
			}

			v, err := queries.NewAccountQueries(store).Get(ctx, tc.principal, tc.group, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectKind, errs.KindOf(err))
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.stored, v)
		})
	}
}

func TestAccountQueries_List_Pagination(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAccountReadStore(ctrl)
	q := queries.NewAccountQueries(store)
	admin := principal(account.RoleAdmin)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []*queries.AccountView{
		accountView(account.RoleStylist, base.Add(3*time.Minute)),
		accountView(account.RoleStylist, base.Add(2*time.Minute)),
		accountView(account.RoleStylist, base.Add(time.Minute)),
	}

	store.EXPECT().
		List(ctx, queries.AccountFilter{Roles: []string{"stylist"}}, (*queries.Keyset)(nil), 3).
		Return(rows, nil)

	page, next, err := q.List(ctx, admin, queries.GroupStylists, queries.AccountFilter{}, nil, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	require.NotNil(t, next)

	createdAt, id, err := queries.DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(rows[1].CreatedAt))
	assert.Equal(t, rows[1].ID, id)

	store.EXPECT().
		List(ctx, gomock.Any(), &queries.Keyset{CreatedAt: createdAt, ID: id}, 3).
		Return(rows[2:], nil)

	page, next, err = q.List(ctx, admin, queries.GroupStylists, queries.AccountFilter{}, next, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Nil(t, next)
}

func TestAccountQueries_List_Errors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	q := queries.NewAccountQueries(queriesmock.NewMockAccountReadStore(ctrl))

	_, _, err := q.List(ctx, principal(account.RoleCustomer), queries.GroupCustomers, queries.AccountFilter{}, nil, 10)
	assert.Equal(t, errs.KindForbidden, errs.KindOf(err))

	_, _, err = q.List(ctx, principal(account.RoleAdmin), queries.GroupAdmins, queries.AccountFilter{}, &queries.Cursor{After: "garbage"}, 10)
	assert.ErrorIs(t, err, queries.ErrInvalidCursor)
}
