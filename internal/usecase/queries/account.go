package queries

//go:generate mockgen -source=account.go -destination=../../testutil/mock/queriesmock/account.go -package=queriesmock

import (
	"context"
	"slices"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/infra"

	"github.com/google/uuid"
)

// AccountGroup is how the API partitions accounts: /customers, /stylists and /admins.
type AccountGroup string

const (
	GroupCustomers AccountGroup = "customers"
	GroupStylists  AccountGroup = "stylists"
	GroupAdmins    AccountGroup = "admins"
)

func (g AccountGroup) roles() []string {
	switch g {
	case GroupCustomers:
		return []string{account.RoleCustomer.String()}
	case GroupStylists:
		return []string{account.RoleStylist.String()}
	default:
		return []string{account.RoleManager.String(), account.RoleAdmin.String()}
	}
}

// canRead: stylists are public, customers are visible to themselves and staff, admins to admins.
func (g AccountGroup) canRead(p auth.Principal, id uuid.UUID) bool {
	switch g {
	case GroupStylists:
		return true
	case GroupCustomers:
		return p.UserID == id || p.IsStaff()
	default:
		return p.Role == account.RoleAdmin
	}
}

func (g AccountGroup) canList(p auth.Principal) bool {
	switch g {
	case GroupStylists:
		return true
	case GroupCustomers:
		return p.IsStaff()
	default:
		return p.Role == account.RoleAdmin
	}
}

type AccountReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AccountView, error)
	List(ctx context.Context, f AccountFilter, after *Keyset, limit int) ([]*AccountView, error)
}

type AccountQueries interface {
	Me(ctx context.Context, p auth.Principal) (*AccountView, error)
	Get(ctx context.Context, p auth.Principal, group AccountGroup, id uuid.UUID) (*AccountView, error)
	List(ctx context.Context, p auth.Principal, group AccountGroup, f AccountFilter, cursor *Cursor, limit int) ([]*AccountView, *Cursor, error)
}

type accountQueriesImpl struct {
	store AccountReadStore
}

func NewAccountQueries(store AccountReadStore) AccountQueries {
	return &accountQueriesImpl{store: store}
}

func (q *accountQueriesImpl) Me(ctx context.Context, p auth.Principal) (*AccountView, error) {
	return q.find(ctx, p.UserID)
}

func (q *accountQueriesImpl) Get(ctx context.Context, p auth.Principal, group AccountGroup, id uuid.UUID) (*AccountView, error) {
	if !group.canRead(p, id) {
		return nil, ErrAccess
	}
	v, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	// an id from another group is reported as missing rather than leaking its role
	if !slices.Contains(group.roles(), v.Role) {
		return nil, ErrAccountNotFound
	}
	return v, nil
}

func (q *accountQueriesImpl) List(ctx context.Context, p auth.Principal, group AccountGroup, f AccountFilter, cursor *Cursor, limit int) ([]*AccountView, *Cursor, error) {
	if !group.canList(p) {
		return nil, nil, ErrAccess
	}
	after, limit, err := pageStart(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	f.Roles = group.roles()
	rows, err := q.store.List(ctx, f, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	rows, next := pageEnd(rows, limit, accountKey)
	return rows, next, nil
}

func (q *accountQueriesImpl) find(ctx context.Context, id uuid.UUID) (*AccountView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return v, nil
}

func accountKey(v *AccountView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
