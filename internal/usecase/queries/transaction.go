package queries

//go:generate mockgen -source=transaction.go -destination=../../testutil/mock/queriesmock/transaction.go -package=queriesmock

import (
	"context"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/infra"

	"github.com/google/uuid"
)

type TransactionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	List(ctx context.Context, f TransactionFilter, after *Keyset, limit int) ([]*TransactionView, error)
}

type TransactionQueries interface {
	Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*TransactionView, error)
	List(ctx context.Context, p auth.Principal, f TransactionFilter, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

func (q *transactionQueriesImpl) Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*TransactionView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	if err := p.RequireSelfOrStaff(v.CustomerID); err != nil {
		return nil, ErrAccess
	}
	return v, nil
}

func (q *transactionQueriesImpl) List(ctx context.Context, p auth.Principal, f TransactionFilter, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	switch {
	case p.IsStaff():
	case p.Role == account.RoleCustomer:
		if f.CustomerID != nil && *f.CustomerID != p.UserID {
			return nil, nil, ErrAccess
		}
		f.CustomerID = &p.UserID
	default:
		return nil, nil, ErrAccess
	}

	after, limit, err := pageStart(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, f, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	rows, next := pageEnd(rows, limit, transactionKey)
	return rows, next, nil
}

func transactionKey(v *TransactionView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
