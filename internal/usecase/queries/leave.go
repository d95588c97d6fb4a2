package queries

//go:generate mockgen -source=leave.go -destination=../../testutil/mock/queriesmock/leave.go -package=queriesmock

import (
	"context"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/infra"

	"github.com/google/uuid"
)

type LeaveReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequestView, error)
	List(ctx context.Context, f LeaveFilter, after *Keyset, limit int) ([]*LeaveRequestView, error)
}

type LeaveQueries interface {
	Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*LeaveRequestView, error)
	List(ctx context.Context, p auth.Principal, f LeaveFilter, cursor *Cursor, limit int) ([]*LeaveRequestView, *Cursor, error)
}

type leaveQueriesImpl struct {
	store LeaveReadStore
}

func NewLeaveQueries(store LeaveReadStore) LeaveQueries {
	return &leaveQueriesImpl{store: store}
}

func (q *leaveQueriesImpl) Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*LeaveRequestView, error) {
	if !p.IsStaff() && p.Role != account.RoleStylist {
		return nil, ErrAccess
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}
	if err := p.RequireSelfOrStaff(v.StylistID); err != nil {
		return nil, ErrAccess
	}
	return v, nil
}

func (q *leaveQueriesImpl) List(ctx context.Context, p auth.Principal, f LeaveFilter, cursor *Cursor, limit int) ([]*LeaveRequestView, *Cursor, error) {
	switch {
	case p.IsStaff():
	case p.Role == account.RoleStylist:
		if f.StylistID != nil && *f.StylistID != p.UserID {
			return nil, nil, ErrAccess
		}
		f.StylistID = &p.UserID
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
	rows, next := pageEnd(rows, limit, leaveKey)
	return rows, next, nil
}

func leaveKey(v *LeaveRequestView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
