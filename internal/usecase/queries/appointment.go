package queries

//go:generate mockgen -source=appointment.go -destination=../../testutil/mock/queriesmock/appointment.go -package=queriesmock

import (
	"context"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/infra"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, f AppointmentFilter, after *Keyset, limit int) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*AppointmentView, error)
	// List narrows the filter to the caller's own appointments unless the caller is staff.
	List(ctx context.Context, p auth.Principal, f AppointmentFilter, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*AppointmentView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	switch {
	case p.IsStaff():
	case p.Role == account.RoleCustomer && v.CustomerID == p.UserID:
	case p.Role == account.RoleStylist && v.StylistID == p.UserID:
	default:
		return nil, ErrAccess
	}
	return v, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, p auth.Principal, f AppointmentFilter, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error) {
	switch p.Role {
	case account.RoleCustomer:
		if f.CustomerID != nil && *f.CustomerID != p.UserID {
			return nil, nil, ErrAccess
		}
		f.CustomerID = &p.UserID
	case account.RoleStylist:
		if f.StylistID != nil && *f.StylistID != p.UserID {
			return nil, nil, ErrAccess
		}
		f.StylistID = &p.UserID
	default:
		if !p.IsStaff() {
			return nil, nil, ErrAccess
		}
	}

	after, limit, err := pageStart(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, f, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	rows, next := pageEnd(rows, limit, appointmentKey)
	return rows, next, nil
}

func appointmentKey(v *AppointmentView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
