package readstore

import (
	"context"

	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"
	"salon-backend/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var accountViewColumns = []string{
	"a.id", "a.role", "a.username", "a.email", "a.name", "a.phone",
	"a.branch_id", "a.team_id", "a.loyalty_points", "a.created_at", "a.updated_at",
}

type AccountReadStore struct {
	db db.DBTX
}

func NewAccountReadStore(dbtx db.DBTX) *AccountReadStore {
	return &AccountReadStore{db: dbtx}
}

func (r *AccountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	q := psql.Select(accountViewColumns...).From("accounts a").Where(sq.Eq{"a.id": id})
	return findOne(ctx, r.db, q, scanAccountView, "account")
}

func (r *AccountReadStore) List(ctx context.Context, f queries.AccountFilter, after *queries.Keyset, limit int) ([]*queries.AccountView, error) {
	q := psql.Select(accountViewColumns...).From("accounts a")
	if len(f.Roles) > 0 {
		q = q.Where(sq.Eq{"a.role": f.Roles})
	}
	if f.BranchID != nil {
		q = q.Where(sq.Eq{"a.branch_id": *f.BranchID})
	}
	if f.TeamID != nil {
		q = q.Where(sq.Eq{"a.team_id": *f.TeamID})
	}

	views, err := queryAll(ctx, r.db, page(q, "a", after, limit), scanAccountView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accounts", err)
	}
	return views, nil
}

func scanAccountView(row rowScanner) (*queries.AccountView, error) {
	var (
		v        queries.AccountView
		branchID uuid.NullUUID
		teamID   uuid.NullUUID
	)
	if err := row.Scan(
		&v.ID, &v.Role, &v.Username, &v.Email, &v.Name, &v.Phone,
		&branchID, &teamID, &v.LoyaltyPoints, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.BranchID = ptr.UUIDFromNull(branchID)
	v.TeamID = ptr.UUIDFromNull(teamID)
	return &v, nil
}
