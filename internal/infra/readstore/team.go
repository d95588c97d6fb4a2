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

var teamViewColumns = []string{"id", "branch_id", "name", "manager_id", "created_at", "updated_at"}

type TeamReadStore struct {
	db db.DBTX
}

func NewTeamReadStore(dbtx db.DBTX) *TeamReadStore {
	return &TeamReadStore{db: dbtx}
}

func (r *TeamReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TeamView, error) {
	q := psql.Select(teamViewColumns...).From("teams").Where(sq.Eq{"id": id})
	return findOne(ctx, r.db, q, scanTeamView, "team")
}

func (r *TeamReadStore) List(ctx context.Context, branchID *uuid.UUID) ([]*queries.TeamView, error) {
	q := psql.Select(teamViewColumns...).From("teams")
	if branchID != nil {
		q = q.Where(sq.Eq{"branch_id": *branchID})
	}
	views, err := queryAll(ctx, r.db, q.OrderBy("name", "id"), scanTeamView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list teams", err)
	}
	return views, nil
}

func scanTeamView(row rowScanner) (*queries.TeamView, error) {
	var (
		v         queries.TeamView
		managerID uuid.NullUUID
	)
	if err := row.Scan(&v.ID, &v.BranchID, &v.Name, &managerID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.ManagerID = ptr.UUIDFromNull(managerID)
	return &v, nil
}
