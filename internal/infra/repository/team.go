package repository

import (
	"context"

	"salon-backend/internal/domain/team"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var teamColumns = []string{"id", "branch_id", "name", "manager_id", "created_at", "updated_at"}

type TeamRepository struct {
	db db.DBTX
}

func NewTeamRepository(dbtx db.DBTX) *TeamRepository {
	return &TeamRepository{db: dbtx}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	q := psql.Insert("teams").Columns(teamColumns...).
		Values(t.ID, t.BranchID, t.Name, t.ManagerID, t.CreatedAt, t.UpdatedAt)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create team", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	q := psql.Update("teams").SetMap(map[string]any{
		"name":       t.Name,
		"manager_id": t.ManagerID,
		"updated_at": t.UpdatedAt,
	}).Where(sq.Eq{"id": t.ID})
	return execOne(ctx, r.db, q, "team", "failed to update team")
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, psql.Delete("teams").Where(sq.Eq{"id": id}), "team", "failed to delete team")
}

func (r *TeamRepository) FindByID(ctx context.Context, id uuid.UUID) (team.Team, error) {
	row, err := queryRow(ctx, r.db, psql.Select(teamColumns...).From("teams").Where(sq.Eq{"id": id}))
	if err != nil {
		return team.Team{}, infra.WrapRepoErr("failed to find team", err)
	}
	var (
		t         team.Team
		managerID uuid.NullUUID
	)
	if err := row.Scan(&t.ID, &t.BranchID, &t.Name, &managerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return team.Team{}, notFoundOr(err, "team", "failed to find team")
	}
	t.ManagerID = ptr.UUIDFromNull(managerID)
	return t, nil
}
