package queries

//go:generate mockgen -source=team.go -destination=../../testutil/mock/queriesmock/team.go -package=queriesmock

import (
	"context"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/infra"

	"github.com/google/uuid"
)

type TeamReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TeamView, error)
	List(ctx context.Context, branchID *uuid.UUID) ([]*TeamView, error)
}

type TeamQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*TeamView, error)
	List(ctx context.Context, branchID *uuid.UUID) ([]*TeamView, error)
	Members(ctx context.Context, teamID uuid.UUID, cursor *Cursor, limit int) ([]*AccountView, *Cursor, error)
}

type teamQueriesImpl struct {
	teams    TeamReadStore
	accounts AccountReadStore
}

func NewTeamQueries(teams TeamReadStore, accounts AccountReadStore) TeamQueries {
	return &teamQueriesImpl{teams: teams, accounts: accounts}
}

func (q *teamQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*TeamView, error) {
	v, err := q.teams.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *teamQueriesImpl) List(ctx context.Context, branchID *uuid.UUID) ([]*TeamView, error) {
	return q.teams.List(ctx, branchID)
}

func (q *teamQueriesImpl) Members(ctx context.Context, teamID uuid.UUID, cursor *Cursor, limit int) ([]*AccountView, *Cursor, error) {
	if _, err := q.Get(ctx, teamID); err != nil {
		return nil, nil, err
	}
	after, limit, err := pageStart(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	f := AccountFilter{Roles: []string{account.RoleStylist.String()}, TeamID: &teamID}
	rows, err := q.accounts.List(ctx, f, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	rows, next := pageEnd(rows, limit, accountKey)
	return rows, next, nil
}
