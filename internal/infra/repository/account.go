package repository

import (
	"context"
	"strings"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var accountColumns = []string{
	"id", "role", "username", "email", "password_hash", "name", "phone",
	"branch_id", "team_id", "loyalty_points", "created_at", "updated_at",
}

type AccountRepository struct {
	db db.DBTX
}

func NewAccountRepository(dbtx db.DBTX) *AccountRepository {
	return &AccountRepository{db: dbtx}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	q := psql.Insert("accounts").Columns(accountColumns...).Values(
		a.ID(), a.Role().String(), a.Username().Value(), a.Email().Value(), a.PasswordHash(),
		a.Name(), a.Phone().Value(), a.BranchID(), a.TeamID(), a.LoyaltyPoints(),
		a.CreatedAt(), a.UpdatedAt(),
	)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create account", err)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	q := psql.Update("accounts").SetMap(map[string]any{
		"username":       a.Username().Value(),
		"email":          a.Email().Value(),
		"password_hash":  a.PasswordHash(),
		"name":           a.Name(),
		"phone":          a.Phone().Value(),
		"branch_id":      a.BranchID(),
		"team_id":        a.TeamID(),
		"loyalty_points": a.LoyaltyPoints(),
		"updated_at":     a.UpdatedAt(),
	}).Where(sq.Eq{"id": a.ID()})
	return execOne(ctx, r.db, q, "account", "failed to update account")
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete("accounts").Where(sq.Eq{"id": id})
	return execOne(ctx, r.db, q, "account", "failed to delete account")
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.findOne(ctx, psql.Select(accountColumns...).From("accounts").Where(sq.Eq{"id": id}))
}

func (r *AccountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.findOne(ctx, psql.Select(accountColumns...).From("accounts").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

// FindByLogin matches either the username or the email, both stored lower-cased.
func (r *AccountRepository) FindByLogin(ctx context.Context, login string) (*account.Account, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	q := psql.Select(accountColumns...).From("accounts").
		Where(sq.Or{sq.Eq{"username": login}, sq.Eq{"email": login}}).
		Limit(1)
	return r.findOne(ctx, q)
}

func (r *AccountRepository) UsernameOrEmailTaken(ctx context.Context, username, email string, excludeID uuid.UUID) (bool, error) {
	inner := psql.Select("1").From("accounts").
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}}).
		Where(sq.NotEq{"id": excludeID})
	q := inner.Prefix("SELECT EXISTS(").Suffix(")")

	row, err := queryRow(ctx, r.db, q)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check account uniqueness", err)
	}
	var taken bool
	if err := row.Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to check account uniqueness", err)
	}
	return taken, nil
}

func (r *AccountRepository) findOne(ctx context.Context, q sq.SelectBuilder) (*account.Account, error) {
	row, err := queryRow(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find account", err)
	}
	a, err := scanAccount(row)
	if err != nil {
		return nil, notFoundOr(err, "account", "failed to find account")
	}
	return a, nil
}

func scanAccount(row rowScanner) (*account.Account, error) {
	var (
		id                                       uuid.UUID
		role, username, email, hash, name, phone string
		branchID, teamID                         uuid.NullUUID
		points                                   int
		createdAt, updatedAt                     time.Time
	)
	if err := row.Scan(&id, &role, &username, &email, &hash, &name, &phone,
		&branchID, &teamID, &points, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return account.Reconstruct(
		id, account.Role(role), username, email, hash, name, phone,
		ptr.UUIDFromNull(branchID), ptr.UUIDFromNull(teamID),
		points, createdAt, updatedAt,
	), nil
}
