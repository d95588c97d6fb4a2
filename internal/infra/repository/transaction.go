package repository

import (
	"context"
	"database/sql"

	"salon-backend/internal/domain/payment"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var transactionColumns = []string{
	"id", "customer_id", "appointment_id", "amount_cents", "method", "status", "provider_ref", "created_at", "updated_at",
}

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(dbtx db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: dbtx}
}

func (r *TransactionRepository) Create(ctx context.Context, t payment.Transaction) error {
	q := psql.Insert("transactions").Columns(transactionColumns...).Values(
		t.ID, t.CustomerID, t.AppointmentID, t.AmountCents, string(t.Method), string(t.Status),
		t.ProviderRef, t.CreatedAt, t.UpdatedAt,
	)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, t payment.Transaction) error {
	q := psql.Update("transactions").SetMap(map[string]any{
		"status":       string(t.Status),
		"provider_ref": t.ProviderRef,
		"updated_at":   t.UpdatedAt,
	}).Where(sq.Eq{"id": t.ID})
	return execOne(ctx, r.db, q, "transaction", "failed to update transaction")
}

func (r *TransactionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (payment.Transaction, error) {
	q := psql.Select(transactionColumns...).From("transactions").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	row, err := queryRow(ctx, r.db, q)
	if err != nil {
		return payment.Transaction{}, infra.WrapRepoErr("failed to find transaction", err)
	}
	var (
		t             payment.Transaction
		appointmentID uuid.NullUUID
		method        string
		status        string
		providerRef   sql.NullString
	)
	if err := row.Scan(&t.ID, &t.CustomerID, &appointmentID, &t.AmountCents, &method, &status,
		&providerRef, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return payment.Transaction{}, notFoundOr(err, "transaction", "failed to find transaction")
	}
	t.AppointmentID = ptr.UUIDFromNull(appointmentID)
	t.Method = payment.Method(method)
	t.Status = payment.Status(status)
	t.ProviderRef = ptr.StringFromNull(providerRef)
	return t, nil
}
