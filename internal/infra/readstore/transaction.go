package readstore

import (
	"context"
	"database/sql"

	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"
	"salon-backend/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var transactionViewColumns = []string{
	"t.id", "t.customer_id", "t.appointment_id", "t.amount_cents", "t.method", "t.status",
	"t.provider_ref", "t.created_at", "t.updated_at",
}

type TransactionReadStore struct {
	db db.DBTX
}

func NewTransactionReadStore(dbtx db.DBTX) *TransactionReadStore {
	return &TransactionReadStore{db: dbtx}
}

func (r *TransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TransactionView, error) {
	q := psql.Select(transactionViewColumns...).From("transactions t").Where(sq.Eq{"t.id": id})
	return findOne(ctx, r.db, q, scanTransactionView, "transaction")
}

func (r *TransactionReadStore) List(ctx context.Context, f queries.TransactionFilter, after *queries.Keyset, limit int) ([]*queries.TransactionView, error) {
	q := psql.Select(transactionViewColumns...).From("transactions t")
	if f.CustomerID != nil {
		q = q.Where(sq.Eq{"t.customer_id": *f.CustomerID})
	}
	views, err := queryAll(ctx, r.db, page(q, "t", after, limit), scanTransactionView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	return views, nil
}

func scanTransactionView(row rowScanner) (*queries.TransactionView, error) {
	var (
		v             queries.TransactionView
		appointmentID uuid.NullUUID
		providerRef   sql.NullString
	)
	if err := row.Scan(
		&v.ID, &v.CustomerID, &appointmentID, &v.AmountCents, &v.Method, &v.Status,
		&providerRef, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.AppointmentID = ptr.UUIDFromNull(appointmentID)
	v.ProviderRef = ptr.StringFromNull(providerRef)
	return &v, nil
}
