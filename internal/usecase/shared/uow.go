package shared

//go:generate mockgen -source=uow.go -destination=../../testutil/mock/sharedmock/uow.go -package=sharedmock

import (
	"context"

	"salon-backend/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Accounts() AccountRepository
	Branches() BranchRepository
	Holidays() HolidayRepository
	Services() ServiceRepository
	Rates() RateRepository
	Appointments() AppointmentRepository
	LeaveRequests() LeaveRequestRepository
	LeaveBalances() LeaveBalanceRepository
	Reviews() ReviewRepository
	Transactions() TransactionRepository
	Promotions() PromotionRepository
	Discounts() DiscountRepository
	Teams() TeamRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}
