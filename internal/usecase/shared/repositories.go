package shared

//go:generate mockgen -source=repositories.go -destination=../../testutil/mock/sharedmock/repositories.go -package=sharedmock

import (
	"context"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/appointment"
	"salon-backend/internal/domain/branch"
	"salon-backend/internal/domain/catalog"
	"salon-backend/internal/domain/leave"
	"salon-backend/internal/domain/notification"
	"salon-backend/internal/domain/payment"
	"salon-backend/internal/domain/promotion"
	"salon-backend/internal/domain/review"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/domain/team"

	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	Update(ctx context.Context, a *account.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error)
	FindByLogin(ctx context.Context, login string) (*account.Account, error)
	// UsernameOrEmailTaken ignores the account excludeID (uuid.Nil for none).
	UsernameOrEmailTaken(ctx context.Context, username, email string, excludeID uuid.UUID) (bool, error)
}

type BranchRepository interface {
	Create(ctx context.Context, b branch.Branch) error
	Update(ctx context.Context, b branch.Branch) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (branch.Branch, error)
}

type HolidayRepository interface {
	Create(ctx context.Context, h branch.Holiday) error
	// Upsert keeps one holiday per branch scope and date.
	Upsert(ctx context.Context, h branch.Holiday) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListFor returns holidays of the branch and global ones between from and to inclusive.
	ListFor(ctx context.Context, branchID uuid.UUID, from, to schedule.Date) ([]branch.Holiday, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s catalog.Service) error
	Update(ctx context.Context, s catalog.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (catalog.Service, error)
}

type RateRepository interface {
	Create(ctx context.Context, r catalog.Rate) error
	Delete(ctx context.Context, serviceID, rateID uuid.UUID) error
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]catalog.Rate, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *appointment.Appointment) error
	UpdateStatus(ctx context.Context, a *appointment.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	// ListBlocking returns pending and confirmed intervals of the stylist intersecting [from, to).
	ListBlocking(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]schedule.Interval, error)
	ListByStatusBetween(ctx context.Context, status appointment.Status, from, to time.Time) ([]*appointment.Appointment, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, r *leave.Request) error
	Update(ctx context.Context, r *leave.Request) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*leave.Request, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*leave.Request, error)
	// ListApproved returns approved leave of the stylist overlapping [from, to].
	ListApproved(ctx context.Context, stylistID uuid.UUID, from, to schedule.Date) ([]schedule.DateRange, error)
}

type LeaveBalanceRepository interface {
	GetOrCreate(ctx context.Context, stylistID uuid.UUID, year int, allotment leave.Allotment, now time.Time) (leave.GetOrCreateResult, error)
	FindForUpdate(ctx context.Context, stylistID uuid.UUID, year int) (leave.Balance, error)
	Update(ctx context.Context, b leave.Balance) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
	ExistsForAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t payment.Transaction) error
	Update(ctx context.Context, t payment.Transaction) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (payment.Transaction, error)
}

type PromotionRepository interface {
	Create(ctx context.Context, p promotion.Promotion) error
	Update(ctx context.Context, p promotion.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (promotion.Promotion, error)
}

type DiscountRepository interface {
	Create(ctx context.Context, d *promotion.Discount) error
	Update(ctx context.Context, d *promotion.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*promotion.Discount, error)
	FindByCodeForUpdate(ctx context.Context, code promotion.Code) (*promotion.Discount, error)
}

type TeamRepository interface {
	Create(ctx context.Context, t team.Team) error
	Update(ctx context.Context, t team.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (team.Team, error)
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, jobs ...notification.Job) error
	// ClaimDue locks up to limit pending jobs whose run_at has passed, skipping rows locked elsewhere.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]notification.Job, error)
	Update(ctx context.Context, job notification.Job) error
}
