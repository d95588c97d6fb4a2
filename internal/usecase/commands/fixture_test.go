//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/pkg/password"
	"salon-backend/internal/testutil/mock/sharedmock"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost
	os.Exit(m.Run())
}

// txFixture runs every unit of work against one mocked Tx.
type txFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	accounts      *sharedmock.MockAccountRepository
	branches      *sharedmock.MockBranchRepository
	holidays      *sharedmock.MockHolidayRepository
	services      *sharedmock.MockServiceRepository
	rates         *sharedmock.MockRateRepository
	appointments  *sharedmock.MockAppointmentRepository
	leaves        *sharedmock.MockLeaveRequestRepository
	balances      *sharedmock.MockLeaveBalanceRepository
	reviews       *sharedmock.MockReviewRepository
	transactions  *sharedmock.MockTransactionRepository
	promotions    *sharedmock.MockPromotionRepository
	discounts     *sharedmock.MockDiscountRepository
	teams         *sharedmock.MockTeamRepository
	notifications *sharedmock.MockNotificationRepository
	metrics       *sharedmock.MockMetrics

	// open counts units of work currently running.
	open int
}

func newTxFixture(t *testing.T) *txFixture {
	ctrl := gomock.NewController(t)
	f := &txFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		accounts:      sharedmock.NewMockAccountRepository(ctrl),
		branches:      sharedmock.NewMockBranchRepository(ctrl),
		holidays:      sharedmock.NewMockHolidayRepository(ctrl),
		services:      sharedmock.NewMockServiceRepository(ctrl),
		rates:         sharedmock.NewMockRateRepository(ctrl),
		appointments:  sharedmock.NewMockAppointmentRepository(ctrl),
		leaves:        sharedmock.NewMockLeaveRequestRepository(ctrl),
		balances:      sharedmock.NewMockLeaveBalanceRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		transactions:  sharedmock.NewMockTransactionRepository(ctrl),
		promotions:    sharedmock.NewMockPromotionRepository(ctrl),
		discounts:     sharedmock.NewMockDiscountRepository(ctrl),
		teams:         sharedmock.NewMockTeamRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		metrics:       sharedmock.NewMockMetrics(ctrl),
	}
	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		f.open++
		defer func() { f.open-- }()
		return fn(ctx, f.tx)
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(run)
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(run)

	f.tx.EXPECT().Accounts().Return(f.accounts).AnyTimes()
	f.tx.EXPECT().Branches().Return(f.branches).AnyTimes()
	f.tx.EXPECT().Holidays().Return(f.holidays).AnyTimes()
	f.tx.EXPECT().Services().Return(f.services).AnyTimes()
	f.tx.EXPECT().Rates().Return(f.rates).AnyTimes()
	f.tx.EXPECT().Appointments().Return(f.appointments).AnyTimes()
	f.tx.EXPECT().LeaveRequests().Return(f.leaves).AnyTimes()
	f.tx.EXPECT().LeaveBalances().Return(f.balances).AnyTimes()
	f.tx.EXPECT().Reviews().Return(f.reviews).AnyTimes()
	f.tx.EXPECT().Transactions().Return(f.transactions).AnyTimes()
	f.tx.EXPECT().Promotions().Return(f.promotions).AnyTimes()
	f.tx.EXPECT().Discounts().Return(f.discounts).AnyTimes()
	f.tx.EXPECT().Teams().Return(f.teams).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	return f
}

func principal(role account.Role) auth.Principal {
	return auth.Principal{UserID: uuid.New(), Role: role}
}

func customerAccount(id uuid.UUID, points int) *account.Account {
	return account.Reconstruct(id, account.RoleCustomer, "casey", "casey@salon.test", "x", "Casey", "+6591234567", nil, nil, points, time.Time{}, time.Time{})
}

func stylistAccount(id, branchID uuid.UUID) *account.Account {
	return account.Reconstruct(id, account.RoleStylist, "sam", "sam@salon.test", "x", "Sam", "", &branchID, nil, 0, time.Time{}, time.Time{})
}

// captureLogs routes the default logger into the returned buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}
