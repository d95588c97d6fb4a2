package response

import (
	"time"

	"salon-backend/internal/domain/leave"

	"github.com/jinzhu/copier"
)

type LeaveBalanceResponse struct {
	StylistID       string    `json:"stylist_id"`
	Year            int       `json:"year"`
	AvailablePaid   int       `json:"available_paid"`
	AvailableUnpaid int       `json:"available_unpaid"`
	Created         bool      `json:"created"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromLeaveBalance(r leave.GetOrCreateResult) *LeaveBalanceResponse {
	res := &LeaveBalanceResponse{}
	_ = copier.CopyWithOption(res, r.Balance, copier.Option{Converters: uuidConverters})
	res.Created = r.Created
	return res
}
