package request

import (
	"time"

	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	CustomerID   *uuid.UUID `json:"customer_id"`
	StylistID    uuid.UUID  `json:"stylist_id" binding:"required"`
	ServiceID    uuid.UUID  `json:"service_id" binding:"required"`
	BranchID     uuid.UUID  `json:"branch_id" binding:"required"`
	Start        time.Time  `json:"start" binding:"required"`
	DiscountCode string     `json:"discount_code" binding:"omitempty,max=32"`
	PointsUsed   int        `json:"points_used" binding:"min=0"`
	Note         string     `json:"note" binding:"max=500"`
}

func (r *BookAppointmentRequest) ToInput() commands.BookInput {
	return commands.BookInput{
		CustomerID:   r.CustomerID,
		StylistID:    r.StylistID,
		ServiceID:    r.ServiceID,
		BranchID:     r.BranchID,
		Start:        r.Start,
		DiscountCode: r.DiscountCode,
		PointsUsed:   r.PointsUsed,
		Note:         r.Note,
	}
}

type ListAppointmentsQuery struct {
	CustomerID *string `form:"customer_id" binding:"omitempty,uuid"`
	StylistID  *string `form:"stylist_id" binding:"omitempty,uuid"`
	BranchID   *string `form:"branch_id" binding:"omitempty,uuid"`
	Status     *string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	From       *string `form:"from" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To         *string `form:"to" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PageQuery
}
