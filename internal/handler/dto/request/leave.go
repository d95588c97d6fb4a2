package request

import (
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/usecase/commands"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=paid unpaid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=500"`
}

func (r *ApplyLeaveRequest) ToInput() (commands.ApplyLeaveInput, error) {
	start, err := schedule.ParseDate(r.StartDate)
	if err != nil {
		return commands.ApplyLeaveInput{}, err
	}
	end, err := schedule.ParseDate(r.EndDate)
	if err != nil {
		return commands.ApplyLeaveInput{}, err
	}
	return commands.ApplyLeaveInput{LeaveType: r.LeaveType, Start: start, End: end, Reason: r.Reason}, nil
}

type ListLeaveQuery struct {
	StylistID *string `form:"stylist_id" binding:"omitempty,uuid"`
	Status    *string `form:"status" binding:"omitempty,oneof=pending approved rejected withdrawn"`
	PageQuery
}
