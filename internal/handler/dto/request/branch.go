package request

import (
	"salon-backend/internal/domain/branch"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBranchRequest struct {
	Name        string         `json:"name" binding:"required,max=100"`
	Address     string         `json:"address" binding:"max=255"`
	Phone       string         `json:"phone" binding:"omitempty,max=32"`
	TimeZone    string         `json:"timezone" binding:"omitempty,timezone"`
	SlotMinutes int            `json:"slot_minutes" binding:"omitempty,oneof=15 30"`
	Weekday     *WindowRequest `json:"weekday_hours"`
	Weekend     *WindowRequest `json:"weekend_hours"`
	Holiday     *WindowRequest `json:"holiday_hours"`
}

func (r *CreateBranchRequest) ToParams() branch.Params {
	return branch.Params{
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		TimeZone:    r.TimeZone,
		SlotMinutes: r.SlotMinutes,
		Weekday:     r.Weekday.toParams(),
		Weekend:     r.Weekend.toParams(),
		Holiday:     r.Holiday.toParams(),
	}
}

type UpdateBranchRequest struct {
	Name        *string        `json:"name" binding:"omitempty,max=100"`
	Address     *string        `json:"address" binding:"omitempty,max=255"`
	Phone       *string        `json:"phone" binding:"omitempty,max=32"`
	TimeZone    *string        `json:"timezone" binding:"omitempty,timezone"`
	SlotMinutes *int           `json:"slot_minutes" binding:"omitempty,oneof=15 30"`
	Weekday     *WindowRequest `json:"weekday_hours"`
	Weekend     *WindowRequest `json:"weekend_hours"`
	Holiday     *WindowRequest `json:"holiday_hours"`
}

func (r *UpdateBranchRequest) ToParams() branch.UpdateParams {
	return branch.UpdateParams{
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		TimeZone:    r.TimeZone,
		SlotMinutes: r.SlotMinutes,
		Weekday:     r.Weekday.toParams(),
		Weekend:     r.Weekend.toParams(),
		Holiday:     r.Holiday.toParams(),
	}
}

func (w *WindowRequest) toParams() *branch.WindowParams {
	if w == nil {
		return nil
	}
	return &branch.WindowParams{Open: w.Open, Close: w.Close}
}

type CreateHolidayRequest struct {
	BranchID *uuid.UUID `json:"branch_id"`
	Date     string     `json:"date" binding:"required"`
	Name     string     `json:"name" binding:"required,max=100"`
}

func (r *CreateHolidayRequest) ToInput() (commands.HolidayInput, error) {
	d, err := schedule.ParseDate(r.Date)
	if err != nil {
		return commands.HolidayInput{}, err
	}
	return commands.HolidayInput{BranchID: r.BranchID, Date: d, Name: r.Name}, nil
}

type ListHolidaysQuery struct {
	BranchID *string `form:"branch_id" binding:"omitempty,uuid"`
	From     *string `form:"from"`
	To       *string `form:"to"`
}
