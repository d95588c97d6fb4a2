package request

import (
	"salon-backend/internal/domain/catalog"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/usecase/commands"
)

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description" binding:"max=1000"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5,max=600"`
}

func (r *CreateServiceRequest) ToInput() commands.ServiceInput {
	return commands.ServiceInput{Name: r.Name, Description: r.Description, DurationMinutes: r.DurationMinutes}
}

type UpdateServiceRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=100"`
	Description     *string `json:"description" binding:"omitempty,max=1000"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=5,max=600"`
}

func (r *UpdateServiceRequest) ToUpdate() catalog.ServiceUpdate {
	return catalog.ServiceUpdate{Name: r.Name, Description: r.Description, DurationMinutes: r.DurationMinutes}
}

type CreateRateRequest struct {
	RateCents int64  `json:"rate_cents" binding:"min=0"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (r *CreateRateRequest) ToInput() (commands.RateInput, error) {
	start, err := schedule.ParseDate(r.StartDate)
	if err != nil {
		return commands.RateInput{}, err
	}
	end, err := schedule.ParseDate(r.EndDate)
	if err != nil {
		return commands.RateInput{}, err
	}
	return commands.RateInput{RateCents: r.RateCents, StartDate: start, EndDate: end}, nil
}
