package request

import (
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" binding:"required"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
	Comment       string    `json:"comment" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{AppointmentID: r.AppointmentID, Rating: r.Rating, Comment: r.Comment}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,min=1,max=1000"`
}

func (r *UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{Rating: r.Rating, Comment: r.Comment}
}
