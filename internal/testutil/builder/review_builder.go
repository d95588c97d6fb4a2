//go:build unit || e2e

package builder

import (
	"time"

	"salon-backend/internal/domain/review"
	reqdto "salon-backend/internal/handler/dto/request"
	"salon-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	StylistID     uuid.UUID
	AppointmentID uuid.UUID
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		StylistID:     uuid.New(),
		AppointmentID: uuid.New(),
		Rating:        5,
		Comment:       "Excellent cut!",
		CreatedAt:     time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.NewReview(r.ID, r.CustomerID, r.StylistID, r.AppointmentID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		AppointmentID: r.AppointmentID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{Rating: &rating, Comment: &comment}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:            r.ID,
		AppointmentID: r.AppointmentID,
		CustomerID:    r.CustomerID,
		CustomerName:  "Jane Doe",
		StylistID:     r.StylistID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.CreatedAt,
	}
}
