//go:build unit || e2e

package builder

import (
	"time"

	reqdto "salon-backend/internal/handler/dto/request"
	"salon-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	StylistID  uuid.UUID
	ServiceID  uuid.UUID
	BranchID   uuid.UUID
	Start      time.Time
	Duration   time.Duration
	Status     string
	PriceCents int64
	PointsUsed int
	Note       string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		StylistID:  uuid.New(),
		ServiceID:  uuid.New(),
		BranchID:   uuid.New(),
		Start:      time.Date(2025, 3, 4, 2, 0, 0, 0, time.UTC),
		Duration:   time.Hour,
		Status:     "pending",
		PriceCents: 4500,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) BuildBookRequestDTO() reqdto.BookAppointmentRequest {
	return reqdto.BookAppointmentRequest{
		StylistID:  b.StylistID,
		ServiceID:  b.ServiceID,
		BranchID:   b.BranchID,
		Start:      b.Start,
		PointsUsed: b.PointsUsed,
		Note:       b.Note,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: "Jane Doe",
		StylistID:    b.StylistID,
		StylistName:  "Sam Stylist",
		ServiceID:    b.ServiceID,
		ServiceName:  "Haircut",
		BranchID:     b.BranchID,
		BranchName:   "Orchard",
		StartAt:      b.Start,
		EndAt:        b.Start.Add(b.Duration),
		Status:       b.Status,
		PriceCents:   b.PriceCents,
		PointsUsed:   b.PointsUsed,
		Note:         b.Note,
		CreatedAt:    b.Start.Add(-24 * time.Hour),
		UpdatedAt:    b.Start.Add(-24 * time.Hour),
	}
}
