package request

import (
	"time"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type PageQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}

func (q PageQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

// OptionalUUID parses a form value validated with the uuid rule.
func OptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func OptionalTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

// OptionalDate keeps the domain's validation error for malformed dates.
func OptionalDate(s *string) (*schedule.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := schedule.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type WindowRequest struct {
	Open  string `json:"open" binding:"required"`
	Close string `json:"close" binding:"required"`
}
