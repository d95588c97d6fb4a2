package catalog

import (
	"strings"
	"time"

	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxDurationMinutes = 8 * 60

var (
	ErrInvalidServiceName = errs.Validation("service name must be 1-100 characters")
	ErrInvalidDuration    = errs.Validation("duration must be between 5 and 480 minutes")
)

type Service struct {
	ID              uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewService(name, description string, durationMinutes int, now time.Time) (Service, error) {
	s := Service{ID: uuid.New(), CreatedAt: now}
	if err := s.Apply(ServiceUpdate{
		Name:            &name,
		Description:     &description,
		DurationMinutes: &durationMinutes,
	}, now); err != nil {
		return Service{}, err
	}
	return s, nil
}

type ServiceUpdate struct {
	Name            *string
	Description     *string
	DurationMinutes *int
}

func (s *Service) Apply(u ServiceUpdate, now time.Time) error {
	next := *s
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" || len(name) > 100 {
			return ErrInvalidServiceName
		}
		next.Name = name
	}
	if u.Description != nil {
		next.Description = strings.TrimSpace(*u.Description)
	}
	if u.DurationMinutes != nil {
		if *u.DurationMinutes < 5 || *u.DurationMinutes > MaxDurationMinutes {
			return ErrInvalidDuration
		}
		next.DurationMinutes = *u.DurationMinutes
	}
	next.UpdatedAt = now
	*s = next
	return nil
}

func (s Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// PricedService is a service together with its effective price on a given day.
type PricedService struct {
	Service
	PriceCents int64
}
