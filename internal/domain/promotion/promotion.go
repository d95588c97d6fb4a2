package promotion

import (
	"strings"
	"time"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle  = errs.Validation("promotion title must be 1-200 characters")
	ErrInvalidPeriod = errs.Validation("promotion must end on or after its start")
)

type Promotion struct {
	ID          uuid.UUID
	BranchID    *uuid.UUID
	Title       string
	Description string
	StartsOn    schedule.Date
	EndsOn      schedule.Date
	DiscountID  *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PromotionParams struct {
	BranchID    *uuid.UUID
	Title       string
	Description string
	StartsOn    schedule.Date
	EndsOn      schedule.Date
	DiscountID  *uuid.UUID
}

func NewPromotion(p PromotionParams, now time.Time) (Promotion, error) {
	promo := Promotion{ID: uuid.New(), CreatedAt: now}
	if err := promo.Replace(p, now); err != nil {
		return Promotion{}, err
	}
	return promo, nil
}

func (p *Promotion) Replace(params PromotionParams, now time.Time) error {
	title := strings.TrimSpace(params.Title)
	if title == "" || len(title) > 200 {
		return ErrInvalidTitle
	}
	if params.StartsOn.IsZero() || params.EndsOn.IsZero() {
		return schedule.ErrInvalidDate
	}
	if params.EndsOn.Before(params.StartsOn) {
		return ErrInvalidPeriod
	}
	p.BranchID = params.BranchID
	p.Title = title
	p.Description = strings.TrimSpace(params.Description)
	p.StartsOn = params.StartsOn
	p.EndsOn = params.EndsOn
	p.DiscountID = params.DiscountID
	p.UpdatedAt = now
	return nil
}

func (p Promotion) ActiveOn(d schedule.Date) bool {
	return schedule.DateRange{From: p.StartsOn, To: p.EndsOn}.Contains(d)
}
