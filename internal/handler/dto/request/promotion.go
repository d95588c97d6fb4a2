package request

import (
	"time"

	"salon-backend/internal/domain/promotion"
	"salon-backend/internal/domain/schedule"

	"github.com/google/uuid"
)

type PromotionRequest struct {
	BranchID    *uuid.UUID `json:"branch_id"`
	Title       string     `json:"title" binding:"required,max=120"`
	Description string     `json:"description" binding:"max=1000"`
	StartsOn    string     `json:"starts_on" binding:"required"`
	EndsOn      string     `json:"ends_on" binding:"required"`
	DiscountID  *uuid.UUID `json:"discount_id"`
}

func (r *PromotionRequest) ToParams() (promotion.PromotionParams, error) {
	start, err := schedule.ParseDate(r.StartsOn)
	if err != nil {
		return promotion.PromotionParams{}, err
	}
	end, err := schedule.ParseDate(r.EndsOn)
	if err != nil {
		return promotion.PromotionParams{}, err
	}
	return promotion.PromotionParams{
		BranchID:    r.BranchID,
		Title:       r.Title,
		Description: r.Description,
		StartsOn:    start,
		EndsOn:      end,
		DiscountID:  r.DiscountID,
	}, nil
}

type ListPromotionsQuery struct {
	BranchID *string `form:"branch_id" binding:"omitempty,uuid"`
	Active   bool    `form:"active"`
}

type DiscountRequest struct {
	Code           string     `json:"code" binding:"required,max=32"`
	AmountOffCents *int64     `json:"amount_off_cents" binding:"omitempty,min=1"`
	PercentOff     *float64   `json:"percent_off" binding:"omitempty,gt=0,lte=100"`
	ValidFrom      *time.Time `json:"valid_from"`
	ValidTo        *time.Time `json:"valid_to"`
	MaxRedemptions *int       `json:"max_redemptions" binding:"omitempty,min=1"`
}

func (r *DiscountRequest) ToParams() promotion.DiscountParams {
	return promotion.DiscountParams{
		Code:           r.Code,
		AmountOffCents: r.AmountOffCents,
		PercentOff:     r.PercentOff,
		ValidFrom:      r.ValidFrom,
		ValidTo:        r.ValidTo,
		MaxRedemptions: r.MaxRedemptions,
	}
}
