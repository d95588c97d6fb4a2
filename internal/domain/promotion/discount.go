package promotion

import (
	"regexp"
	"strings"
	"time"

	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode          = errs.Validation("discount code must be 3-20 characters of A-Z and 0-9")
	ErrInvalidAmount        = errs.Validation("amount off must be positive")
	ErrInvalidPercent       = errs.Validation("percent off must be greater than 0 and at most 100")
	ErrAmbiguousDiscount    = errs.Validation("exactly one of amount off or percent off must be set")
	ErrInvalidValidity      = errs.Validation("validity end must not be before its start")
	ErrInvalidMaxRedemption = errs.Validation("max redemptions must be positive")
	ErrDiscountNotYetValid  = errs.Validation("discount code is not yet valid")
	ErrDiscountExpired      = errs.Validation("discount code has expired")
	ErrDiscountExhausted    = errs.Validation("discount code has been fully redeemed")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return "", ErrInvalidCode
	}
	return Code(s), nil
}

func (c Code) String() string { return string(c) }

// Discount is a redeemable code taking either a fixed amount or a percentage off.
type Discount struct {
	id             uuid.UUID
	code           Code
	amountOffCents *int64
	percentOff     *float64
	validFrom      *time.Time
	validTo        *time.Time
	maxRedemptions *int
	redeemed       int
	createdAt      time.Time
	updatedAt      time.Time
}

type DiscountParams struct {
	Code           string
	AmountOffCents *int64
	PercentOff     *float64
	ValidFrom      *time.Time
	ValidTo        *time.Time
	MaxRedemptions *int
}

func NewDiscount(p DiscountParams, now time.Time) (*Discount, error) {
	code, err := NewCode(p.Code)
	if err != nil {
		return nil, err
	}
	d := &Discount{id: uuid.New(), code: code, createdAt: now, updatedAt: now}
	if err := d.setTerms(p.AmountOffCents, p.PercentOff, p.ValidFrom, p.ValidTo, p.MaxRedemptions); err != nil {
		return nil, err
	}
	return d, nil
}

func ReconstructDiscount(
	id uuid.UUID,
	code string,
	amountOffCents *int64,
	percentOff *float64,
	validFrom, validTo *time.Time,
	maxRedemptions *int,
	redeemed int,
	createdAt, updatedAt time.Time,
) *Discount {
	return &Discount{
		id:             id,
		code:           Code(code),
		amountOffCents: amountOffCents,
		percentOff:     percentOff,
		validFrom:      validFrom,
		validTo:        validTo,
		maxRedemptions: maxRedemptions,
		redeemed:       redeemed,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Replace swaps the terms of the discount; the code and redemption count stay.
func (d *Discount) Replace(p DiscountParams, now time.Time) error {
	next := *d
	if p.Code != "" {
		code, err := NewCode(p.Code)
		if err != nil {
			return err
		}
		next.code = code
	}
	if err := next.setTerms(p.AmountOffCents, p.PercentOff, p.ValidFrom, p.ValidTo, p.MaxRedemptions); err != nil {
		return err
	}
	next.updatedAt = now
	*d = next
	return nil
}

func (d *Discount) setTerms(amount *int64, percent *float64, from, to *time.Time, maxRedemptions *int) error {
	if (amount == nil) == (percent == nil) {
		return ErrAmbiguousDiscount
	}
	if amount != nil && *amount <= 0 {
		return ErrInvalidAmount
	}
	if percent != nil && (*percent <= 0 || *percent > 100) {
		return ErrInvalidPercent
	}
	if from != nil && to != nil && to.Before(*from) {
		return ErrInvalidValidity
	}
	if maxRedemptions != nil && *maxRedemptions <= 0 {
		return ErrInvalidMaxRedemption
	}
	d.amountOffCents = amount
	d.percentOff = percent
	d.validFrom = from
	d.validTo = to
	d.maxRedemptions = maxRedemptions
	return nil
}

// Validate checks the validity window and the redemption limit at t.
func (d *Discount) Validate(t time.Time) error {
	if d.validFrom != nil && t.Before(*d.validFrom) {
		return ErrDiscountNotYetValid
	}
	if d.validTo != nil && t.After(*d.validTo) {
		return ErrDiscountExpired
	}
	if d.maxRedemptions != nil && d.redeemed >= *d.maxRedemptions {
		return ErrDiscountExhausted
	}
	return nil
}

func (d *Discount) Redeem(t time.Time) error {
	if err := d.Validate(t); err != nil {
		return err
	}
	d.redeemed++
	d.updatedAt = t
	return nil
}

// Apply never returns a negative price.
func (d *Discount) Apply(baseCents int64) int64 {
	var off int64
	switch {
	case d.percentOff != nil:
		off = int64(float64(baseCents) * *d.percentOff / 100.0)
	case d.amountOffCents != nil:
		off = *d.amountOffCents
	}
	if off > baseCents {
		return 0
	}
	return baseCents - off
}

func (d *Discount) ID() uuid.UUID          { return d.id }
func (d *Discount) Code() Code             { return d.code }
func (d *Discount) AmountOffCents() *int64 { return d.amountOffCents }
func (d *Discount) PercentOff() *float64   { return d.percentOff }
func (d *Discount) ValidFrom() *time.Time  { return d.validFrom }
func (d *Discount) ValidTo() *time.Time    { return d.validTo }
func (d *Discount) MaxRedemptions() *int   { return d.maxRedemptions }
func (d *Discount) Redeemed() int          { return d.redeemed }
func (d *Discount) CreatedAt() time.Time   { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time   { return d.updatedAt }
