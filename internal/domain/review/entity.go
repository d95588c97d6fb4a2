package review

import (
	"time"

	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotEligible = errs.Validation("only completed appointments can be reviewed")
	ErrNotAppointmentOwner    = errs.Forbidden("only the customer of the appointment can review it")
	ErrReviewAlreadyExists    = errs.Conflict("review already exists for this appointment")
	ErrNotReviewOwner         = errs.Forbidden("only the author can change this review")
)

type Review struct {
	id            uuid.UUID
	customerID    uuid.UUID
	stylistID     uuid.UUID
	appointmentID uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
	updatedAt     time.Time
}

// Eligibility describes the appointment a review is posted against.
type Eligibility struct {
	AppointmentCustomerID uuid.UUID
	AppointmentCompleted  bool
	AlreadyReviewed       bool
}

func (e Eligibility) Check(customerID uuid.UUID) error {
	if e.AppointmentCustomerID != customerID {
		return ErrNotAppointmentOwner
	}
	if !e.AppointmentCompleted {
		return ErrAppointmentNotEligible
	}
	if e.AlreadyReviewed {
		return ErrReviewAlreadyExists
	}
	return nil
}

func NewReview(id, customerID, stylistID, appointmentID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:            id,
		customerID:    customerID,
		stylistID:     stylistID,
		appointmentID: appointmentID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructReview(id, customerID, stylistID, appointmentID uuid.UUID, rating int, comment string, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:            id,
		customerID:    customerID,
		stylistID:     stylistID,
		appointmentID: appointmentID,
		rating:        Rating{value: rating},
		comment:       Comment{text: comment},
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Edit applies whichever of rating and comment is given.
func (r *Review) Edit(by uuid.UUID, rating *int, comment *string, now time.Time) error {
	if by != r.customerID {
		return ErrNotReviewOwner
	}
	next := *r
	if rating != nil {
		v, err := NewRating(*rating)
		if err != nil {
			return err
		}
		next.rating = v
	}
	if comment != nil {
		c, err := NewComment(*comment)
		if err != nil {
			return err
		}
		next.comment = c
	}
	next.updatedAt = now
	*r = next
	return nil
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) CustomerID() uuid.UUID    { return r.customerID }
func (r *Review) StylistID() uuid.UUID     { return r.stylistID }
func (r *Review) AppointmentID() uuid.UUID { return r.appointmentID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }
