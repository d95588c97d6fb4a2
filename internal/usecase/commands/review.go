package commands

//go:generate mockgen -source=review.go -destination=../../testutil/mock/commandsmock/review.go -package=commandsmock

import (
	"context"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/appointment"
	"salon-backend/internal/domain/auth"
	domreview "salon-backend/internal/domain/review"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

type ReviewCommands interface {
	Create(ctx context.Context, p auth.Principal, in CreateReviewInput) (uuid.UUID, error)
	Update(ctx context.Context, p auth.Principal, id uuid.UUID, in UpdateReviewInput) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, p auth.Principal, in CreateReviewInput) (uuid.UUID, error) {
	if err := p.Require(account.RoleCustomer); err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().FindByID(ctx, in.AppointmentID)
		if err != nil {
			return orNotFound(err, ErrAppointmentNotFound)
		}
		reviewed, err := tx.Reviews().ExistsForAppointment(ctx, appt.ID())
		if err != nil {
			return err
		}
		eligibility := domreview.Eligibility{
			AppointmentCustomerID: appt.CustomerID(),
			AppointmentCompleted:  appt.Status() == appointment.StatusCompleted,
			AlreadyReviewed:       reviewed,
		}
		if err := eligibility.Check(p.UserID); err != nil {
			return err
		}

		rev, err := domreview.NewReview(uuid.Nil, p.UserID, appt.StylistID(), appt.ID(), in.Rating, in.Comment, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, rev); err != nil {
			return err
		}
		createdID = rev.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *reviewCommandsImpl) Update(ctx context.Context, p auth.Principal, id uuid.UUID, in UpdateReviewInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByID(ctx, id)
		if err != nil {
			return orNotFound(err, ErrReviewNotFound)
		}
		if err := rev.Edit(p.UserID, in.Rating, in.Comment, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Reviews().Update(ctx, rev)
	})
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByID(ctx, id)
		if err != nil {
			return orNotFound(err, ErrReviewNotFound)
		}
		if !p.Is(account.RoleAdmin) && rev.CustomerID() != p.UserID {
			return domreview.ErrNotReviewOwner
		}
		return tx.Reviews().Delete(ctx, id)
	})
}
