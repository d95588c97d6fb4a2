package commands

import (
	"salon-backend/internal/infra"
	"salon-backend/internal/pkg/errs"
)

var (
	ErrAccountNotFound     = errs.NotFound("account not found")
	ErrStylistNotFound     = errs.NotFound("stylist not found")
	ErrCustomerNotFound    = errs.NotFound("customer not found")
	ErrBranchNotFound      = errs.NotFound("branch not found")
	ErrServiceNotFound     = errs.NotFound("service not found")
	ErrRateNotFound        = errs.NotFound("service rate not found")
	ErrHolidayNotFound     = errs.NotFound("holiday not found")
	ErrAppointmentNotFound = errs.NotFound("appointment not found")
	ErrLeaveNotFound       = errs.NotFound("leave request not found")
	ErrReviewNotFound      = errs.NotFound("review not found")
	ErrTransactionNotFound = errs.NotFound("transaction not found")
	ErrPromotionNotFound   = errs.NotFound("promotion not found")
	ErrDiscountNotFound    = errs.NotFound("discount not found")
	ErrTeamNotFound        = errs.NotFound("team not found")

	ErrUnknownDiscountCode = errs.Validation("unknown discount code")
	ErrServiceNotBookable  = errs.Validation("service has no price on the requested date")
	ErrCustomerRequired    = errs.Validation("customer_id is required when staff book on behalf of a customer")
	ErrInvalidAccountRole  = errs.Validation("role is not allowed here")
	ErrStylistNotAtBranch  = errs.Validation("stylist does not work at this branch")
)

// orNotFound swaps a repository not-found for the use case's own error.
func orNotFound(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
