package queries

import "salon-backend/internal/pkg/errs"

var (
	ErrInvalidCursor = errs.Validation("invalid cursor")

	ErrAccountNotFound     = errs.NotFound("account not found")
	ErrBranchNotFound      = errs.NotFound("branch not found")
	ErrServiceNotFound     = errs.NotFound("service not found")
	ErrAppointmentNotFound = errs.NotFound("appointment not found")
	ErrLeaveNotFound       = errs.NotFound("leave request not found")
	ErrReviewNotFound      = errs.NotFound("review not found")
	ErrTransactionNotFound = errs.NotFound("transaction not found")
	ErrPromotionNotFound   = errs.NotFound("promotion not found")
	ErrDiscountNotFound    = errs.NotFound("discount not found")
	ErrTeamNotFound        = errs.NotFound("team not found")

	ErrAccess = errs.Forbidden("access denied")
)
