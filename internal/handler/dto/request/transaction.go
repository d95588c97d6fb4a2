package request

import (
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordTransactionRequest struct {
	CustomerID    uuid.UUID  `json:"customer_id" binding:"required"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
	AmountCents   int64      `json:"amount_cents" binding:"required,min=1"`
	Method        string     `json:"method" binding:"required,oneof=cash card points"`
}

func (r *RecordTransactionRequest) ToInput() commands.RecordTransactionInput {
	return commands.RecordTransactionInput{
		CustomerID:    r.CustomerID,
		AppointmentID: r.AppointmentID,
		AmountCents:   r.AmountCents,
		Method:        r.Method,
	}
}

type OnlinePaymentRequest struct {
	AppointmentID *uuid.UUID `json:"appointment_id"`
	AmountCents   int64      `json:"amount_cents" binding:"required,min=50"`
}

func (r *OnlinePaymentRequest) ToInput() commands.OnlinePaymentInput {
	return commands.OnlinePaymentInput{AppointmentID: r.AppointmentID, AmountCents: r.AmountCents}
}

type ListTransactionsQuery struct {
	CustomerID *string `form:"customer_id" binding:"omitempty,uuid"`
	PageQuery
}
