//go:build unit || e2e

package builder

import (
	"time"

	"salon-backend/internal/domain/account"
	reqdto "salon-backend/internal/handler/dto/request"
	"salon-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	ID            uuid.UUID
	Role          account.Role
	Username      string
	Email         string
	Password      string
	Name          string
	Phone         string
	BranchID      *uuid.UUID
	TeamID        *uuid.UUID
	LoyaltyPoints int
	CreatedAt     time.Time
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		ID:        uuid.New(),
		Role:      account.RoleCustomer,
		Username:  "jane.doe",
		Email:     "jane@example.com",
		Password:  "s3cretpass",
		Name:      "Jane Doe",
		Phone:     "+6591234567",
		CreatedAt: time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
	}
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

func (b *AccountBuilder) Stylist(branchID uuid.UUID) *AccountBuilder {
	b.Role = account.RoleStylist
	b.BranchID = &branchID
	b.Username = "stylist.one"
	b.Email = "stylist@example.com"
	return b
}

func (b *AccountBuilder) BuildCreateRequestDTO() reqdto.CreateAccountRequest {
	return reqdto.CreateAccountRequest{
		Username: b.Username,
		Email:    b.Email,
		Password: b.Password,
		Name:     b.Name,
		Phone:    b.Phone,
		BranchID: b.BranchID,
		TeamID:   b.TeamID,
	}
}

func (b *AccountBuilder) BuildView() *queries.AccountView {
	return &queries.AccountView{
		ID:            b.ID,
		Role:          b.Role.String(),
		Username:      b.Username,
		Email:         b.Email,
		Name:          b.Name,
		Phone:         b.Phone,
		BranchID:      b.BranchID,
		TeamID:        b.TeamID,
		LoyaltyPoints: b.LoyaltyPoints,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}
