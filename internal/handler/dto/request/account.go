package request

import (
	"salon-backend/internal/domain/account"
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateAccountRequest struct {
	Username string     `json:"username" binding:"required,min=3,max=32"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=8,max=72"`
	Name     string     `json:"name" binding:"required,max=100"`
	Phone    string     `json:"phone" binding:"omitempty,e164"`
	BranchID *uuid.UUID `json:"branch_id"`
	TeamID   *uuid.UUID `json:"team_id"`
}

func (r *CreateAccountRequest) ToInput(role account.Role) commands.CreateAccountInput {
	return commands.CreateAccountInput{
		Role:     role,
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Phone:    r.Phone,
		BranchID: r.BranchID,
		TeamID:   r.TeamID,
	}
}

// CreateAdminRequest also picks the staff role: admin or manager.
type CreateAdminRequest struct {
	CreateAccountRequest
	Role string `json:"role" binding:"required,oneof=admin manager"`
}

type UpdateAccountRequest struct {
	Username *string    `json:"username" binding:"omitempty,min=3,max=32"`
	Email    *string    `json:"email" binding:"omitempty,email"`
	Password *string    `json:"password" binding:"omitempty,min=8,max=72"`
	Name     *string    `json:"name" binding:"omitempty,max=100"`
	Phone    *string    `json:"phone" binding:"omitempty,e164"`
	BranchID *uuid.UUID `json:"branch_id"`
	TeamID   *uuid.UUID `json:"team_id"`
}

func (r *UpdateAccountRequest) ToInput() commands.UpdateAccountInput {
	return commands.UpdateAccountInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Phone:    r.Phone,
		BranchID: r.BranchID,
		TeamID:   r.TeamID,
	}
}
