package request

import (
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	BranchID  uuid.UUID  `json:"branch_id" binding:"required"`
	Name      string     `json:"name" binding:"required,max=100"`
	ManagerID *uuid.UUID `json:"manager_id"`
}

func (r *CreateTeamRequest) ToInput() commands.TeamInput {
	return commands.TeamInput{BranchID: r.BranchID, Name: r.Name, ManagerID: r.ManagerID}
}

type UpdateTeamRequest struct {
	Name      *string    `json:"name" binding:"omitempty,max=100"`
	ManagerID *uuid.UUID `json:"manager_id"`
}

func (r *UpdateTeamRequest) ToInput() commands.UpdateTeamInput {
	return commands.UpdateTeamInput{Name: r.Name, ManagerID: r.ManagerID}
}
