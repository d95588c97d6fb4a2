package team

import (
	"strings"
	"time"

	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName    = errs.Validation("team name must be 1-100 characters")
	ErrBranchRequired = errs.Validation("team must belong to a branch")
)

// Team groups stylists of one branch. Members point at the team, not the other way round.
type Team struct {
	ID        uuid.UUID
	BranchID  uuid.UUID
	Name      string
	ManagerID *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(branchID uuid.UUID, name string, managerID *uuid.UUID, now time.Time) (Team, error) {
	if branchID == uuid.Nil {
		return Team{}, ErrBranchRequired
	}
	t := Team{ID: uuid.New(), BranchID: branchID, CreatedAt: now}
	if err := t.Apply(&name, managerID, now); err != nil {
		return Team{}, err
	}
	return t, nil
}

func (t *Team) Apply(name *string, managerID *uuid.UUID, now time.Time) error {
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" || len(n) > 100 {
			return ErrInvalidName
		}
		t.Name = n
	}
	if managerID != nil {
		id := *managerID
		t.ManagerID = &id
	}
	t.UpdatedAt = now
	return nil
}
