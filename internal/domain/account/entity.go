package account

import (
	"time"

	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUsernameOrEmailTaken = errs.Conflict("username or email is already in use")
	ErrBranchRequired       = errs.Validation("stylists and managers must belong to a branch")
	ErrInsufficientPoints   = errs.Validation("not enough loyalty points")
	ErrNegativePoints       = errs.Validation("points must not be negative")
)

// Account is a login identity. Customers, stylists and admins share one table so that
// username and email uniqueness holds across all of them.
type Account struct {
	id            uuid.UUID
	role          Role
	username      Username
	email         Email
	passwordHash  string
	name          string
	phone         Phone
	branchID      *uuid.UUID
	teamID        *uuid.UUID
	loyaltyPoints int
	createdAt     time.Time
	updatedAt     time.Time
}

type NewAccountParams struct {
	Role         Role
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	BranchID     *uuid.UUID
	TeamID       *uuid.UUID
}

func NewAccount(p NewAccountParams, now time.Time) (*Account, error) {
	if !p.Role.IsValid() {
		return nil, ErrInvalidRole
	}
	username, err := NewUsername(p.Username)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	name, err := NewName(p.Name)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhone(p.Phone)
	if err != nil {
		return nil, err
	}
	if (p.Role == RoleStylist || p.Role == RoleManager) && p.BranchID == nil {
		return nil, ErrBranchRequired
	}

	return &Account{
		id:           uuid.New(),
		role:         p.Role,
		username:     username,
		email:        email,
		passwordHash: p.PasswordHash,
		name:         name,
		phone:        phone,
		branchID:     p.BranchID,
		teamID:       p.TeamID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	role Role,
	username, email, passwordHash, name, phone string,
	branchID, teamID *uuid.UUID,
	loyaltyPoints int,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		id:            id,
		role:          role,
		username:      Username{value: username},
		email:         Email{value: email},
		passwordHash:  passwordHash,
		name:          name,
		phone:         Phone{value: phone},
		branchID:      branchID,
		teamID:        teamID,
		loyaltyPoints: loyaltyPoints,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// UpdateParams carries a partial update: nil fields are left untouched.
type UpdateParams struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Name         *string
	Phone        *string
	BranchID     *uuid.UUID
	TeamID       *uuid.UUID
}

func (a *Account) Apply(p UpdateParams, now time.Time) error {
	next := *a
	if p.Username != nil {
		u, err := NewUsername(*p.Username)
		if err != nil {
			return err
		}
		next.username = u
	}
	if p.Email != nil {
		e, err := NewEmail(*p.Email)
		if err != nil {
			return err
		}
		next.email = e
	}
	if p.PasswordHash != nil {
		next.passwordHash = *p.PasswordHash
	}
	if p.Name != nil {
		n, err := NewName(*p.Name)
		if err != nil {
			return err
		}
		next.name = n
	}
	if p.Phone != nil {
		ph, err := NewPhone(*p.Phone)
		if err != nil {
			return err
		}
		next.phone = ph
	}
	if p.BranchID != nil {
		id := *p.BranchID
		next.branchID = &id
	}
	if p.TeamID != nil {
		id := *p.TeamID
		next.teamID = &id
	}
	next.updatedAt = now
	*a = next
	return nil
}

func (a *Account) SpendPoints(n int, now time.Time) error {
	if n < 0 {
		return ErrNegativePoints
	}
	if n > a.loyaltyPoints {
		return ErrInsufficientPoints
	}
	a.loyaltyPoints -= n
	a.updatedAt = now
	return nil
}

func (a *Account) EarnPoints(n int, now time.Time) error {
	if n < 0 {
		return ErrNegativePoints
	}
	a.loyaltyPoints += n
	a.updatedAt = now
	return nil
}

func (a *Account) IsStylist() bool { return a.role == RoleStylist }

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Role() Role           { return a.role }
func (a *Account) Username() Username   { return a.username }
func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Name() string         { return a.name }
func (a *Account) Phone() Phone         { return a.phone }
func (a *Account) BranchID() *uuid.UUID { return a.branchID }
func (a *Account) TeamID() *uuid.UUID   { return a.teamID }
func (a *Account) LoyaltyPoints() int   { return a.loyaltyPoints }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }
