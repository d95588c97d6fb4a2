package auth

import (
	"strings"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Unauthorized("invalid username/email or password")
	ErrForbidden          = errs.Forbidden("insufficient permissions")
)

type Credentials struct {
	login    string
	password string
}

// NewCredentials accepts either a username or an email as the login.
func NewCredentials(login, password string) (Credentials, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	if login == "" || password == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{login: login, password: password}, nil
}

func (c Credentials) Login() string    { return c.login }
func (c Credentials) Password() string { return c.password }

// Principal is the authenticated caller, passed explicitly into every use case.
type Principal struct {
	UserID uuid.UUID
	Role   account.Role
}

func (p Principal) IsStaff() bool {
	return p.Role.IsStaff()
}

func (p Principal) Is(roles ...account.Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

func (p Principal) Require(roles ...account.Role) error {
	if !p.Is(roles...) {
		return ErrForbidden
	}
	return nil
}

// RequireSelfOrStaff allows the owner of a record or any manager/admin.
func (p Principal) RequireSelfOrStaff(ownerID uuid.UUID) error {
	if p.UserID == ownerID || p.IsStaff() {
		return nil
	}
	return ErrForbidden
}
