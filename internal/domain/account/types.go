package account

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStylist  Role = "stylist"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStylist, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role runs a branch (store manager or back-office admin).
func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
