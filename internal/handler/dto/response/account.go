package response

import (
	"time"

	"salon-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// AccountResponse is the public shape of an account. Stylist listings are public,
// so loyalty points and contact details are only filled for the owner and staff.
type AccountResponse struct {
	ID            string    `json:"id"`
	Role          string    `json:"role"`
	Username      string    `json:"username"`
	Email         string    `json:"email,omitempty"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	BranchID      *string   `json:"branch_id,omitempty"`
	TeamID        *string   `json:"team_id,omitempty"`
	LoyaltyPoints *int      `json:"loyalty_points,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var accountCopyOpt = copier.Option{
	IgnoreEmpty: true,
	Converters:  uuidConverters,
}

func FromAccountView(v *queries.AccountView, private bool) *AccountResponse {
	res := &AccountResponse{}
	_ = copier.CopyWithOption(res, v, accountCopyOpt)
	if !private {
		res.Email = ""
		res.Phone = ""
		res.LoyaltyPoints = nil
		return res
	}
	points := v.LoyaltyPoints
	res.LoyaltyPoints = &points
	return res
}

// FromAccountViews hides contact details unless private reports true. A nil private hides them for all.
func FromAccountViews(vs []*queries.AccountView, private func(*queries.AccountView) bool) []*AccountResponse {
	out := make([]*AccountResponse, len(vs))
	for i, v := range vs {
		out[i] = FromAccountView(v, private != nil && private(v))
	}
	return out
}
