package response

import (
	"time"

	"salon-backend/internal/usecase/commands"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	AccountID   string    `json:"account_id"`
	Role        string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.Token,
		TokenType:   "Bearer",
		ExpiresAt:   r.ExpiresAt,
		AccountID:   r.AccountID.String(),
		Role:        r.Role.String(),
	}
}
