package request

type LoginRequest struct {
	// Login is a username or an email.
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
