package model

// AccessToken is the payload object signed into access tokens.
type AccessToken struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ResetToken is the payload object signed into password reset tokens. It
// carries only the user id; everything else is looked up on verification.
type ResetToken struct {
	UserID int64 `json:"user_id"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

func (r RegisterResponse) AccessTokenInfo() string {
	return r.AccessToken
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

func (r LoginResponse) AccessTokenInfo() string {
	return r.AccessToken
}

type RequestPasswordResetRequest struct {
	Email string `json:"email"`
}

// RequestPasswordResetResponse returns the reset token to the delivery
// boundary. Handing it to an email sender is outside this service.
type RequestPasswordResetResponse struct {
	ResetToken string `json:"reset_token"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type ResetPasswordResponse struct{}
