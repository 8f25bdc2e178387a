package passwordreset

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
}
