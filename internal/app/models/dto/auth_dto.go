package dto

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jd1234@srmist.edu.in"`
	Password string `json:"password" binding:"required,min=8" example:"hunter2hunter2"`
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Jordan Das"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jd1234@srmist.edu.in"`
	Password string `json:"password" binding:"required" example:"hunter2hunter2"`
}

// RefreshTokenRequest carries a refresh token to be exchanged.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries the issued token pair and the signed-in user.
type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int64         `json:"expiresIn" example:"3600"`
	User         *UserResponse `json:"user"`
}
