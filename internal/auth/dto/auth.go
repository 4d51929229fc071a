package dto

import authdomain "hongddo-backend/internal/auth/domain"

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=4"`
	DisplayName string `json:"display_name" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string           `json:"access_token"`
	User        *authdomain.User `json:"user"`
}

type UpdateProfileRequest struct {
	DisplayName  string `json:"display_name"`
	ProfileImage string `json:"profile_image"`
}
