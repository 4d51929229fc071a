package usecase

import (
	authdomain "hongddo-backend/internal/auth/domain"
	authdto "hongddo-backend/internal/auth/dto"
)

// AuthUsecase defines the business operations around household members
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	ValidateToken(token string) (*authdomain.User, error)
	UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)
	ListUsers() ([]authdomain.User, error)
}
