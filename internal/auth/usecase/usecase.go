package usecase

import (
	authdomain "coursemail-backend/internal/auth/domain"
	authdto "coursemail-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Login authenticates a user by email and password
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Register creates a new user account
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new token pair
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)

	// ValidateToken verifies an access token and returns its user
	ValidateToken(tokenString string) (*authdomain.User, error)

	// Logout invalidates a refresh token
	Logout(refreshToken string) error
}
