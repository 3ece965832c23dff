// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// Identity provider request bodies. Password rules beyond the minimum length
// are enforced by the use cases.
type (
	RegisterRequest struct {
		Email         string `json:"email" binding:"required,email"`
		Name          string `json:"name" binding:"required,min=1,max=100"`
		Password      string `json:"password" binding:"required,min=8"`
		TermsAccepted bool   `json:"terms_accepted"`
	}

	LoginRequest struct {
		Email      string `json:"email" binding:"required,email"`
		Password   string `json:"password" binding:"required"`
		RememberMe bool   `json:"remember_me"`
	}

	RefreshTokenRequest struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	LogoutRequest struct {
		RefreshToken string `json:"refresh_token"`
		AllDevices   bool   `json:"all_devices"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" binding:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}

	VerifyEmailRequest struct {
		Token string `json:"token" binding:"required"`
	}

	// DeleteAccountRequest must carry the literal confirmation "DELETE".
	DeleteAccountRequest struct {
		Password     string `json:"password" binding:"required"`
		Confirmation string `json:"confirmation" binding:"required"`
	}
)

// TokenResponse is returned by /auth/refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is returned by /auth/register and /auth/login.
type AuthResponse struct {
	TokenResponse
	User UserResponse `json:"user"`
}

// UserResponse describes an account. Its ID is the owner key of the planner dataset.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		IsVerified: user.IsVerified(),
		CreatedAt:  user.CreatedAt,
	}
}
