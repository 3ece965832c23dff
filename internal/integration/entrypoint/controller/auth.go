package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/auth"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// AuthUseCases groups the identity flows served under /auth.
type AuthUseCases struct {
	Register           *auth.RegisterUserUseCase
	Login              *auth.LoginUserUseCase
	Refresh            *auth.RefreshTokenUseCase
	Logout             *auth.LogoutUserUseCase
	ForgotPassword     *auth.ForgotPasswordUseCase
	ResetPassword      *auth.ResetPasswordUseCase
	VerifyEmail        *auth.VerifyEmailUseCase
	ResendVerification *auth.ResendVerificationUseCase
}

// AuthController handles authentication endpoints.
type AuthController struct {
	uc AuthUseCases
}

func NewAuthController(uc AuthUseCases) *AuthController {
	return &AuthController{uc: uc}
}

func sessionResponse(s *auth.Session) dto.AuthResponse {
	return dto.AuthResponse{
		TokenResponse: dto.TokenResponse{AccessToken: s.AccessToken, RefreshToken: s.RefreshToken},
		User:          dto.ToUserResponse(s.User),
	}
}

// Register handles POST /auth/register.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingFields)) {
		return
	}

	s, err := c.uc.Register.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:         req.Email,
		Name:          req.Name,
		Password:      req.Password,
		TermsAccepted: req.TermsAccepted,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, sessionResponse(s))
}

// Login handles POST /auth/login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingFields)) {
		return
	}

	s, err := c.uc.Login.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sessionResponse(s))
}

// RefreshToken handles POST /auth/refresh.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingToken)) {
		return
	}

	pair, err := c.uc.Refresh.Execute(ctx.Request.Context(), auth.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Logout handles POST /auth/logout. A missing body still ends the request's session.
func (c *AuthController) Logout(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.LogoutRequest
	_ = ctx.ShouldBindJSON(&req)

	err := c.uc.Logout.Execute(ctx.Request.Context(), auth.LogoutUserInput{
		UserID:       userID,
		RefreshToken: req.RefreshToken,
		AllDevices:   req.AllDevices,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}

// ForgotPassword handles POST /auth/forgot-password.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidEmail)) {
		return
	}

	msg, err := c.uc.ForgotPassword.Execute(ctx.Request.Context(), auth.ForgotPasswordInput{Email: req.Email})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

// ResetPassword handles POST /auth/reset-password.
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingFields)) {
		return
	}

	err := c.uc.ResetPassword.Execute(ctx.Request.Context(), auth.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been reset successfully"})
}

// VerifyEmail handles POST /auth/verify-email.
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	var req dto.VerifyEmailRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidVerificationToken)) {
		return
	}

	user, err := c.uc.VerifyEmail.Execute(ctx.Request.Context(), auth.VerifyEmailInput{Token: req.Token})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ResendVerification handles POST /auth/resend-verification.
func (c *AuthController) ResendVerification(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := c.uc.ResendVerification.Execute(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, dto.MessageResponse{Message: "Verification email sent"})
}
