package handlers

import (
	"errors"
	"net/http"
	"time"

	"hardware-catalog/internal/api/interfaces"
	"hardware-catalog/internal/api/models"
	"hardware-catalog/internal/auth"
	"hardware-catalog/internal/database"

	"github.com/gin-gonic/gin"
)

// Login verifies credentials and returns a bearer token
func Login(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Identifier and password are required")
			return
		}

		session, err := services.AuthService().Login(req.Identifier, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_credentials",
					Code:    401,
					Message: "Invalid username or password",
				})
				return
			}
			services.GetLogger().Error("Login failed: %v", err)
			internalError(c, "Login failed")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data: models.LoginResponse{
				Token:            session.Token,
				TokenType:        "Bearer",
				ExpiresInSeconds: int64(time.Until(session.ExpiresAt).Seconds()),
				Subject:          session.Subject,
				DisplayName:      session.DisplayName,
			},
		})
	}
}

// Register creates a new account with the default role
func Register(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid registration payload: "+err.Error())
			return
		}

		user, err := services.AuthService().Register(req.Username, req.Email, req.Password, req.FullName)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrWeakPassword):
				badRequest(c, "Password does not meet the minimum length")
			case errors.Is(err, auth.ErrDuplicateUsername):
				c.JSON(http.StatusConflict, models.ErrorResponse{
					Error:   "duplicate_username",
					Code:    409,
					Message: "Username is already taken",
				})
			case errors.Is(err, auth.ErrDuplicateEmail):
				c.JSON(http.StatusConflict, models.ErrorResponse{
					Error:   "duplicate_email",
					Code:    409,
					Message: "Email is already in use",
				})
			default:
				services.GetLogger().Error("Registration failed: %v", err)
				internalError(c, "Registration failed")
			}
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse{
			Success: true,
			Message: "Account created",
			Data:    toUserResponse(user),
		})
	}
}

// GetProfile returns the authenticated user's account
func GetProfile(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			internalError(c, "Missing request principal")
			return
		}

		user, err := services.AuthService().GetProfile(principal.Subject)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				notFound(c, "Account not found")
				return
			}
			services.GetLogger().Error("Profile lookup failed: %v", err)
			internalError(c, "Failed to load profile")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: toUserResponse(user)})
	}
}

// UpdateProfile changes the authenticated user's display fields
func UpdateProfile(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			internalError(c, "Missing request principal")
			return
		}

		var req models.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Full name and email are required")
			return
		}

		user, err := services.AuthService().UpdateProfile(principal.Subject, req.FullName, req.Email)
		if err != nil {
			if errors.Is(err, auth.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, models.ErrorResponse{
					Error:   "duplicate_email",
					Code:    409,
					Message: "Email is already in use",
				})
				return
			}
			services.GetLogger().Error("Profile update failed: %v", err)
			internalError(c, "Failed to update profile")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Profile updated",
			Data:    toUserResponse(user),
		})
	}
}

// ChangePassword rotates the authenticated user's password
func ChangePassword(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			internalError(c, "Missing request principal")
			return
		}

		var req models.ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Current and new passwords are required")
			return
		}

		err := services.AuthService().ChangePassword(principal.Subject, req.CurrentPassword, req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_credentials",
					Code:    401,
					Message: "Current password is incorrect",
				})
			case errors.Is(err, auth.ErrWeakPassword):
				badRequest(c, "New password does not meet the minimum length")
			default:
				services.GetLogger().Error("Password change failed: %v", err)
				internalError(c, "Failed to change password")
			}
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Password changed"})
	}
}

// ListUsers returns all accounts (admin only)
func ListUsers(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := services.AuthService().ListUsers()
		if err != nil {
			services.GetLogger().Error("ListUsers failed: %v", err)
			internalError(c, "Failed to list accounts")
			return
		}

		out := make([]models.UserResponse, 0, len(users))
		for i := range users {
			out = append(out, toUserResponse(&users[i]))
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: out})
	}
}

// GetUserByEmail looks up an account by email address (admin only)
func GetUserByEmail(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			badRequest(c, "Email is required")
			return
		}

		user, err := services.AuthService().GetUserByEmail(email)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				notFound(c, "Account not found")
				return
			}
			services.GetLogger().Error("GetUserByEmail failed: %v", err)
			internalError(c, "Failed to load account")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: toUserResponse(user)})
	}
}

// ResetUserPassword sets a new password on an account (admin only)
func ResetUserPassword(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req models.ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "New password is required")
			return
		}

		if err := services.AuthService().ResetPassword(id, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, auth.ErrUserNotFound):
				notFound(c, "Account not found")
			case errors.Is(err, auth.ErrWeakPassword):
				badRequest(c, "New password does not meet the minimum length")
			default:
				services.GetLogger().Error("Password reset failed: %v", err)
				internalError(c, "Failed to reset password")
			}
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Password reset"})
	}
}

// SetUserActive activates or deactivates an account (admin only)
func SetUserActive(services interfaces.Services, active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := services.AuthService().SetActive(id, active); err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				notFound(c, "Account not found")
				return
			}
			services.GetLogger().Error("SetUserActive failed: %v", err)
			internalError(c, "Failed to update account")
			return
		}

		message := "Account deactivated"
		if active {
			message = "Account activated"
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: message})
	}
}

func toUserResponse(u *database.AdminUser) models.UserResponse {
	return models.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      auth.NormalizeRole(u.Role),
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
