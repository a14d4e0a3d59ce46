package controllers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/services"
	"github.com/adhamyosry771-star/filex-design/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{auth: services.NewAuthService()}
}

// Register godoc
// @Summary Register new user
// @Description Register a new account. Allow-listed emails become admins.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.auth.Register(req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    result,
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password. Banned accounts never get a token.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.auth.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrAccountDisabled) {
			c.JSON(403, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(401, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    result,
	})
}

// Logout godoc
// @Summary Logout
// @Description Sessions are stateless JWTs; the client discards its token.
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}

// GetSession godoc
// @Summary Current session user
// @Description Returns the authenticated user with the ban status re-checked, or null data when no valid token is presented.
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/session [get]
func (ctrl *AuthController) GetSession(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(200, gin.H{"success": true, "message": "No active session", "data": nil})
		return
	}

	user, err := ctrl.auth.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrAccountDisabled) {
			c.JSON(403, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(401, gin.H{"success": false, "message": "Session expired"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Session active", "data": user})
}

// UpdateProfile godoc
// @Summary Update profile
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Update Request"
// @Success 200 {object} models.Response
// @Router /auth/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.auth.UpdateProfile(userID, req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile updated", "data": user})
}

// UpdateAvatar godoc
// @Summary Upload profile avatar
// @Tags Authentication
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} models.Response
// @Router /auth/profile/avatar [post]
func (ctrl *AuthController) UpdateAvatar(c *gin.Context) {
	userID := c.GetString("user_id")

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Avatar file required"})
		return
	}

	var avatarURL string
	if cld, cldErr := models.NewCloudinaryService(); cldErr == nil {
		if err := cld.ValidateImageFile(file); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		opened, err := file.Open()
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to read file"})
			return
		}
		defer opened.Close()

		avatarURL, _, err = cld.UploadImage(context.Background(), opened, file.Filename, "avatars")
		if err != nil {
			c.JSON(502, gin.H{"success": false, "message": err.Error()})
			return
		}
	} else {
		path, err := utils.UploadFile(c, file, "avatars")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		avatarURL = "/uploads/" + path
	}

	user, err := ctrl.auth.UpdateProfile(userID, models.UpdateProfileRequest{Avatar: avatarURL})
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update avatar"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Avatar updated", "data": user})
}

// UpdatePreferences godoc
// @Summary Update theme and language preferences
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} models.Response
// @Router /auth/preferences [patch]
func (ctrl *AuthController) UpdatePreferences(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.auth.UpdatePreferences(userID, req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update preferences"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Preferences updated", "data": user})
}
