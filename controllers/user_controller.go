package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/adhamyosry771-star/filex-design/services"
)

type UserController struct {
	auth *services.AuthService
}

func NewUserController() *UserController {
	return &UserController{auth: services.NewAuthService()}
}

// GetAllUsers godoc
// @Summary List all users
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.auth.AllUsers()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get users"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Users retrieved", "data": users})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Router /admin/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if id == c.GetString("user_id") {
		c.JSON(400, gin.H{"success": false, "message": "You cannot delete your own account"})
		return
	}

	if err := ctrl.auth.DeleteUser(id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete user"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User deleted"})
}

// ToggleUserBan godoc
// @Summary Toggle a user between ACTIVE and BANNED
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Router /admin/users/{id}/ban [patch]
func (ctrl *UserController) ToggleUserBan(c *gin.Context) {
	id := c.Param("id")

	if id == c.GetString("user_id") {
		c.JSON(400, gin.H{"success": false, "message": "You cannot ban your own account"})
		return
	}

	newStatus, err := ctrl.auth.ToggleBan(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "User status updated",
		"data":    gin.H{"id": id, "status": newStatus},
	})
}
