package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/repositories"
)

type NotificationController struct {
	notifications *repositories.NotificationRepository
}

func NewNotificationController() *NotificationController {
	return &NotificationController{notifications: repositories.NewNotificationRepository()}
}

func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	notifications, err := ctrl.notifications.ListByUser(userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get notifications"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Notifications retrieved", "data": notifications})
}

func (ctrl *NotificationController) MarkNotificationRead(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	if err := ctrl.notifications.MarkRead(id, userID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update notification"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Notification marked as read"})
}

func (ctrl *NotificationController) GetAnnouncements(c *gin.Context) {
	announcements, err := ctrl.notifications.ListAnnouncements()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get announcements"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Announcements retrieved", "data": announcements})
}

// CreateAnnouncement godoc
// @Summary Publish an announcement
// @Tags Admin - Announcements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} models.Response
// @Router /admin/announcements [post]
func (ctrl *NotificationController) CreateAnnouncement(c *gin.Context) {
	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	announcement := &models.Announcement{
		Title:     req.Title,
		Message:   req.Message,
		CreatedBy: c.GetString("user_id"),
	}

	if err := ctrl.notifications.CreateAnnouncement(announcement); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create announcement"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Announcement published", "data": announcement})
}
