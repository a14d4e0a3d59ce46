package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/services"
)

type SupportController struct {
	support *services.SupportService
}

func NewSupportController() *SupportController {
	return &SupportController{support: services.NewSupportService()}
}

func sessionUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// OpenSession godoc
// @Summary Open (or resume) the caller's live-support session
// @Tags Support
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /support/sessions [post]
func (ctrl *SupportController) OpenSession(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	session, err := ctrl.support.OpenSession(user)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to open support session"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Support session ready", "data": session})
}

// GetSessionMessages polls the thread and clears the caller's unread count.
func (ctrl *SupportController) GetSessionMessages(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	sessionID := c.Param("id")
	if _, err := ctrl.support.SessionForUser(sessionID, user); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Session not found"})
		return
	}

	messages, err := ctrl.support.Messages(sessionID, user.IsAdmin())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get messages"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Messages retrieved", "data": messages})
}

func (ctrl *SupportController) SendSessionMessage(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req models.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	msg, err := ctrl.support.SendMessage(c.Param("id"), user, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrSessionClosed) {
			c.JSON(409, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(404, gin.H{"success": false, "message": "Session not found"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Message sent", "data": msg})
}

// GetAllSessions godoc
// @Summary List support sessions
// @Tags Admin - Support
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/support/sessions [get]
func (ctrl *SupportController) GetAllSessions(c *gin.Context) {
	sessions, err := ctrl.support.Sessions()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get sessions"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Sessions retrieved", "data": sessions})
}

func (ctrl *SupportController) CloseSession(c *gin.Context) {
	adminID := c.GetString("user_id")

	if err := ctrl.support.CloseSession(c.Param("id"), adminID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to close session"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Session closed"})
}
