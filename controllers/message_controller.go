package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/services"
)

type MessageController struct {
	requests *services.RequestService
}

func NewMessageController() *MessageController {
	return &MessageController{requests: services.NewRequestService()}
}

// SendMessage godoc
// @Summary Send a contact message
// @Description Public contact form. Messages always start unread.
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body models.SendMessageRequest true "Message"
// @Success 201 {object} models.Response
// @Router /messages [post]
func (ctrl *MessageController) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	msg, err := ctrl.requests.SendMessage(req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to send message"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Message sent", "data": msg})
}

// GetMessages godoc
// @Summary List contact messages
// @Tags Admin - Messages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/messages [get]
func (ctrl *MessageController) GetMessages(c *gin.Context) {
	messages, err := ctrl.requests.Messages()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get messages"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Messages retrieved", "data": messages})
}

// MarkMessageRead godoc
// @Summary Mark a contact message as read
// @Tags Admin - Messages
// @Security BearerAuth
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} models.Response
// @Router /admin/messages/{id}/read [patch]
func (ctrl *MessageController) MarkMessageRead(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.requests.MarkMessageRead(id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update message"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Message marked as read"})
}
