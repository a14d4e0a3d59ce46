package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/services"
)

type RequestController struct {
	requests *services.RequestService
}

func NewRequestController() *RequestController {
	return &RequestController{requests: services.NewRequestService()}
}

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

// CreateRequest godoc
// @Summary Submit a design request
// @Description Create a design request. Status is always PENDING on creation.
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body models.CreateRequestRequest true "Design Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /requests [post]
func (ctrl *RequestController) CreateRequest(c *gin.Context) {
	var req models.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	// user_id is empty for anonymous submissions from the landing page
	userID := c.GetString("user_id")

	request, err := ctrl.requests.CreateRequest(userID, req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Request submitted successfully",
		"data":    request,
	})
}

// GetUserRequests godoc
// @Summary List own requests
// @Description Requests belonging to the authenticated user, newest first.
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /requests [get]
func (ctrl *RequestController) GetUserRequests(c *gin.Context) {
	userID := c.GetString("user_id")

	requests, err := ctrl.requests.UserRequests(userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get requests"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Requests retrieved", "data": requests})
}

// GetAllRequests godoc
// @Summary List all requests
// @Tags Admin - Requests
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/requests [get]
func (ctrl *RequestController) GetAllRequests(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)

	status := strings.TrimSpace(c.Query("status"))
	if status == "All" {
		status = ""
	}
	if status != "" && !models.ValidRequestStatus(status) {
		c.JSON(400, gin.H{"success": false, "message": "Unknown status filter"})
		return
	}

	requests, total, err := ctrl.requests.AllRequests(status, limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get requests"})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(200, models.PaginatedResponse{
		Success: true,
		Message: "Requests retrieved",
		Data:    requests,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// UpdateRequestStatus godoc
// @Summary Update request status
// @Description Overwrites exactly the status field of a request.
// @Tags Admin - Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body models.UpdateRequestStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/requests/{id}/status [patch]
func (ctrl *RequestController) UpdateRequestStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	if !models.ValidRequestStatus(req.Status) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request status"})
		return
	}

	request, err := ctrl.requests.UpdateStatus(id, req.Status)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Request not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Request status updated successfully",
		"data":    request,
	})
}
