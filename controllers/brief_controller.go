package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/services"
)

type BriefController struct {
	briefs *services.BriefService
}

func NewBriefController() *BriefController {
	return &BriefController{briefs: services.NewBriefService()}
}

// RefineBrief godoc
// @Summary Refine a design brief
// @Description Rewrites the raw project description into a professional brief using the AI assistant.
// @Tags Briefs
// @Accept json
// @Produce json
// @Param request body models.RefineBriefRequest true "Raw brief"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /briefs/refine [post]
func (ctrl *BriefController) RefineBrief(c *gin.Context) {
	var req models.RefineBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	refined, err := ctrl.briefs.RefineDesignBrief(req.Description, req.ProjectType)
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Brief refined",
		"data":    gin.H{"refined": refined},
	})
}
