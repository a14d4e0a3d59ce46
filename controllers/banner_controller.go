package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/services"
	"github.com/adhamyosry771-star/filex-design/utils"
)

type BannerController struct {
	banners *services.BannerService
}

func NewBannerController() *BannerController {
	return &BannerController{banners: services.NewBannerService()}
}

// UploadBannerImage godoc
// @Summary Upload a banner image
// @Description Stores the image under a timestamp-prefixed sanitized name and returns its URL.
// @Tags Admin - Banners
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Banner image"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /admin/banners/upload [post]
func (ctrl *BannerController) UploadBannerImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file required"})
		return
	}

	var imageURL string
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

		imageURL, _, err = cld.UploadImage(context.Background(), opened, file.Filename, "banners")
		if err != nil {
			// Storage failures surface loudly; nothing is retried.
			c.JSON(502, gin.H{"success": false, "message": err.Error()})
			return
		}
	} else {
		path, err := utils.UploadFile(c, file, "banners")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		imageURL = "/uploads/" + path
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Image uploaded",
		"data":    gin.H{"image_url": imageURL},
	})
}

// AddBanner godoc
// @Summary Add a banner
// @Tags Admin - Banners
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddBannerRequest true "Banner"
// @Success 201 {object} models.Response
// @Router /admin/banners [post]
func (ctrl *BannerController) AddBanner(c *gin.Context) {
	var req models.AddBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	banner, err := ctrl.banners.AddBanner(req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to add banner"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Banner added", "data": banner})
}

// GetActiveBanners godoc
// @Summary Active banners for the landing carousel
// @Tags Banners
// @Produce json
// @Success 200 {object} models.Response
// @Router /banners [get]
func (ctrl *BannerController) GetActiveBanners(c *gin.Context) {
	banners, err := ctrl.banners.Banners(true)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get banners"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Banners retrieved", "data": banners})
}

// GetAllBanners godoc
// @Summary All banners including inactive
// @Tags Admin - Banners
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/banners [get]
func (ctrl *BannerController) GetAllBanners(c *gin.Context) {
	banners, err := ctrl.banners.Banners(false)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get banners"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Banners retrieved", "data": banners})
}

// ToggleBannerStatus godoc
// @Summary Toggle a banner's visibility
// @Tags Admin - Banners
// @Security BearerAuth
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} models.Response
// @Router /admin/banners/{id}/toggle [patch]
func (ctrl *BannerController) ToggleBannerStatus(c *gin.Context) {
	id := c.Param("id")

	isActive, err := ctrl.banners.ToggleStatus(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Banner not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Banner status updated",
		"data":    gin.H{"id": id, "isActive": isActive},
	})
}

// DeleteBanner godoc
// @Summary Delete a banner
// @Tags Admin - Banners
// @Security BearerAuth
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} models.Response
// @Router /admin/banners/{id} [delete]
func (ctrl *BannerController) DeleteBanner(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.banners.DeleteBanner(id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete banner"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Banner deleted"})
}
