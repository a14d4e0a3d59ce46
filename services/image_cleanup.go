package services

import (
	"context"
	"log"
	"strings"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/utils"
)

// removeStoredImage deletes the file behind an image URL once no record
// references it anymore. Local uploads are unlinked from disk; Cloudinary
// URLs are destroyed through the API when credentials are configured.
// Failures are logged, never propagated.
func removeStoredImage(imageURL string) {
	if imageURL == "" {
		return
	}

	if strings.HasPrefix(imageURL, "/uploads/") {
		if err := utils.DeleteFile(strings.TrimPrefix(imageURL, "/uploads/")); err != nil {
			log.Println("Failed to delete stored image:", err)
		}
		return
	}

	publicID := models.PublicIDFromURL(imageURL)
	if publicID == "" {
		return
	}

	cld, err := models.NewCloudinaryService()
	if err != nil {
		return
	}

	if err := cld.DeleteImage(context.Background(), publicID); err != nil {
		log.Println("Failed to delete stored image:", err)
	}
}
