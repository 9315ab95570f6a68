package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/models"
)

// UploadInspirationImage attaches an inspiration image to an event the user
// owns, replacing any previous one.
func UploadInspirationImage(c *gin.Context) {
	eventID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to update.")
		return
	}

	imageFile, err := c.FormFile("image")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Image file missing.")
		return
	}

	imagePath, err := helpers.UploadFile(c, imageFile, "inspiration_images")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if event.InspirationImage != "" {
		if err := helpers.DeleteFile(event.InspirationImage); err != nil {
			fmt.Printf("Error deleting old inspiration image: %v\n", err)
		}
	}

	if err := gormDB.Model(&event).Update("inspiration_image", imagePath).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save inspiration image.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Inspiration image uploaded successfully.",
		"inspiration_image": imagePath,
	})
}
