package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/models"
)

type GuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

func AddGuest(c *gin.Context) {
	eventID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
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
		helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to add guests.")
		return
	}

	guest := models.EventGuest{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		EventID: event.ID,
	}

	if err := gormDB.Create(&guest).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to add guest.")
		return
	}

	c.JSON(http.StatusCreated, guest)
}

func ListGuests(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var guests []models.EventGuest
	if err := gormDB.Where("event_id = ?", eventID).Order("created_at").Find(&guests).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving guests.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guests": guests,
		"total":  len(guests),
	})
}

func UpdateGuestRSVP(c *gin.Context) {
	guestID := c.Param("guestId")

	var req struct {
		RSVPStatus string `json:"rsvp_status" binding:"required,oneof=pending accepted declined"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid RSVP status.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var guest models.EventGuest
	if err := gormDB.Where("id = ?", guestID).First(&guest).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Guest not found.")
		return
	}

	if err := gormDB.Model(&guest).Update("rsvp_status", req.RSVPStatus).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update RSVP.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "RSVP updated successfully.",
		"guest":   guest,
	})
}
