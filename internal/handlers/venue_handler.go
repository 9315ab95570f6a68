package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/models"
)

type VenueRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Location    string `json:"location" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	PriceRange  string `json:"price_range"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

func CreateVenue(c *gin.Context) {
	var req VenueRequest
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

	venue := models.Venue{
		ID:          uuid.New(),
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
		PriceRange:  req.PriceRange,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	if err := gormDB.Create(&venue).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create venue.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Venue created successfully.",
		"venue_id": venue.ID,
	})
}

func GetVenue(c *gin.Context) {
	venueID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var venue models.Venue
	if err := gormDB.Where("id = ?", venueID).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	c.JSON(http.StatusOK, venue)
}

// ListVenues returns the venue catalog, optionally narrowed to venues whose
// location matches the city query.
func ListVenues(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Model(&models.Venue{})
	if city := c.Query("city"); city != "" {
		query = query.Where("location ILIKE ?", "%"+city+"%")
	}

	var venues []models.Venue
	if err := query.Order("name").Find(&venues).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"venues": venues,
		"total":  len(venues),
	})
}
