package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/models"
)

type VendorRequest struct {
	Name          string  `json:"name" binding:"required,min=2"`
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description"`
	ContactEmail  string  `json:"contact_email"`
	ContactPhone  string  `json:"contact_phone"`
	Location      string  `json:"location"`
	PriceRangeMin int     `json:"price_range_min"`
	PriceRangeMax int     `json:"price_range_max"`
	Rating        float64 `json:"rating"`
}

func CreateVendor(c *gin.Context) {
	var req VendorRequest
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

	vendor := models.Vendor{
		ID:            uuid.New(),
		Name:          req.Name,
		Category:      helpers.NormalizeCategory(req.Category),
		Description:   req.Description,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Location:      req.Location,
		PriceRangeMin: req.PriceRangeMin,
		PriceRangeMax: req.PriceRangeMax,
		Rating:        req.Rating,
		IsAvailable:   true,
	}

	if err := gormDB.Create(&vendor).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create vendor.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Vendor created successfully.",
		"vendor_id": vendor.ID,
	})
}

func GetVendor(c *gin.Context) {
	vendorID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var vendor models.Vendor
	if err := gormDB.Where("id = ?", vendorID).First(&vendor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Vendor not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving vendor.")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

func ListVendors(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	category := c.Query("category")
	search := c.Query("search")

	query := gormDB.Model(&models.Vendor{}).Where("is_available = ?", true)
	if category != "" && category != "all" {
		query = query.Where("category = ?", helpers.NormalizeCategory(category))
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var vendors []models.Vendor
	if err := query.Order("category, name").Find(&vendors).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving vendors.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vendors": vendors,
		"total":   len(vendors),
	})
}

func ListOrganizers(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var organizers []models.Organizer
	if err := gormDB.Order("rating DESC").Find(&organizers).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving organizers.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organizers": organizers,
	})
}
