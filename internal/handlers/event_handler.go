package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/models"
)

var errBudgetRange = errors.New("maximum budget must be greater than minimum budget")

type TimelineEntryRequest struct {
	Title string `json:"title" binding:"required"`
	Time  string `json:"time" binding:"required"`
}

type EventRequest struct {
	Name                string                 `json:"name" binding:"required"`
	ClientName          string                 `json:"client_name" binding:"required"`
	ClientEmail         string                 `json:"client_email" binding:"required,email"`
	ClientPhone         string                 `json:"client_phone" binding:"required"`
	Date                string                 `json:"date" binding:"required"`
	Duration            string                 `json:"duration"`
	CustomDuration      string                 `json:"custom_duration"`
	State               string                 `json:"state"`
	City                string                 `json:"city"`
	VenueDetails        string                 `json:"venue_details"`
	TraditionStyle      string                 `json:"tradition_style"`
	Attendees           int                    `json:"attendees" binding:"required,gt=0"`
	BudgetMin           int                    `json:"budget_min"`
	BudgetMax           int                    `json:"budget_max"`
	Description         string                 `json:"description"`
	CustomRequirements  string                 `json:"custom_requirements"`
	SpecialInstructions string                 `json:"special_instructions"`
	AccessibilityNeeds  string                 `json:"accessibility_needs"`
	EventPriority       string                 `json:"event_priority"`
	ContactPreference   string                 `json:"contact_preference"`
	NeedsVendor         bool                   `json:"needs_vendor"`
	Timeline            []TimelineEntryRequest `json:"timeline"`
	FoodPreferences     []string               `json:"food_preferences"`
	SectionID           string                 `json:"section_id"`
	SubsectionID        string                 `json:"subsection_id"`
}

func (req *EventRequest) apply(event *models.Event) error {
	date, err := helpers.ParseEventDate(req.Date)
	if err != nil {
		return err
	}
	if req.BudgetMin != 0 && req.BudgetMax != 0 && req.BudgetMin >= req.BudgetMax {
		return errBudgetRange
	}

	event.Name = req.Name
	event.ClientName = req.ClientName
	event.ClientEmail = req.ClientEmail
	event.ClientPhone = req.ClientPhone
	event.Date = date
	event.Duration = req.Duration
	event.CustomDuration = req.CustomDuration
	event.State = req.State
	event.City = req.City
	event.VenueDetails = req.VenueDetails
	event.TraditionStyle = req.TraditionStyle
	event.Attendees = req.Attendees
	event.BudgetMin = req.BudgetMin
	event.BudgetMax = req.BudgetMax
	event.Description = req.Description
	event.CustomRequirements = req.CustomRequirements
	event.SpecialInstructions = req.SpecialInstructions
	event.AccessibilityNeeds = req.AccessibilityNeeds
	event.NeedsVendor = req.NeedsVendor
	event.SectionID = req.SectionID
	event.SubsectionID = req.SubsectionID
	if req.EventPriority != "" {
		event.EventPriority = req.EventPriority
	}
	if req.ContactPreference != "" {
		event.ContactPreference = req.ContactPreference
	}
	event.FoodPreferences = pq.StringArray(req.FoodPreferences)

	entries := make([]models.TimelineEntry, 0, len(req.Timeline))
	for _, entry := range req.Timeline {
		entries = append(entries, models.TimelineEntry{
			ID:    uuid.New(),
			Title: entry.Title,
			Time:  entry.Time,
		})
	}
	event.Timeline = entries
	return nil
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

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

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return
	}

	event := models.Event{
		ID:     uuid.New(),
		UserID: user.ID,
	}
	if err := req.apply(&event); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Preload("Timeline").Preload("Guests").Preload("Bookings.Vendor").Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	state := c.Query("state")
	city := c.Query("city")
	status := c.Query("status")

	pageNum, err := helpers.StringToInt(page)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	limitNum, err := helpers.StringToInt(limit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	query := gormDB.Model(&models.Event{})
	if state != "" {
		query = query.Where("state = ?", state)
	}
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var events []models.Event
	offset := (pageNum - 1) * limitNum
	err = query.Preload("Timeline").Preload("Bookings").Offset(offset).Limit(limitNum).Order("created_at DESC").Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      events,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       limitNum,
		"total_pages": (totalCount + int64(limitNum) - 1) / int64(limitNum),
	})
}

func UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req EventRequest
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
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to update.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	if err := req.apply(&event); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := gormDB.Where("event_id = ?", event.ID).Delete(&models.TimelineEntry{}).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error updating timeline.")
		return
	}
	for i := range event.Timeline {
		event.Timeline[i].EventID = event.ID
	}

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

func DeleteEvent(c *gin.Context) {
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

	result := gormDB.Where("id = ? AND user_id = ?", eventID, userID).Delete(&models.Event{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to delete.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}

func EventStats(c *gin.Context) {
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

	var total, upcoming, pendingBookings int64
	gormDB.Model(&models.Event{}).Where("user_id = ?", userID).Count(&total)
	gormDB.Model(&models.Event{}).Where("user_id = ? AND date > NOW()", userID).Count(&upcoming)
	gormDB.Model(&models.Booking{}).
		Joins("JOIN events ON events.id = bookings.event_id").
		Where("events.user_id = ? AND bookings.status = ?", userID, "pending").
		Count(&pendingBookings)

	c.JSON(http.StatusOK, gin.H{
		"total_events":     total,
		"upcoming_events":  upcoming,
		"pending_bookings": pendingBookings,
	})
}
