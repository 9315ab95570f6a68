package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/models"
)

type BookingRequest struct {
	VendorID    string `json:"vendor_id" binding:"required"`
	EventID     string `json:"event_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
	Status      string `json:"status"`
}

func CreateBooking(c *gin.Context) {
	var req BookingRequest
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

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid vendor ID.")
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	bookingDate, err := helpers.ParseEventDate(req.BookingDate)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking date format.")
		return
	}

	var event models.Event
	if err := gormDB.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to book for it.")
		return
	}

	var vendor models.Vendor
	if err := gormDB.Where("id = ?", vendorID).First(&vendor).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Vendor not found.")
		return
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	booking := models.Booking{
		ID:          uuid.New(),
		BookingDate: bookingDate,
		Status:      status,
		VendorID:    vendorID,
		EventID:     eventID,
	}

	if err := gormDB.Create(&booking).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking.")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func ListEventBookings(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var bookings []models.Booking
	if err := gormDB.Preload("Vendor").Where("event_id = ?", eventID).Order("created_at").Find(&bookings).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

func UpdateBookingStatus(c *gin.Context) {
	bookingID := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required,oneof=pending confirmed declined cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking status.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var booking models.Booking
	if err := gormDB.Where("id = ?", bookingID).First(&booking).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Booking not found.")
		return
	}

	if err := gormDB.Model(&booking).Update("status", req.Status).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully.",
		"booking": booking,
	})
}

func generateBookingQRData(booking *models.Booking) string {
	secretKey := os.Getenv("JWT_SECRET")
	signature := generateBookingSignature(booking.ID, booking.VendorID, booking.EventID, secretKey)
	return fmt.Sprintf("booking:%s;vendor:%s;event:%s;signature:%s",
		booking.ID.String(),
		booking.VendorID.String(),
		booking.EventID.String(),
		signature,
	)
}

func generateBookingSignature(bookingID, vendorID, eventID uuid.UUID, secretKey string) string {
	data := fmt.Sprintf("%s:%s:%s", bookingID.String(), vendorID.String(), eventID.String())
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func extractBookingIDFromQRData(qrData string) (uuid.UUID, error) {
	parts := strings.Split(qrData, ";")
	if len(parts) != 4 || !strings.HasPrefix(parts[0], "booking:") || !strings.HasPrefix(parts[3], "signature:") {
		return uuid.Nil, fmt.Errorf("invalid QR data format")
	}
	return uuid.Parse(strings.TrimPrefix(parts[0], "booking:"))
}

func validateBookingQRSignature(booking *models.Booking, qrData string) bool {
	parts := strings.Split(qrData, ";")
	if len(parts) != 4 || !strings.HasPrefix(parts[3], "signature:") {
		return false
	}

	secretKey := os.Getenv("JWT_SECRET")
	signature := strings.TrimPrefix(parts[3], "signature:")
	expectedSignature := generateBookingSignature(booking.ID, booking.VendorID, booking.EventID, secretKey)
	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}

// GenerateBookingQR renders a signed QR confirmation the vendor can scan at
// the venue.
func GenerateBookingQR(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	bookingIDStr := c.Param("id")
	bookingID, err := uuid.Parse(bookingIDStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found")
		return
	}
	gormDB := db.(*gorm.DB)

	var booking models.Booking
	if err := gormDB.Preload("Event").First(&booking, bookingID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	if booking.Event.UserID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to generate QR code for this booking")
		return
	}

	qrData := generateBookingQRData(&booking)

	qrImage, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}

// ValidateBookingQR lets a vendor confirm a scanned booking QR and marks the
// booking confirmed.
func ValidateBookingQR(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found")
		return
	}
	gormDB := db.(*gorm.DB)

	var validationRequest struct {
		QRData string `json:"qr_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&validationRequest); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	bookingID, err := extractBookingIDFromQRData(validationRequest.QRData)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid QR code format")
		return
	}

	var booking models.Booking
	if err := gormDB.Preload("Event").Preload("Vendor").First(&booking, bookingID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	if !validateBookingQRSignature(&booking, validationRequest.QRData) {
		helpers.RespondWithError(c, http.StatusForbidden, "Invalid QR code signature")
		return
	}

	if err := gormDB.Model(&booking).Update("status", "confirmed").Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking confirmed successfully",
		"booking": gin.H{
			"event_name":  booking.Event.Name,
			"vendor_name": booking.Vendor.Name,
		},
	})
}
