package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/catalog"
	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/models"
	"github.com/partyoria/eventhub/internal/wizard"
)

type BookingService struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewBookingService(db *gorm.DB, log *slog.Logger) *BookingService {
	if log == nil {
		log = slog.Default()
	}
	return &BookingService{db: db, log: log}
}

// CreateBooking links a vendor or organizer to an event. Vendor selections
// arrive as vendor table uuids; organizer selections arrive as the fixed
// profile ids and are resolved against the seeded organizer rows.
func (s *BookingService) CreateBooking(ctx context.Context, req wizard.BookingRequest) (*wizard.BookingRecord, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event id %q", req.EventID)
	}
	bookingDate, err := helpers.ParseEventDate(req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date %q", req.BookingDate)
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		vendorID, err = s.resolveOrganizer(ctx, req.VendorID)
		if err != nil {
			return nil, err
		}
	} else {
		var vendor models.Vendor
		if err := s.db.WithContext(ctx).Where("id = ?", vendorID).First(&vendor).Error; err != nil {
			return nil, fmt.Errorf("find vendor: %w", err)
		}
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
	if err := s.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("booking created",
		slog.String("booking_id", booking.ID.String()),
		slog.String("vendor_id", vendorID.String()),
		slog.String("event_id", eventID.String()))

	return &wizard.BookingRecord{
		ID: booking.ID.String(),
		BookingRequest: wizard.BookingRequest{
			VendorID:    vendorID.String(),
			EventID:     eventID.String(),
			BookingDate: booking.BookingDate.Format(time.RFC3339),
			Status:      booking.Status,
		},
	}, nil
}

func (s *BookingService) resolveOrganizer(ctx context.Context, id string) (uuid.UUID, error) {
	profile, ok := catalog.OrganizerByID(id)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid vendor id %q", id)
	}

	var organizer models.Organizer
	if err := s.db.WithContext(ctx).Where("name = ?", profile.Name).First(&organizer).Error; err != nil {
		return uuid.Nil, fmt.Errorf("find organizer: %w", err)
	}
	return organizer.ID, nil
}
