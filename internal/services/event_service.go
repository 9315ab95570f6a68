// Package services implements the wizard's event and booking contracts on
// top of the hub's own database, so an embedded wizard session persists
// through the same models the REST handlers serve.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/models"
	"github.com/partyoria/eventhub/internal/wizard"
)

type EventService struct {
	db     *gorm.DB
	log    *slog.Logger
	userID uuid.UUID
}

func NewEventService(db *gorm.DB, log *slog.Logger, userID uuid.UUID) *EventService {
	if log == nil {
		log = slog.Default()
	}
	return &EventService{db: db, log: log, userID: userID}
}

func (s *EventService) CreateEvent(ctx context.Context, payload wizard.EventPayload) (*wizard.EventRecord, error) {
	event := models.Event{
		ID:     uuid.New(),
		UserID: s.userID,
	}
	if err := applyPayload(&event, payload); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.log.Info("event created", slog.String("event_id", event.ID.String()))
	return recordFromModel(&event), nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, payload wizard.EventPayload) (*wizard.EventRecord, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid event id %q", id)
	}

	var event models.Event
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", eventID, s.userID).First(&event).Error; err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}

	if err := applyPayload(&event, payload); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("event_id = ?", event.ID).Delete(&models.TimelineEntry{}).Error; err != nil {
		return nil, fmt.Errorf("update timeline: %w", err)
	}
	for i := range event.Timeline {
		event.Timeline[i].EventID = event.ID
	}

	if err := s.db.WithContext(ctx).Save(&event).Error; err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return recordFromModel(&event), nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*wizard.EventRecord, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid event id %q", id)
	}

	var event models.Event
	if err := s.db.WithContext(ctx).Preload("Timeline").Where("id = ?", eventID).First(&event).Error; err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	return recordFromModel(&event), nil
}

func applyPayload(event *models.Event, payload wizard.EventPayload) error {
	date, err := helpers.ParseEventDate(payload.Date)
	if err != nil {
		return err
	}

	event.Name = payload.Name
	event.ClientName = payload.ClientName
	event.ClientEmail = payload.ClientEmail
	event.ClientPhone = payload.ClientPhone
	event.Date = date
	event.Duration = payload.Duration
	event.CustomDuration = payload.CustomDuration
	event.State = payload.State
	event.City = payload.City
	event.VenueDetails = payload.VenueDetails
	event.TraditionStyle = payload.TraditionStyle
	event.Attendees = payload.Attendees
	event.BudgetMin = payload.BudgetMin
	event.BudgetMax = payload.BudgetMax
	event.Description = payload.Description
	event.CustomRequirements = payload.CustomRequirements
	event.SpecialInstructions = payload.SpecialInstructions
	event.AccessibilityNeeds = payload.AccessibilityNeeds
	event.SectionID = payload.SectionID
	event.SubsectionID = payload.SubsectionID
	if payload.EventPriority != "" {
		event.EventPriority = payload.EventPriority
	}
	if payload.ContactPreference != "" {
		event.ContactPreference = payload.ContactPreference
	}
	event.FoodPreferences = pq.StringArray(payload.FoodPreferences)

	entries := make([]models.TimelineEntry, 0, len(payload.Timeline))
	for _, entry := range payload.Timeline {
		entries = append(entries, models.TimelineEntry{
			ID:    uuid.New(),
			Title: entry.Title,
			Time:  entry.Time,
		})
	}
	event.Timeline = entries
	return nil
}

func recordFromModel(event *models.Event) *wizard.EventRecord {
	timeline := make([]wizard.TimelineEntry, 0, len(event.Timeline))
	for _, entry := range event.Timeline {
		timeline = append(timeline, wizard.TimelineEntry{
			ID:    entry.ID.String(),
			Title: entry.Title,
			Time:  entry.Time,
		})
	}

	return &wizard.EventRecord{
		ID: event.ID.String(),
		EventPayload: wizard.EventPayload{
			Name:                event.Name,
			ClientName:          event.ClientName,
			ClientEmail:         event.ClientEmail,
			ClientPhone:         event.ClientPhone,
			Date:                event.Date.Format(time.RFC3339),
			Duration:            event.Duration,
			CustomDuration:      event.CustomDuration,
			State:               event.State,
			City:                event.City,
			VenueDetails:        event.VenueDetails,
			TraditionStyle:      event.TraditionStyle,
			Attendees:           event.Attendees,
			BudgetMin:           event.BudgetMin,
			BudgetMax:           event.BudgetMax,
			Description:         event.Description,
			CustomRequirements:  event.CustomRequirements,
			SpecialInstructions: event.SpecialInstructions,
			AccessibilityNeeds:  event.AccessibilityNeeds,
			EventPriority:       event.EventPriority,
			ContactPreference:   event.ContactPreference,
			Timeline:            timeline,
			FoodPreferences:     event.FoodPreferences,
			SectionID:           event.SectionID,
			SubsectionID:        event.SubsectionID,
		},
	}
}
