package handlers

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/middleware"
	"github.com/partyoria/eventhub/internal/services"
	"github.com/partyoria/eventhub/internal/wizard"
)

// Wizard sessions live in process memory, keyed by session id. One wizard
// instance is expected per flow; a session belongs to the user who started
// it. Sessions are removed when closed, when an edit flow finishes, or once
// idle past the TTL.
type wizardSession struct {
	wizard   *wizard.Wizard
	userID   uuid.UUID
	lastSeen time.Time
}

const wizardSessionTTL = time.Hour

var (
	wizardSessionsMu sync.Mutex
	wizardSessions   = make(map[string]*wizardSession)
)

func pruneWizardSessions(now time.Time) {
	wizardSessionsMu.Lock()
	defer wizardSessionsMu.Unlock()
	for id, session := range wizardSessions {
		if now.Sub(session.lastSeen) > wizardSessionTTL {
			delete(wizardSessions, id)
		}
	}
}

func dropWizardSession(id string) {
	wizardSessionsMu.Lock()
	delete(wizardSessions, id)
	wizardSessionsMu.Unlock()
}

type StartWizardRequest struct {
	EditEventID    string `json:"edit_event_id"`
	SectionID      string `json:"section_id"`
	SubsectionID   string `json:"subsection_id"`
	SubsectionName string `json:"subsection_name"`
}

func wizardState(w *wizard.Wizard) gin.H {
	return gin.H{
		"state":    w.State().String(),
		"form":     w.Form(),
		"errors":   w.Errors(),
		"progress": w.Progress(),
	}
}

func getWizardSession(c *gin.Context) *wizardSession {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return nil
	}

	wizardSessionsMu.Lock()
	session, ok := wizardSessions[c.Param("id")]
	if ok {
		session.lastSeen = time.Now()
	}
	wizardSessionsMu.Unlock()
	if !ok {
		helpers.RespondWithError(c, http.StatusNotFound, "Wizard session not found.")
		return nil
	}
	if session.userID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to use this wizard session.")
		return nil
	}
	return session
}

func StartWizard(c *gin.Context) {
	var req StartWizardRequest
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

	sectionID := req.SectionID
	if sectionID == "" {
		sectionID = "social"
	}
	subsectionID := req.SubsectionID
	if subsectionID == "" {
		subsectionID = "wedding"
	}

	log := slog.Default()
	w, err := wizard.New(c.Request.Context(), wizard.Config{
		EditEventID:    req.EditEventID,
		SectionID:      sectionID,
		SubsectionID:   subsectionID,
		SubsectionName: req.SubsectionName,
		Events:         services.NewEventService(gormDB, log, userID.(uuid.UUID)),
		Bookings:       services.NewBookingService(gormDB, log),
		Drafts:         middleware.GetStore(c),
		Logger:         log,
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	pruneWizardSessions(time.Now())

	sessionID := uuid.New().String()
	wizardSessionsMu.Lock()
	wizardSessions[sessionID] = &wizardSession{wizard: w, userID: userID.(uuid.UUID), lastSeen: time.Now()}
	wizardSessionsMu.Unlock()

	response := wizardState(w)
	response["session_id"] = sessionID
	c.JSON(http.StatusCreated, response)
}

func GetWizard(c *gin.Context) {
	session := getWizardSession(c)
	if session == nil {
		return
	}
	c.JSON(http.StatusOK, wizardState(session.wizard))
}

type WizardFieldsRequest struct {
	Fields    map[string]any `json:"fields"`
	BudgetMin *int           `json:"budget_min"`
	BudgetMax *int           `json:"budget_max"`
}

func UpdateWizardFields(c *gin.Context) {
	session := getWizardSession(c)
	if session == nil {
		return
	}

	var req WizardFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	for field, value := range req.Fields {
		if err := session.wizard.SetField(field, value); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.BudgetMin != nil {
		if err := session.wizard.SetBudget("min", *req.BudgetMin); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.BudgetMax != nil {
		if err := session.wizard.SetBudget("max", *req.BudgetMax); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, wizardState(session.wizard))
}

func SaveWizardDraft(c *gin.Context) {
	session := getWizardSession(c)
	if session == nil {
		return
	}
	session.wizard.SaveDraft()
	c.JSON(http.StatusOK, gin.H{"message": "Draft saved."})
}

func SubmitWizard(c *gin.Context) {
	session := getWizardSession(c)
	if session == nil {
		return
	}

	if err := session.wizard.Submit(c.Request.Context()); err != nil {
		response := wizardState(session.wizard)
		response["message"] = "Error creating event. Please try again."
		c.JSON(http.StatusBadGateway, response)
		return
	}

	// An edit flow has no vendor stage; the session is done once saved.
	if session.wizard.State() == wizard.StateEditDone {
		dropWizardSession(c.Param("id"))
	}

	c.JSON(http.StatusOK, wizardState(session.wizard))
}

type VendorChoiceRequest struct {
	ChooseVendors bool `json:"choose_vendors"`
}

func ResolveVendorChoice(c *gin.Context) {
	session := getWizardSession(c)
	if session == nil {
		return
	}

	var req VendorChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	var err error
	if req.ChooseVendors {
		err = session.wizard.ChooseVendors()
	} else {
		err = session.wizard.SkipVendors()
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	c.JSON(http.StatusOK, wizardState(session.wizard))
}

type VendorSelectionRequest struct {
	VendorIDs []string `json:"vendor_ids"`
}

func CompleteWizardVendors(c *gin.Context) {
	session := getWizardSession(c)
	if session == nil {
		return
	}

	var req VendorSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	outcomes, err := session.wizard.CompleteVendorSelection(c.Request.Context(), req.VendorIDs)
	if err != nil {
		helpers.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	booked := 0
	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err == nil {
			booked++
		} else {
			failed++
		}
	}

	response := wizardState(session.wizard)
	response["booked"] = booked
	response["failed"] = failed
	c.JSON(http.StatusOK, response)
}

type OrganizerSelectionRequest struct {
	OrganizerID string `json:"organizer_id"`
	Skip        bool   `json:"skip"`
}

func CompleteWizardOrganizer(c *gin.Context) {
	session := getWizardSession(c)
	if session == nil {
		return
	}

	var req OrganizerSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	choice := wizard.SkipOrganizer()
	if !req.Skip && req.OrganizerID != "" {
		choice = wizard.ChooseOrganizer(req.OrganizerID)
	}

	outcome, err := session.wizard.CompleteOrganizerSelection(c.Request.Context(), choice)
	if err != nil {
		helpers.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	response := wizardState(session.wizard)
	if outcome != nil {
		response["booked"] = outcome.Err == nil
	}
	c.JSON(http.StatusOK, response)
}

func ResetWizard(c *gin.Context) {
	session := getWizardSession(c)
	if session == nil {
		return
	}

	if err := session.wizard.Reset(); err != nil {
		helpers.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}
	c.JSON(http.StatusOK, wizardState(session.wizard))
}

func EndWizard(c *gin.Context) {
	session := getWizardSession(c)
	if session == nil {
		return
	}

	dropWizardSession(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{"message": "Wizard session closed."})
}
