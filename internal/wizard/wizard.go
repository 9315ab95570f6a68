package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// State is the single modal-sequencing variant of the wizard. Exactly one
// state is active at a time, which makes "two modals open at once"
// unrepresentable.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateVendorChoice
	StateVendorSelect
	StateOrganizerSelect
	StateSuccess
	StateEditDone
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateVendorChoice:
		return "vendor_choice"
	case StateVendorSelect:
		return "vendor_select"
	case StateOrganizerSelect:
		return "organizer_select"
	case StateSuccess:
		return "success"
	case StateEditDone:
		return "edit_done"
	}
	return "unknown"
}

// OrganizerChoice is the outcome of the organizer modal: either a concrete
// organizer id or an explicit skip.
type OrganizerChoice struct {
	id       string
	selected bool
}

func ChooseOrganizer(id string) OrganizerChoice {
	return OrganizerChoice{id: id, selected: true}
}

func SkipOrganizer() OrganizerChoice {
	return OrganizerChoice{}
}

func (c OrganizerChoice) Selected() (string, bool) {
	return c.id, c.selected
}

// BookingOutcome records one booking attempt of the completion batch.
// Bookings are best-effort: a non-nil Err never aborts the batch.
type BookingOutcome struct {
	VendorID string
	Err      error
}

// ErrVendorNotBookable marks a selection whose id is not a persisted vendor
// (static catalog entries carry synthetic ids). No call is made for these.
var ErrVendorNotBookable = errors.New("vendor id does not reference a bookable vendor")

var (
	ErrInvalidTransition = errors.New("operation not valid in current wizard state")
	ErrSubmitInFlight    = errors.New("a submission is already in flight")
)

// Config wires a wizard instance. Events and Bookings are required; Drafts
// may be nil, in which case draft persistence is a no-op.
type Config struct {
	EditEventID    string
	SectionID      string
	SubsectionID   string
	SubsectionName string

	Events   EventService
	Bookings BookingService
	Drafts   DraftStore
	Logger   *slog.Logger

	// OnEventSaved fires after a successful edit-mode update, mirroring the
	// navigation callback the embedding application supplies.
	OnEventSaved func(eventName, clientName string)
}

// Wizard owns the form record and the modal-sequence state machine of the
// event creation flow.
type Wizard struct {
	mu sync.Mutex

	cfg    Config
	log    *slog.Logger
	form   FormData
	errors ValidationErrors
	state  State

	editMode bool
	created  *EventRecord
}

// New builds a wizard in create mode, or in edit mode when cfg.EditEventID is
// set. Edit mode hydrates from the event service first and falls back to the
// local store, matching the original load order.
func New(ctx context.Context, cfg Config) (*Wizard, error) {
	if cfg.Events == nil || cfg.Bookings == nil {
		return nil, errors.New("wizard: event and booking services are required")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	w := &Wizard{
		cfg:      cfg,
		log:      log,
		form:     NewFormData(cfg.SubsectionName),
		errors:   ValidationErrors{},
		state:    StateEditing,
		editMode: cfg.EditEventID != "",
	}

	if w.editMode {
		record, err := cfg.Events.GetEvent(ctx, cfg.EditEventID)
		if err == nil {
			w.form = FormFromRecord(record)
			return w, nil
		}
		log.Warn("failed to load event from service, trying local store",
			slog.String("event_id", cfg.EditEventID), slog.Any("error", err))

		if cfg.Drafts != nil {
			if saved := cfg.Drafts.GetEvent(cfg.EditEventID); saved != nil {
				w.form = *saved
				return w, nil
			}
		}
		return nil, fmt.Errorf("wizard: event %s not found", cfg.EditEventID)
	}

	return w, nil
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Wizard) Form() FormData {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

func (w *Wizard) Errors() ValidationErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := ValidationErrors{}
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

func (w *Wizard) EditMode() bool {
	return w.editMode
}

// CreatedEvent returns the record snapshotted after a successful create, nil
// before that.
func (w *Wizard) CreatedEvent() *EventRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.created
}

// Progress projects the current form into step completion.
func (w *Wizard) Progress() Progress {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ComputeProgress(w.form)
}

// SetField mutates one form field by its wire name and optimistically clears
// any validation error recorded for it. The field is not re-validated until
// the next submit.
func (w *Wizard) SetField(field string, value any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateEditing {
		return ErrInvalidTransition
	}

	if err := w.applyField(field, value); err != nil {
		return err
	}
	delete(w.errors, field)
	return nil
}

func (w *Wizard) applyField(field string, value any) error {
	switch field {
	case "eventName":
		return setString(&w.form.EventName, field, value)
	case "clientName":
		return setString(&w.form.ClientName, field, value)
	case "clientEmail":
		return setString(&w.form.ClientEmail, field, value)
	case "clientPhone":
		return setString(&w.form.ClientPhone, field, value)
	case "dateTime":
		return setString(&w.form.DateTime, field, value)
	case "duration":
		return setString(&w.form.Duration, field, value)
	case "customDuration":
		return setString(&w.form.CustomDuration, field, value)
	case "state":
		if err := setString(&w.form.State, field, value); err != nil {
			return err
		}
		// A city is only meaningful relative to its state.
		w.form.City = ""
		return nil
	case "city":
		return setString(&w.form.City, field, value)
	case "venueDetails":
		return setString(&w.form.VenueDetails, field, value)
	case "traditionStyle":
		return setString(&w.form.TraditionStyle, field, value)
	case "attendees":
		return setInt(&w.form.Attendees, field, value)
	case "description":
		return setString(&w.form.Description, field, value)
	case "customRequirements":
		return setString(&w.form.CustomRequirements, field, value)
	case "specialInstructions":
		return setString(&w.form.SpecialInstructions, field, value)
	case "accessibilityNeeds":
		return setString(&w.form.AccessibilityNeeds, field, value)
	case "eventPriority":
		return setString(&w.form.EventPriority, field, value)
	case "contactPreference":
		return setString(&w.form.ContactPreference, field, value)
	case "inspirationImage":
		return setString(&w.form.InspirationImage, field, value)
	case "needsVendor":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %s expects a bool", field)
		}
		w.form.NeedsVendor = b
		return nil
	case "timeline":
		entries, ok := value.([]TimelineEntry)
		if !ok {
			return fmt.Errorf("field %s expects timeline entries", field)
		}
		w.form.Timeline = entries
		return nil
	case "foodPreferences":
		prefs, ok := value.([]string)
		if !ok {
			return fmt.Errorf("field %s expects a string slice", field)
		}
		w.form.FoodPreferences = prefs
		return nil
	}
	return fmt.Errorf("unknown form field %q", field)
}

// SetBudget mutates one budget bound ("min" or "max") and clears the combined
// budget error.
func (w *Wizard) SetBudget(bound string, value int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateEditing {
		return ErrInvalidTransition
	}

	switch bound {
	case "min":
		w.form.Budget.Min = value
	case "max":
		w.form.Budget.Max = value
	default:
		return fmt.Errorf("unknown budget bound %q", bound)
	}
	delete(w.errors, "budget")
	return nil
}

// SaveDraft snapshots the in-progress form into the single draft slot.
// Best-effort: the store logs and swallows its own failures.
func (w *Wizard) SaveDraft() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cfg.Drafts != nil {
		w.cfg.Drafts.SaveDraft(w.form)
	}
}

// Submit validates the whole form and, when clean, persists it. Validation
// failure keeps the wizard editing with errors recorded. A service failure
// also keeps the wizard editing, with the entered data intact, so the user
// can retry. Create-mode success clears the draft slot and advances to the
// vendor-choice prompt; edit-mode success is terminal.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()

	if w.state == StateSubmitting {
		w.mu.Unlock()
		return ErrSubmitInFlight
	}
	if w.state != StateEditing {
		w.mu.Unlock()
		return ErrInvalidTransition
	}

	w.errors = Validate(w.form)
	if !IsFormValid(w.errors) {
		w.mu.Unlock()
		return nil
	}

	w.state = StateSubmitting
	payload := w.form.Payload(w.cfg.SectionID, w.cfg.SubsectionID)
	w.mu.Unlock()

	if w.editMode {
		_, err := w.cfg.Events.UpdateEvent(ctx, w.cfg.EditEventID, payload)
		w.mu.Lock()
		defer w.mu.Unlock()
		if err != nil {
			w.log.Error("error saving event", slog.Any("error", err))
			w.state = StateEditing
			return fmt.Errorf("error saving event: %w", err)
		}
		w.state = StateEditDone
		if w.cfg.OnEventSaved != nil {
			w.cfg.OnEventSaved(w.form.EventName, w.form.ClientName)
		}
		return nil
	}

	record, err := w.cfg.Events.CreateEvent(ctx, payload)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.log.Error("error saving event", slog.Any("error", err))
		w.state = StateEditing
		return fmt.Errorf("error saving event: %w", err)
	}

	w.created = record
	if w.cfg.Drafts != nil {
		w.cfg.Drafts.ClearDraft()
	}
	w.state = StateVendorChoice
	return nil
}

// ChooseVendors moves from the vendor-choice prompt into vendor selection.
func (w *Wizard) ChooseVendors() error {
	return w.transition(StateVendorChoice, StateVendorSelect)
}

// SkipVendors routes the vendor-choice prompt to organizer selection. Vendor
// and organizer selection are alternative ways to staff the event, so the
// skip offers the organizer path rather than completing outright.
func (w *Wizard) SkipVendors() error {
	return w.transition(StateVendorChoice, StateOrganizerSelect)
}

func (w *Wizard) transition(from, to State) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != from {
		return ErrInvalidTransition
	}
	w.state = to
	return nil
}

// CompleteVendorSelection books every selected vendor against the created
// event, one call at a time, and always finishes in the success state.
// Selections whose id is not a persisted vendor are skipped without a call.
// Individual booking failures are captured in the returned outcomes and
// logged; they never abort the batch.
func (w *Wizard) CompleteVendorSelection(ctx context.Context, selected []string) ([]BookingOutcome, error) {
	w.mu.Lock()
	if w.state != StateVendorSelect {
		w.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	created := w.created
	date := normalizeDateTime(w.form.DateTime)
	w.mu.Unlock()

	var outcomes []BookingOutcome
	if created != nil && len(selected) > 0 {
		for _, vendorID := range selected {
			if _, err := uuid.Parse(vendorID); err != nil {
				outcomes = append(outcomes, BookingOutcome{VendorID: vendorID, Err: ErrVendorNotBookable})
				continue
			}
			_, err := w.cfg.Bookings.CreateBooking(ctx, BookingRequest{
				VendorID:    vendorID,
				EventID:     created.ID,
				BookingDate: date,
				Status:      "pending",
			})
			if err != nil {
				w.log.Warn("failed to book vendor",
					slog.String("vendor_id", vendorID), slog.Any("error", err))
			}
			outcomes = append(outcomes, BookingOutcome{VendorID: vendorID, Err: err})
		}
	}

	w.mu.Lock()
	w.state = StateSuccess
	w.mu.Unlock()
	return outcomes, nil
}

// CompleteOrganizerSelection books the chosen organizer and finishes, or, on
// an explicit skip, falls through to vendor selection. The organizer-skip
// fallthrough is deliberate and asymmetric with SkipVendors.
func (w *Wizard) CompleteOrganizerSelection(ctx context.Context, choice OrganizerChoice) (*BookingOutcome, error) {
	w.mu.Lock()
	if w.state != StateOrganizerSelect {
		w.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	created := w.created
	date := normalizeDateTime(w.form.DateTime)
	w.mu.Unlock()

	organizerID, ok := choice.Selected()
	if !ok {
		w.mu.Lock()
		w.state = StateVendorSelect
		w.mu.Unlock()
		return nil, nil
	}

	var outcome *BookingOutcome
	if created != nil {
		_, err := w.cfg.Bookings.CreateBooking(ctx, BookingRequest{
			VendorID:    organizerID,
			EventID:     created.ID,
			BookingDate: date,
			Status:      "pending",
		})
		if err != nil {
			w.log.Warn("failed to book organizer",
				slog.String("organizer_id", organizerID), slog.Any("error", err))
		}
		outcome = &BookingOutcome{VendorID: organizerID, Err: err}
	}

	w.mu.Lock()
	w.state = StateSuccess
	w.mu.Unlock()
	return outcome, nil
}

// Reset returns a successful create-mode wizard to an empty editing state so
// another event can be entered.
func (w *Wizard) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateSuccess {
		return ErrInvalidTransition
	}
	w.form = NewFormData(w.cfg.SubsectionName)
	w.errors = ValidationErrors{}
	w.created = nil
	w.state = StateEditing
	return nil
}

func setString(dst *string, field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %s expects a string", field)
	}
	*dst = s
	return nil
}

func setInt(dst *int, field string, value any) error {
	switch v := value.(type) {
	case int:
		*dst = v
	case float64:
		*dst = int(v)
	default:
		return fmt.Errorf("field %s expects a number", field)
	}
	return nil
}
