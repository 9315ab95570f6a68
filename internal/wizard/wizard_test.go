package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventService struct {
	createErr error
	updateErr error
	getRecord *EventRecord

	created []EventPayload
	updated map[string]EventPayload
}

func (f *fakeEventService) CreateEvent(_ context.Context, payload EventPayload) (*EventRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, payload)
	return &EventRecord{ID: uuid.NewString(), EventPayload: payload}, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, id string, payload EventPayload) (*EventRecord, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updated == nil {
		f.updated = map[string]EventPayload{}
	}
	f.updated[id] = payload
	return &EventRecord{ID: id, EventPayload: payload}, nil
}

func (f *fakeEventService) GetEvent(_ context.Context, id string) (*EventRecord, error) {
	if f.getRecord == nil {
		return nil, errors.New("event not found")
	}
	return f.getRecord, nil
}

type fakeBookingService struct {
	failFor  map[string]error
	requests []BookingRequest
}

func (f *fakeBookingService) CreateBooking(_ context.Context, req BookingRequest) (*BookingRecord, error) {
	if err, ok := f.failFor[req.VendorID]; ok {
		return nil, err
	}
	f.requests = append(f.requests, req)
	return &BookingRecord{ID: uuid.NewString(), BookingRequest: req}, nil
}

type fakeDraftStore struct {
	draft   *FormData
	cleared int
	events  map[string]FormData
}

func (f *fakeDraftStore) SaveDraft(form FormData) { f.draft = &form }
func (f *fakeDraftStore) GetDraft() *FormData     { return f.draft }
func (f *fakeDraftStore) ClearDraft()             { f.draft = nil; f.cleared++ }
func (f *fakeDraftStore) GetEvent(id string) *FormData {
	if form, ok := f.events[id]; ok {
		return &form
	}
	return nil
}

func newTestWizard(t *testing.T, events *fakeEventService, bookings *fakeBookingService, drafts DraftStore) *Wizard {
	t.Helper()
	w, err := New(context.Background(), Config{
		SectionID:      "social",
		SubsectionID:   "wedding",
		SubsectionName: "Wedding",
		Events:         events,
		Bookings:       bookings,
		Drafts:         drafts,
	})
	require.NoError(t, err)
	return w
}

func fillValid(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.SetField("eventName", "Garden Wedding"))
	require.NoError(t, w.SetField("clientName", "Priya Sharma"))
	require.NoError(t, w.SetField("clientEmail", "priya@example.com"))
	require.NoError(t, w.SetField("clientPhone", "+91 98765 43210"))
	require.NoError(t, w.SetField("dateTime", "2026-09-12T18:30"))
	require.NoError(t, w.SetField("duration", "4 hours"))
	require.NoError(t, w.SetField("state", "Karnataka"))
	require.NoError(t, w.SetField("city", "Bangalore"))
	require.NoError(t, w.SetField("attendees", 150))
	require.NoError(t, w.SetBudget("min", 50000))
	require.NoError(t, w.SetBudget("max", 200000))
}

func TestNewStartsEditingWithDefaults(t *testing.T) {
	w := newTestWizard(t, &fakeEventService{}, &fakeBookingService{}, nil)

	assert.Equal(t, StateEditing, w.State())
	assert.False(t, w.EditMode())
	form := w.Form()
	assert.Equal(t, "Wedding", form.EventName)
	assert.Equal(t, "medium", form.EventPriority)
	assert.Equal(t, "both", form.ContactPreference)
}

func TestSetFieldStateChangeClearsCity(t *testing.T) {
	w := newTestWizard(t, &fakeEventService{}, &fakeBookingService{}, nil)

	require.NoError(t, w.SetField("state", "Karnataka"))
	require.NoError(t, w.SetField("city", "Bangalore"))
	require.NoError(t, w.SetField("state", "Kerala"))

	form := w.Form()
	assert.Equal(t, "Kerala", form.State)
	assert.Empty(t, form.City)
}

func TestSetFieldClearsItsValidationError(t *testing.T) {
	w := newTestWizard(t, &fakeEventService{}, &fakeBookingService{}, nil)

	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, StateEditing, w.State())
	require.Contains(t, w.Errors(), "clientEmail")

	require.NoError(t, w.SetField("clientEmail", "still not an email"))
	assert.NotContains(t, w.Errors(), "clientEmail")
}

func TestSetBudgetClearsBudgetError(t *testing.T) {
	w := newTestWizard(t, &fakeEventService{}, &fakeBookingService{}, nil)

	require.NoError(t, w.Submit(context.Background()))
	require.Contains(t, w.Errors(), "budget")

	require.NoError(t, w.SetBudget("min", 1000))
	assert.NotContains(t, w.Errors(), "budget")
}

func TestSetFieldRejectsUnknownField(t *testing.T) {
	w := newTestWizard(t, &fakeEventService{}, &fakeBookingService{}, nil)
	assert.Error(t, w.SetField("favouriteColour", "blue"))
}

func TestSubmitInvalidFormStaysEditing(t *testing.T) {
	events := &fakeEventService{}
	w := newTestWizard(t, events, &fakeBookingService{}, nil)

	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, StateEditing, w.State())
	assert.NotEmpty(t, w.Errors())
	assert.Empty(t, events.created)
}

func TestSubmitCreateAdvancesToVendorChoiceAndClearsDraft(t *testing.T) {
	events := &fakeEventService{}
	drafts := &fakeDraftStore{}
	w := newTestWizard(t, events, &fakeBookingService{}, drafts)

	fillValid(t, w)
	w.SaveDraft()
	require.NotNil(t, drafts.GetDraft())

	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, StateVendorChoice, w.State())
	require.Len(t, events.created, 1)
	payload := events.created[0]
	assert.Equal(t, "Garden Wedding", payload.Name)
	assert.Equal(t, "social", payload.SectionID)
	assert.Equal(t, "wedding", payload.SubsectionID)
	assert.NotEmpty(t, payload.Date)
	assert.NotEqual(t, "2026-09-12T18:30", payload.Date)

	assert.Nil(t, drafts.GetDraft())
	assert.Equal(t, 1, drafts.cleared)
	require.NotNil(t, w.CreatedEvent())
}

func TestSubmitServiceFailureKeepsDataForRetry(t *testing.T) {
	events := &fakeEventService{createErr: errors.New("service unavailable")}
	w := newTestWizard(t, events, &fakeBookingService{}, nil)

	fillValid(t, w)
	require.Error(t, w.Submit(context.Background()))

	assert.Equal(t, StateEditing, w.State())
	assert.Equal(t, "Garden Wedding", w.Form().EventName)
	assert.Nil(t, w.CreatedEvent())

	events.createErr = nil
	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, StateVendorChoice, w.State())
}

func TestSubmitOutsideEditingIsRejected(t *testing.T) {
	w := newTestWizard(t, &fakeEventService{}, &fakeBookingService{}, nil)
	fillValid(t, w)
	require.NoError(t, w.Submit(context.Background()))

	assert.ErrorIs(t, w.Submit(context.Background()), ErrInvalidTransition)
}

func TestCompleteVendorSelectionBooksEachVendor(t *testing.T) {
	events := &fakeEventService{}
	bookings := &fakeBookingService{}
	w := newTestWizard(t, events, bookings, nil)

	fillValid(t, w)
	require.NoError(t, w.Submit(context.Background()))
	require.NoError(t, w.ChooseVendors())
	assert.Equal(t, StateVendorSelect, w.State())

	first := uuid.NewString()
	second := uuid.NewString()
	outcomes, err := w.CompleteVendorSelection(context.Background(), []string{first, second})
	require.NoError(t, err)

	assert.Equal(t, StateSuccess, w.State())
	require.Len(t, outcomes, 2)
	assert.NoError(t, outcomes[0].Err)
	assert.NoError(t, outcomes[1].Err)

	require.Len(t, bookings.requests, 2)
	assert.Equal(t, first, bookings.requests[0].VendorID)
	assert.Equal(t, w.CreatedEvent().ID, bookings.requests[0].EventID)
	assert.Equal(t, "pending", bookings.requests[0].Status)
}

func TestCompleteVendorSelectionSkipsSyntheticIDs(t *testing.T) {
	bookings := &fakeBookingService{}
	w := newTestWizard(t, &fakeEventService{}, bookings, nil)

	fillValid(t, w)
	require.NoError(t, w.Submit(context.Background()))
	require.NoError(t, w.ChooseVendors())

	real := uuid.NewString()
	outcomes, err := w.CompleteVendorSelection(context.Background(), []string{"catering-1", real})
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	assert.ErrorIs(t, outcomes[0].Err, ErrVendorNotBookable)
	assert.NoError(t, outcomes[1].Err)

	// Only the persisted vendor produced a call.
	require.Len(t, bookings.requests, 1)
	assert.Equal(t, real, bookings.requests[0].VendorID)
}

func TestCompleteVendorSelectionFailureDoesNotAbortBatch(t *testing.T) {
	failing := uuid.NewString()
	surviving := uuid.NewString()
	bookings := &fakeBookingService{failFor: map[string]error{failing: errors.New("vendor fully booked")}}
	w := newTestWizard(t, &fakeEventService{}, bookings, nil)

	fillValid(t, w)
	require.NoError(t, w.Submit(context.Background()))
	require.NoError(t, w.ChooseVendors())

	outcomes, err := w.CompleteVendorSelection(context.Background(), []string{failing, surviving})
	require.NoError(t, err)

	assert.Equal(t, StateSuccess, w.State())
	require.Len(t, outcomes, 2)
	assert.Error(t, outcomes[0].Err)
	assert.NoError(t, outcomes[1].Err)
	require.Len(t, bookings.requests, 1)
}

func TestSkipVendorsOffersOrganizerPath(t *testing.T) {
	bookings := &fakeBookingService{}
	w := newTestWizard(t, &fakeEventService{}, bookings, nil)

	fillValid(t, w)
	require.NoError(t, w.Submit(context.Background()))
	require.NoError(t, w.SkipVendors())
	assert.Equal(t, StateOrganizerSelect, w.State())

	outcome, err := w.CompleteOrganizerSelection(context.Background(), ChooseOrganizer("3"))
	require.NoError(t, err)

	assert.Equal(t, StateSuccess, w.State())
	require.NotNil(t, outcome)
	assert.NoError(t, outcome.Err)

	require.Len(t, bookings.requests, 1)
	assert.Equal(t, "3", bookings.requests[0].VendorID)
	assert.Equal(t, "pending", bookings.requests[0].Status)
}

func TestOrganizerSkipFallsThroughToVendorSelect(t *testing.T) {
	bookings := &fakeBookingService{}
	w := newTestWizard(t, &fakeEventService{}, bookings, nil)

	fillValid(t, w)
	require.NoError(t, w.Submit(context.Background()))
	require.NoError(t, w.SkipVendors())

	outcome, err := w.CompleteOrganizerSelection(context.Background(), SkipOrganizer())
	require.NoError(t, err)
	assert.Nil(t, outcome)
	assert.Equal(t, StateVendorSelect, w.State())
	assert.Empty(t, bookings.requests)
}

func TestEditModeHydratesFromService(t *testing.T) {
	id := uuid.NewString()
	events := &fakeEventService{getRecord: &EventRecord{
		ID: id,
		EventPayload: EventPayload{
			Name:        "Corporate Gala",
			ClientName:  "Meera Nair",
			ClientEmail: "meera@example.com",
			ClientPhone: "9000000000",
			Date:        "2026-10-01T19:00:00+05:30",
			Duration:    "6 hours",
			State:       "Maharashtra",
			City:        "Mumbai",
			Attendees:   300,
			BudgetMin:   100000,
			BudgetMax:   500000,
		},
	}}

	w, err := New(context.Background(), Config{
		EditEventID: id,
		Events:      events,
		Bookings:    &fakeBookingService{},
	})
	require.NoError(t, err)

	assert.True(t, w.EditMode())
	form := w.Form()
	assert.Equal(t, "Corporate Gala", form.EventName)
	assert.Equal(t, "Mumbai", form.City)
	assert.Equal(t, 100000, form.Budget.Min)
}

func TestEditModeFallsBackToLocalStore(t *testing.T) {
	saved := validForm()
	drafts := &fakeDraftStore{events: map[string]FormData{"evt-1": saved}}

	w, err := New(context.Background(), Config{
		EditEventID: "evt-1",
		Events:      &fakeEventService{},
		Bookings:    &fakeBookingService{},
		Drafts:      drafts,
	})
	require.NoError(t, err)
	assert.Equal(t, saved.EventName, w.Form().EventName)
}

func TestEditModeUnknownEventFails(t *testing.T) {
	_, err := New(context.Background(), Config{
		EditEventID: "missing",
		Events:      &fakeEventService{},
		Bookings:    &fakeBookingService{},
	})
	assert.Error(t, err)
}

func TestEditModeSubmitUpdatesAndFinishes(t *testing.T) {
	id := uuid.NewString()
	events := &fakeEventService{getRecord: &EventRecord{
		ID:           id,
		EventPayload: validForm().Payload("social", "wedding"),
	}}
	bookings := &fakeBookingService{}

	var savedName, savedClient string
	w, err := New(context.Background(), Config{
		EditEventID:  id,
		SectionID:    "social",
		SubsectionID: "wedding",
		Events:       events,
		Bookings:     bookings,
		OnEventSaved: func(eventName, clientName string) {
			savedName, savedClient = eventName, clientName
		},
	})
	require.NoError(t, err)

	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, StateEditDone, w.State())
	assert.Contains(t, events.updated, id)
	assert.Equal(t, "Garden Wedding", savedName)
	assert.Equal(t, "Priya Sharma", savedClient)

	// Edit mode never enters the vendor flow.
	assert.ErrorIs(t, w.ChooseVendors(), ErrInvalidTransition)
	assert.Empty(t, bookings.requests)
}

func TestResetReturnsToEmptyEditing(t *testing.T) {
	w := newTestWizard(t, &fakeEventService{}, &fakeBookingService{}, nil)

	fillValid(t, w)
	require.NoError(t, w.Submit(context.Background()))
	require.NoError(t, w.ChooseVendors())
	_, err := w.CompleteVendorSelection(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, StateSuccess, w.State())

	require.NoError(t, w.Reset())

	assert.Equal(t, StateEditing, w.State())
	assert.Equal(t, "Wedding", w.Form().EventName)
	assert.Empty(t, w.Form().ClientName)
	assert.Nil(t, w.CreatedEvent())
}

func TestResetOutsideSuccessIsRejected(t *testing.T) {
	w := newTestWizard(t, &fakeEventService{}, &fakeBookingService{}, nil)
	assert.ErrorIs(t, w.Reset(), ErrInvalidTransition)
}

func TestTransitionGuards(t *testing.T) {
	w := newTestWizard(t, &fakeEventService{}, &fakeBookingService{}, nil)

	assert.ErrorIs(t, w.ChooseVendors(), ErrInvalidTransition)
	assert.ErrorIs(t, w.SkipVendors(), ErrInvalidTransition)

	_, err := w.CompleteVendorSelection(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = w.CompleteOrganizerSelection(context.Background(), SkipOrganizer())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNormalizeDateTime(t *testing.T) {
	assert.Empty(t, normalizeDateTime(""))

	normalized := normalizeDateTime("2026-09-12T18:30")
	parsed, err := ParseEventDate(normalized)
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, 18, parsed.Hour())

	// Already-normalized values pass through unchanged in meaning.
	assert.Equal(t, normalized, normalizeDateTime(normalized))
}
