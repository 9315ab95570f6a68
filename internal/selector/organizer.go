package selector

import (
	"github.com/partyoria/eventhub/internal/catalog"
	"github.com/partyoria/eventhub/internal/wizard"
)

// OrganizerSelector is a radio-exclusive pick over organizer profiles.
type OrganizerSelector struct {
	organizers []catalog.Organizer
	selected   string
}

func NewOrganizerSelector(organizers []catalog.Organizer) *OrganizerSelector {
	if organizers == nil {
		organizers = catalog.Organizers
	}
	return &OrganizerSelector{organizers: organizers}
}

func (s *OrganizerSelector) Organizers() []catalog.Organizer {
	return s.organizers
}

// Select picks one organizer, replacing any previous pick. Unknown ids are
// ignored.
func (s *OrganizerSelector) Select(id string) bool {
	for _, organizer := range s.organizers {
		if organizer.ID == id {
			s.selected = id
			return true
		}
	}
	return false
}

func (s *OrganizerSelector) SelectedID() string {
	return s.selected
}

// Complete resolves the modal. With a pick it yields that organizer; with
// nothing selected it is an explicit skip.
func (s *OrganizerSelector) Complete() wizard.OrganizerChoice {
	if s.selected == "" {
		return wizard.SkipOrganizer()
	}
	return wizard.ChooseOrganizer(s.selected)
}

// Skip resolves the modal as an explicit skip regardless of any pick.
func (s *OrganizerSelector) Skip() wizard.OrganizerChoice {
	return wizard.SkipOrganizer()
}
