// Package selector holds the controlled selection state behind the wizard's
// location, vendor and organizer pickers. Selectors own no persistence; the
// chosen values flow to the caller through change callbacks.
package selector

import (
	"context"

	"github.com/partyoria/eventhub/internal/catalog"
)

// LocationSelector is a cascading two-level state/city picker. It starts on
// the built-in fallback table and upgrades to the remote catalog when a load
// succeeds.
type LocationSelector struct {
	locations catalog.Locations

	state string
	city  string

	onStateChange func(state string)
	onCityChange  func(city string)
}

func NewLocationSelector(onStateChange, onCityChange func(string)) *LocationSelector {
	return &LocationSelector{
		locations:     catalog.FallbackLocations(),
		onStateChange: onStateChange,
		onCityChange:  onCityChange,
	}
}

// Load replaces the fallback table with the remote catalog. The client
// already degrades to the fallback on failure, so Load never errors.
func (s *LocationSelector) Load(ctx context.Context, client *catalog.Client) {
	s.locations = client.GetLocations(ctx)
}

func (s *LocationSelector) States() []string {
	return s.locations.States
}

// Cities returns the city set of the currently selected state.
func (s *LocationSelector) Cities() []string {
	if s.state == "" {
		return nil
	}
	return s.locations.CitiesByState[s.state]
}

func (s *LocationSelector) State() string { return s.state }
func (s *LocationSelector) City() string  { return s.city }

// SetState selects a state and always resets the city, regardless of the
// prior value.
func (s *LocationSelector) SetState(state string) {
	s.state = state
	s.city = ""
	if s.onStateChange != nil {
		s.onStateChange(state)
	}
	if s.onCityChange != nil {
		s.onCityChange("")
	}
}

// SetCity selects a city. Only members of the current state's city set are
// accepted.
func (s *LocationSelector) SetCity(city string) bool {
	if city != "" {
		found := false
		for _, candidate := range s.Cities() {
			if candidate == city {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	s.city = city
	if s.onCityChange != nil {
		s.onCityChange(city)
	}
	return true
}
