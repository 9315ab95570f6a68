package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyoria/eventhub/internal/catalog"
)

func TestLocationSelectorCascade(t *testing.T) {
	var gotState, gotCity string
	s := NewLocationSelector(
		func(state string) { gotState = state },
		func(city string) { gotCity = city },
	)

	assert.NotEmpty(t, s.States())
	assert.Nil(t, s.Cities())

	s.SetState("Karnataka")
	assert.Equal(t, "Karnataka", gotState)
	assert.Contains(t, s.Cities(), "Bengaluru")

	require.True(t, s.SetCity("Bengaluru"))
	assert.Equal(t, "Bengaluru", gotCity)
	assert.Equal(t, "Bengaluru", s.City())
}

func TestLocationSelectorStateChangeResetsCity(t *testing.T) {
	var cityChanges []string
	s := NewLocationSelector(nil, func(city string) { cityChanges = append(cityChanges, city) })

	s.SetState("Karnataka")
	require.True(t, s.SetCity("Mysuru"))
	s.SetState("Kerala")

	assert.Empty(t, s.City())
	assert.Equal(t, []string{"", "Mysuru", ""}, cityChanges)

	// Re-selecting the same state also resets.
	require.True(t, s.SetCity("Kochi"))
	s.SetState("Kerala")
	assert.Empty(t, s.City())
}

func TestLocationSelectorRejectsForeignCity(t *testing.T) {
	s := NewLocationSelector(nil, nil)
	s.SetState("Karnataka")

	assert.False(t, s.SetCity("Mumbai"))
	assert.Empty(t, s.City())

	// Clearing the city is always allowed.
	require.True(t, s.SetCity("Bengaluru"))
	assert.True(t, s.SetCity(""))
	assert.Empty(t, s.City())
}

func TestVendorSelectorToggleKeepsOrder(t *testing.T) {
	var toggled []string
	s := NewVendorSelector(catalog.FallbackVendors(), func(id string) { toggled = append(toggled, id) })

	s.Toggle("photo-1")
	s.Toggle("catering-2")
	s.Toggle("decor-1")
	assert.Equal(t, []string{"photo-1", "catering-2", "decor-1"}, s.Selected())

	s.Toggle("catering-2")
	assert.False(t, s.IsSelected("catering-2"))
	assert.Equal(t, []string{"photo-1", "decor-1"}, s.Selected())

	assert.Equal(t, []string{"photo-1", "catering-2", "decor-1", "catering-2"}, toggled)
}

func TestVendorSelectorSelectedIsACopy(t *testing.T) {
	s := NewVendorSelector(catalog.FallbackVendors(), nil)
	s.Toggle("photo-1")

	selected := s.Selected()
	selected[0] = "mutated"
	assert.Equal(t, []string{"photo-1"}, s.Selected())
}

func TestVendorSelectorMergesWithoutDeduplication(t *testing.T) {
	static := []catalog.Vendor{{ID: "photo-1", Name: "Moments Photography", Category: "Photography"}}
	s := NewVendorSelector(static, nil)
	s.remote = []catalog.Vendor{{ID: "photo-1", Name: "Moments Photography", Category: "Photography"}}

	// The static and remote lists are one flat sequence.
	assert.Len(t, s.AllVendors(), 2)
}

func TestVendorSelectorFiltering(t *testing.T) {
	s := NewVendorSelector(catalog.FallbackVendors(), nil)

	s.SetSearch("feast")
	filtered := s.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Royal Feast Catering", filtered[0].Name)

	s.SetSearch("")
	s.SetCategory("Photography")
	for _, vendor := range s.Filtered() {
		assert.Equal(t, "Photography", vendor.Category)
	}

	s.SetCategory("all")
	assert.Len(t, s.Filtered(), len(catalog.FallbackVendors()))
}

func TestVendorSelectorCategoriesFirstSeenOrder(t *testing.T) {
	s := NewVendorSelector(catalog.FallbackVendors(), nil)

	categories := s.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, "all", categories[0])
	assert.Equal(t, []string{"all", "Catering", "Photography", "Decoration", "Entertainment", "Beauty", "Security"}, categories)
}

func TestVendorSelectorGroupByCategory(t *testing.T) {
	s := NewVendorSelector(catalog.FallbackVendors(), nil)

	grouped := s.GroupByCategory()
	assert.Len(t, grouped["Catering"], 2)
	assert.Len(t, grouped["Security"], 1)
}

func TestOrganizerSelectorRadioExclusive(t *testing.T) {
	s := NewOrganizerSelector(nil)
	require.Len(t, s.Organizers(), 4)

	require.True(t, s.Select("1"))
	require.True(t, s.Select("3"))
	assert.Equal(t, "3", s.SelectedID())

	assert.False(t, s.Select("nope"))
	assert.Equal(t, "3", s.SelectedID())
}

func TestOrganizerSelectorComplete(t *testing.T) {
	s := NewOrganizerSelector(nil)

	_, picked := s.Complete().Selected()
	assert.False(t, picked)

	require.True(t, s.Select("2"))
	id, picked := s.Complete().Selected()
	assert.True(t, picked)
	assert.Equal(t, "2", id)

	// Skip ignores the pick.
	_, picked = s.Skip().Selected()
	assert.False(t, picked)
}
