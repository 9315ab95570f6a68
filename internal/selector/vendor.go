package selector

import (
	"context"
	"strings"

	"github.com/partyoria/eventhub/internal/catalog"
)

// VendorSelector is a toggled multi-select over the merged static and remote
// vendor lists. The two lists are treated as one flat sequence; entries are
// not de-duplicated by id, matching the upstream catalog contract.
type VendorSelector struct {
	static []catalog.Vendor
	remote []catalog.Vendor

	selected map[string]bool
	order    []string

	search   string
	category string

	onToggle func(vendorID string)
}

func NewVendorSelector(static []catalog.Vendor, onToggle func(string)) *VendorSelector {
	return &VendorSelector{
		static:   static,
		selected: map[string]bool{},
		category: "all",
		onToggle: onToggle,
	}
}

// Load fetches the remote vendor catalog and appends it to the static list.
func (s *VendorSelector) Load(ctx context.Context, client *catalog.Client) {
	s.remote = client.GetVendors(ctx)
}

// AllVendors returns the flat static+remote sequence.
func (s *VendorSelector) AllVendors() []catalog.Vendor {
	all := make([]catalog.Vendor, 0, len(s.static)+len(s.remote))
	all = append(all, s.static...)
	all = append(all, s.remote...)
	return all
}

// Toggle flips a vendor's membership in the selection set.
func (s *VendorSelector) Toggle(vendorID string) {
	if s.selected[vendorID] {
		delete(s.selected, vendorID)
		for i, id := range s.order {
			if id == vendorID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	} else {
		s.selected[vendorID] = true
		s.order = append(s.order, vendorID)
	}
	if s.onToggle != nil {
		s.onToggle(vendorID)
	}
}

func (s *VendorSelector) IsSelected(vendorID string) bool {
	return s.selected[vendorID]
}

// Selected returns the selection in toggle order.
func (s *VendorSelector) Selected() []string {
	return append([]string(nil), s.order...)
}

func (s *VendorSelector) SetSearch(query string)      { s.search = query }
func (s *VendorSelector) SetCategory(category string) { s.category = category }

// Categories lists "all" plus every distinct category in the merged list, in
// first-seen order.
func (s *VendorSelector) Categories() []string {
	categories := []string{"all"}
	seen := map[string]bool{}
	for _, vendor := range s.AllVendors() {
		if !seen[vendor.Category] {
			seen[vendor.Category] = true
			categories = append(categories, vendor.Category)
		}
	}
	return categories
}

// Filtered applies the free-text search (over name) and the category filter.
func (s *VendorSelector) Filtered() []catalog.Vendor {
	var out []catalog.Vendor
	query := strings.ToLower(s.search)
	for _, vendor := range s.AllVendors() {
		if query != "" && !strings.Contains(strings.ToLower(vendor.Name), query) {
			continue
		}
		if s.category != "all" && vendor.Category != s.category {
			continue
		}
		out = append(out, vendor)
	}
	return out
}

// GroupByCategory buckets the filtered vendors for display.
func (s *VendorSelector) GroupByCategory() map[string][]catalog.Vendor {
	grouped := map[string][]catalog.Vendor{}
	for _, vendor := range s.Filtered() {
		grouped[vendor.Category] = append(grouped[vendor.Category], vendor)
	}
	return grouped
}
