// Package catalog fetches the location and vendor catalogs from the event
// hub API, degrading to built-in tables whenever the remote side cannot be
// reached.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Vendor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Organizer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Experience string  `json:"experience"`
}

type Locations struct {
	States        []string            `json:"states"`
	CitiesByState map[string][]string `json:"cities_by_state"`
	PopularCities []string            `json:"popular_cities"`
}

const requestTimeout = 10 * time.Second

// Client talks to the catalog endpoints of the event hub API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// GetLocations fetches the state/city catalog. On any failure it returns the
// built-in fallback table instead of an error.
func (c *Client) GetLocations(ctx context.Context) Locations {
	var locations Locations
	if err := c.getJSON(ctx, "/v1/locations", &locations); err != nil {
		c.log.Info("using fallback location data", slog.Any("error", err))
		return FallbackLocations()
	}
	if len(locations.States) == 0 {
		return FallbackLocations()
	}
	return locations
}

// GetVendors fetches the vendor catalog, falling back to the static list.
func (c *Client) GetVendors(ctx context.Context) []Vendor {
	var response struct {
		Vendors []Vendor `json:"vendors"`
	}
	if err := c.getJSON(ctx, "/v1/vendors", &response); err != nil {
		c.log.Info("using fallback vendor data", slog.Any("error", err))
		return FallbackVendors()
	}
	return response.Vendors
}

// GetOrganizers fetches organizer profiles, falling back to the fixed list.
func (c *Client) GetOrganizers(ctx context.Context) []Organizer {
	var response struct {
		Organizers []Organizer `json:"organizers"`
	}
	if err := c.getJSON(ctx, "/v1/organizers", &response); err != nil {
		c.log.Info("using fallback organizer data", slog.Any("error", err))
		return Organizers
	}
	return response.Organizers
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog API error: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// FallbackLocations returns a copy of the built-in location table.
func FallbackLocations() Locations {
	cities := make(map[string][]string, len(fallbackCitiesByState))
	for state, list := range fallbackCitiesByState {
		cities[state] = append([]string(nil), list...)
	}
	return Locations{
		States:        append([]string(nil), fallbackStates...),
		CitiesByState: cities,
		PopularCities: []string{"Mumbai", "Delhi", "Bengaluru", "Hyderabad", "Chennai"},
	}
}

// FallbackVendors returns a copy of the static per-category vendor list.
func FallbackVendors() []Vendor {
	return append([]Vendor(nil), fallbackVendors...)
}
