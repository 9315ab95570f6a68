package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/helpers"
	"github.com/partyoria/eventhub/internal/models"
)

// GetLocations returns the state/city catalog in the shape the location
// selector consumes.
func GetLocations(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var locations []models.Location
	if err := gormDB.Order("state, city").Find(&locations).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving locations.")
		return
	}

	states := []string{}
	citiesByState := map[string][]string{}
	popularCities := []string{}
	for _, location := range locations {
		if _, seen := citiesByState[location.State]; !seen {
			states = append(states, location.State)
		}
		citiesByState[location.State] = append(citiesByState[location.State], location.City)
		if location.IsPopular {
			popularCities = append(popularCities, location.City)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"states":          states,
		"cities_by_state": citiesByState,
		"popular_cities":  popularCities,
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
