package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/internal/catalog"
	"github.com/partyoria/eventhub/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DataDir    string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DataDir:    os.Getenv("DATA_DIR"),
	}, nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Event{},
		&models.TimelineEntry{},
		&models.EventGuest{},
		&models.Vendor{},
		&models.Venue{},
		&models.Organizer{},
		&models.Booking{},
		&models.Location{},
	)
	if err != nil {
		return nil, err
	}

	seedRoles(db)
	seedLocations(db)
	seedOrganizers(db)

	return db, nil
}

func seedRoles(db *gorm.DB) {
	roles := []models.Role{
		{Name: "customer"},
		{Name: "vendor"},
		{Name: "organizer"},
	}

	for _, role := range roles {
		var existingRole models.Role
		result := db.Where("name = ?", role.Name).First(&existingRole)
		if result.Error != nil {
			db.Create(&role)
		}
	}
}

// seedLocations loads the built-in state/city table so a fresh install
// serves the same catalog the selector falls back to.
func seedLocations(db *gorm.DB) {
	locations := catalog.FallbackLocations()
	popular := map[string]bool{}
	for _, city := range locations.PopularCities {
		popular[city] = true
	}

	for _, state := range locations.States {
		for _, city := range locations.CitiesByState[state] {
			var existing models.Location
			result := db.Where("state = ? AND city = ?", state, city).First(&existing)
			if result.Error != nil {
				db.Create(&models.Location{State: state, City: city, IsPopular: popular[city]})
			}
		}
	}
}

func seedOrganizers(db *gorm.DB) {
	for _, organizer := range catalog.Organizers {
		var existing models.Organizer
		result := db.Where("name = ?", organizer.Name).First(&existing)
		if result.Error != nil {
			db.Create(&models.Organizer{
				Name:       organizer.Name,
				Rating:     organizer.Rating,
				Experience: organizer.Experience,
			})
		}
	}
}
