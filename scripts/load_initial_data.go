package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"barshift-backend/internal/auth"
	"barshift-backend/internal/config"
	"barshift-backend/internal/database"
	"barshift-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type VenueData struct {
	Name        string `yaml:"name"`
	Address     string `yaml:"address,omitempty"`
	IsNetworked bool   `yaml:"is_networked"`
	Priority    int    `yaml:"priority"`
}

type StaffData struct {
	FullName     string         `yaml:"full_name"`
	Email        string         `yaml:"email"`
	Password     string         `yaml:"password"`
	PhoneNumber  string         `yaml:"phone_number,omitempty"`
	Role         string         `yaml:"role"`
	IsLead       bool           `yaml:"is_lead"`
	HasDayJob    bool           `yaml:"has_day_job"`
	DayJobCutoff string         `yaml:"day_job_cutoff,omitempty"`
	Venues       []string       `yaml:"venues,omitempty"` // ordered preference list, venue names
	VenueRanks   map[string]int `yaml:"venue_ranks,omitempty"`
}

type ShiftData struct {
	VenueName          string `yaml:"venue_name"`
	Date               string `yaml:"date"` // "YYYY-MM-DD"
	StartTime          string `yaml:"start_time"`
	EndTime            string `yaml:"end_time"`
	BartendersRequired int    `yaml:"bartenders_required"`
	BarbacksRequired   int    `yaml:"barbacks_required"`
	LeadsRequired      int    `yaml:"leads_required"`
	Notes              string `yaml:"notes,omitempty"`
}

type AvailabilityData struct {
	StaffEmail string   `yaml:"staff_email"`
	Month      string   `yaml:"month"` // "YYYY-MM"
	Available  []string `yaml:"available,omitempty"`
	Off        []string `yaml:"off,omitempty"`
	Submitted  bool     `yaml:"submitted"`
}

// File structures
type VenuesFile struct {
	Venues []VenueData `yaml:"venues"`
}

type StaffFile struct {
	Staff []StaffData `yaml:"staff"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

type AvailabilitiesFile struct {
	Availabilities []AvailabilityData `yaml:"availabilities"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	venues, err := loadVenues(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load venues: %w", err)
	}

	staff, err := loadStaff(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load staff: %w", err)
	}

	shifts, err := loadShifts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}

	availabilities, err := loadAvailabilities(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load availabilities: %w", err)
	}

	// Create venues first
	venueMap := make(map[string]*models.Venue)
	venueCreated := 0
	for _, venueData := range venues {
		venue, created, err := createVenue(db, venueData)
		if err != nil {
			return fmt.Errorf("failed to create venue %s: %w", venueData.Name, err)
		}
		venueMap[venueData.Name] = venue
		if created {
			venueCreated++
		}
	}
	log.Printf("📋 Venues: %d created, %d total", venueCreated, len(venues))

	// Create staff members with their venue preferences
	staffMap := make(map[string]*models.StaffMember)
	staffCreated := 0
	for _, staffData := range staff {
		member, created, err := createStaffMember(db, staffData, venueMap)
		if err != nil {
			return fmt.Errorf("failed to create staff member %s: %w", staffData.Email, err)
		}
		staffMap[staffData.Email] = member
		if created {
			staffCreated++
		}
	}
	log.Printf("📋 Staff members: %d created, %d total", staffCreated, len(staff))

	// Create shifts
	shiftCreated := 0
	for _, shiftData := range shifts {
		_, created, err := createShift(db, shiftData, venueMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create shift at %s on %s: %v", shiftData.VenueName, shiftData.Date, err)
			continue // Continue with other shifts
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("📋 Shifts: %d created, %d total", shiftCreated, len(shifts))

	// Create availabilities
	availabilityCreated := 0
	for _, availabilityData := range availabilities {
		_, created, err := createAvailability(db, availabilityData, staffMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create availability for %s: %v", availabilityData.StaffEmail, err)
			continue // Continue with other availabilities
		}
		if created {
			availabilityCreated++
		}
	}
	log.Printf("📋 Availabilities: %d created, %d total", availabilityCreated, len(availabilities))

	return nil
}

func loadVenues(dataDir string) ([]VenueData, error) {
	var allVenues []VenueData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "venues") {
			var file VenuesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allVenues = append(allVenues, file.Venues...)
		}
		return nil
	})

	return allVenues, err
}

func loadStaff(dataDir string) ([]StaffData, error) {
	var allStaff []StaffData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "staff") {
			var file StaffFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allStaff = append(allStaff, file.Staff...)
		}
		return nil
	})

	return allStaff, err
}

func loadShifts(dataDir string) ([]ShiftData, error) {
	var allShifts []ShiftData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "shifts") {
			var file ShiftsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allShifts = append(allShifts, file.Shifts...)
		}
		return nil
	})

	return allShifts, err
}

func loadAvailabilities(dataDir string) ([]AvailabilityData, error) {
	var allAvailabilities []AvailabilityData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "availabilities") {
			var file AvailabilitiesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAvailabilities = append(allAvailabilities, file.Availabilities...)
		}
		return nil
	})

	return allAvailabilities, err
}

func createVenue(db *gorm.DB, venueData VenueData) (*models.Venue, bool, error) {
	var venue models.Venue
	if err := db.Where("name = ?", venueData.Name).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			venue = models.Venue{
				Name:        venueData.Name,
				Address:     venueData.Address,
				IsNetworked: venueData.IsNetworked,
				Priority:    venueData.Priority,
				IsActive:    true,
			}

			if err := db.Create(&venue).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create venue: %w", err)
			}
			return &venue, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query venue: %w", err)
		}
	}

	return &venue, false, nil // created = false (existing)
}

func createStaffMember(db *gorm.DB, staffData StaffData, venueMap map[string]*models.Venue) (*models.StaffMember, bool, error) {
	var member models.StaffMember
	if err := db.Where("email = ?", staffData.Email).First(&member).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query staff member: %w", err)
		}

		passwordHash, err := auth.HashPassword(staffData.Password)
		if err != nil {
			return nil, false, fmt.Errorf("failed to hash password: %w", err)
		}

		var cutoff *string
		if staffData.DayJobCutoff != "" {
			cutoff = &staffData.DayJobCutoff
		}

		member = models.StaffMember{
			FullName:     staffData.FullName,
			Email:        staffData.Email,
			PasswordHash: passwordHash,
			PhoneNumber:  staffData.PhoneNumber,
			Role:         models.StaffRole(staffData.Role),
			IsLead:       staffData.IsLead,
			HasDayJob:    staffData.HasDayJob,
			DayJobCutoff: cutoff,
			Status:       models.StaffStatusActive,
		}

		if err := db.Create(&member).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create staff member: %w", err)
		}

		for position, venueName := range staffData.Venues {
			venue := venueMap[venueName]
			if venue == nil {
				return nil, false, fmt.Errorf("venue %s not found for staff member %s", venueName, staffData.Email)
			}

			var rank *int
			if r, ok := staffData.VenueRanks[venueName]; ok {
				rank = &r
			}

			pref := models.StaffVenuePreference{
				StaffID:  member.ID,
				VenueID:  venue.ID,
				Position: position,
				Rank:     rank,
			}
			if err := db.Create(&pref).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create venue preference: %w", err)
			}
		}

		return &member, true, nil // created = true
	}

	return &member, false, nil // created = false (existing)
}

func createShift(db *gorm.DB, shiftData ShiftData, venueMap map[string]*models.Venue) (*models.Shift, bool, error) {
	venue := venueMap[shiftData.VenueName]
	if venue == nil {
		return nil, false, fmt.Errorf("venue %s not found", shiftData.VenueName)
	}

	date, err := time.Parse("2006-01-02", shiftData.Date)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date %q: %w", shiftData.Date, err)
	}

	var shift models.Shift
	if err := db.Where("venue_id = ? AND date = ? AND start_time = ?", venue.ID, date, shiftData.StartTime).First(&shift).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			shift = models.Shift{
				VenueID:            venue.ID,
				Date:               date,
				StartTime:          shiftData.StartTime,
				EndTime:            shiftData.EndTime,
				BartendersRequired: shiftData.BartendersRequired,
				BarbacksRequired:   shiftData.BarbacksRequired,
				LeadsRequired:      shiftData.LeadsRequired,
				Notes:              shiftData.Notes,
			}

			if err := db.Create(&shift).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create shift: %w", err)
			}
			return &shift, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query shift: %w", err)
		}
	}

	return &shift, false, nil // created = false (existing)
}

func createAvailability(db *gorm.DB, availabilityData AvailabilityData, staffMap map[string]*models.StaffMember) (*models.Availability, bool, error) {
	member := staffMap[availabilityData.StaffEmail]
	if member == nil {
		return nil, false, fmt.Errorf("staff member %s not found", availabilityData.StaffEmail)
	}

	var availability models.Availability
	if err := db.Where("staff_id = ? AND month = ?", member.ID, availabilityData.Month).First(&availability).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			days := models.AvailabilityDays{}
			for _, dateKey := range availabilityData.Available {
				days[dateKey] = models.DayEntry{Available: true}
			}
			for _, dateKey := range availabilityData.Off {
				days[dateKey] = models.DayEntry{Available: false}
			}

			availability = models.Availability{
				StaffID: member.ID,
				Month:   availabilityData.Month,
				Days:    days,
			}
			if availabilityData.Submitted {
				now := time.Now()
				availability.SubmittedAt = &now
			}

			if err := db.Create(&availability).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create availability: %w", err)
			}
			return &availability, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query availability: %w", err)
		}
	}

	return &availability, false, nil // created = false (existing)
}
