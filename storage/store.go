package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"train-booking-cli/config"
	"train-booking-cli/models"
)

// Store owns the application state and its on-disk JSON documents. Each
// document is loaded whole at startup and rewritten whole on save; the store
// is single-process, last write wins. The maps and slice are mutated in
// memory by the service layer, which decides when to persist.
type Store struct {
	usersFile    string
	trainsFile   string
	bookingsFile string

	Users    map[string]models.User
	Trains   map[string][]models.Train
	Bookings []models.Booking
}

// Open loads all data files, falling back to empty data when a file is
// missing or unreadable. A missing or corrupt train schedule is regenerated
// and saved immediately so every run has a full schedule to search.
func Open(cfg *config.Config) *Store {
	s := &Store{
		usersFile:    cfg.UsersFile,
		trainsFile:   cfg.TrainsFile,
		bookingsFile: cfg.BookingsFile,
		Users:        map[string]models.User{},
		Bookings:     []models.Booking{},
	}

	loadJSON(s.usersFile, &s.Users)
	loadJSON(s.bookingsFile, &s.Bookings)
	if s.Users == nil {
		s.Users = map[string]models.User{}
	}
	if s.Bookings == nil {
		s.Bookings = []models.Booking{}
	}

	loadJSON(s.trainsFile, &s.Trains)
	if len(s.Trains) == 0 {
		log.Printf("No train database found. Generating a new one...")
		s.Trains = SeedTrains()
		if err := s.SaveTrains(); err != nil {
			log.Printf("Warning: could not save train database: %v", err)
		} else {
			log.Printf("Train database saved to %s", s.trainsFile)
		}
	}

	return s
}

// SaveUsers writes the user accounts document
func (s *Store) SaveUsers() error {
	return saveJSON(s.usersFile, s.Users)
}

// SaveTrains writes the train schedule document
func (s *Store) SaveTrains() error {
	return saveJSON(s.trainsFile, s.Trains)
}

// SaveBookings writes the bookings document
func (s *Store) SaveBookings() error {
	return saveJSON(s.bookingsFile, s.Bookings)
}

// loadJSON fills v from path. A missing file is normal first-run state; a
// corrupt file is reported and treated as absent.
func loadJSON(path string, v interface{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: error reading %s: %v. Starting with empty data.", path, err)
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: error reading %s: %v. Starting with empty data.", path, err)
	}
}

// saveJSON rewrites path with the indented JSON encoding of v
func saveJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
