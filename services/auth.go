package services

import (
	"log"

	"train-booking-cli/models"
	"train-booking-cli/storage"
)

// Auth manages user accounts. Credentials are compared in plaintext; this
// tool does no password hashing.
type Auth struct {
	store *storage.Store
}

// NewAuth returns an Auth over the given store
func NewAuth(store *storage.Store) *Auth {
	return &Auth{store: store}
}

// Register creates a new account. The username must be unused; empty-input
// and confirmation checks belong to the terminal layer.
func (a *Auth) Register(username, password string) error {
	if _, ok := a.store.Users[username]; ok {
		return ErrUserExists
	}
	a.store.Users[username] = models.User{Password: password}
	if err := a.store.SaveUsers(); err != nil {
		// The account exists for this session even when the save fails.
		log.Printf("Warning: could not save users: %v", err)
	}
	return nil
}

// Authenticate checks a username/password pair
func (a *Auth) Authenticate(username, password string) error {
	user, ok := a.store.Users[username]
	if !ok || user.Password != password {
		return ErrInvalidCredentials
	}
	return nil
}
