package services

import (
	"train-booking-cli/models"
	"train-booking-cli/storage"
)

// Inventory provides reserve/release operations over the live seat counts in
// the train schedule. It is the only code that mutates Train.Seats; callers
// pair every successful Reserve with at most one Release.
type Inventory struct {
	store *storage.Store
}

// NewInventory returns an Inventory over the given store
func NewInventory(store *storage.Store) *Inventory {
	return &Inventory{store: store}
}

// Snapshot returns a value copy of the train identified by routeKey and
// trainID, suitable for embedding in a booking record.
func (inv *Inventory) Snapshot(routeKey, trainID string) (models.Train, error) {
	t := inv.find(routeKey, trainID)
	if t == nil {
		return models.Train{}, ErrTrainNotFound
	}
	return *t, nil
}

// Available returns the current seat count for a train
func (inv *Inventory) Available(routeKey, trainID string) (int, error) {
	t := inv.find(routeKey, trainID)
	if t == nil {
		return 0, ErrTrainNotFound
	}
	return t.Seats, nil
}

// Reserve takes count seats from the train. It fails with
// ErrInsufficientSeats when count is not positive or exceeds availability,
// and leaves the seat count untouched on any failure.
func (inv *Inventory) Reserve(routeKey, trainID string, count int) error {
	t := inv.find(routeKey, trainID)
	if t == nil {
		return ErrTrainNotFound
	}
	if count <= 0 || count > t.Seats {
		return ErrInsufficientSeats
	}
	t.Seats -= count
	return nil
}

// Release returns count seats to the train. The inventory does not
// deduplicate repeated releases; the orchestrator guarantees each
// reservation is released at most once.
func (inv *Inventory) Release(routeKey, trainID string, count int) error {
	t := inv.find(routeKey, trainID)
	if t == nil {
		return ErrTrainNotFound
	}
	t.Seats += count
	return nil
}

// find returns a pointer into the schedule slice, or nil when the pair is
// unknown
func (inv *Inventory) find(routeKey, trainID string) *models.Train {
	trains := inv.store.Trains[routeKey]
	for i := range trains {
		if trains[i].ID == trainID {
			return &trains[i]
		}
	}
	return nil
}
