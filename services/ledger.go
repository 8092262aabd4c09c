package services

import (
	"sort"

	"train-booking-cli/models"
	"train-booking-cli/storage"
)

// Ledger holds the collection of booking records. All reads hand out value
// copies — a Booking contains no reference types, so callers can never reach
// back into ledger state except through UpdateCounts and Remove.
type Ledger struct {
	store *storage.Store
}

// NewLedger returns a Ledger over the given store
func NewLedger(store *storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Append adds a booking to the ledger. It rejects records whose ticket total
// disagrees with the category counts.
func (l *Ledger) Append(b models.Booking) error {
	if b.TicketTotal != b.Pricing.Counts.Total() {
		return ErrCountMismatch
	}
	l.store.Bookings = append(l.store.Bookings, b)
	return nil
}

// FindByUser returns the user's bookings sorted by travel date, then booking
// time. Travel dates are YYYY-MM-DD strings, so the lexicographic order is
// chronological.
func (l *Ledger) FindByUser(username string) []models.Booking {
	out := make([]models.Booking, 0)
	for _, b := range l.store.Bookings {
		if b.Username == username {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TravelDate != out[j].TravelDate {
			return out[i].TravelDate < out[j].TravelDate
		}
		return out[i].BookedAt.Before(out[j].BookedAt)
	})
	return out
}

// GetForUser returns the booking with the given ID if it belongs to the
// user. A booking owned by someone else is reported as not found.
func (l *Ledger) GetForUser(bookingID, username string) (models.Booking, error) {
	i := l.index(bookingID)
	if i < 0 || l.store.Bookings[i].Username != username {
		return models.Booking{}, ErrBookingNotFound
	}
	return l.store.Bookings[i], nil
}

// UpdateCounts replaces a booking's category counts and total price after a
// partial cancellation. TicketTotal is re-derived from the counts so the
// two can never drift apart.
func (l *Ledger) UpdateCounts(bookingID string, counts models.TicketCounts, newTotalPrice float64) error {
	i := l.index(bookingID)
	if i < 0 {
		return ErrBookingNotFound
	}
	b := &l.store.Bookings[i]
	b.Pricing.Counts = counts
	b.TicketTotal = counts.Total()
	b.TotalPrice = newTotalPrice
	return nil
}

// Remove deletes a booking permanently
func (l *Ledger) Remove(bookingID string) error {
	i := l.index(bookingID)
	if i < 0 {
		return ErrBookingNotFound
	}
	l.store.Bookings = append(l.store.Bookings[:i], l.store.Bookings[i+1:]...)
	return nil
}

func (l *Ledger) index(bookingID string) int {
	for i := range l.store.Bookings {
		if l.store.Bookings[i].BookingID == bookingID {
			return i
		}
	}
	return -1
}
