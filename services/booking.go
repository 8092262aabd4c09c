package services

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"train-booking-cli/models"
	"train-booking-cli/storage"
)

// DateLayout is the wire format for travel dates
const DateLayout = "2006-01-02"

// CancellationFeeRate is the flat fee withheld from every gross refund
const CancellationFeeRate = 0.10

// bookingIDPrefix starts every generated booking ID
const bookingIDPrefix = "BCC"

// BookingService coordinates the fare calculator, seat inventory and booking
// ledger to run the create and cancel/modify lifecycles. Inventory and
// ledger mutations are not wrapped in one transaction: the ledger side is
// committed first and wins when persistence of the other half fails.
type BookingService struct {
	store     *storage.Store
	inventory *Inventory
	ledger    *Ledger
}

// NewBookingService wires the orchestrator to its collaborators
func NewBookingService(store *storage.Store, inventory *Inventory, ledger *Ledger) *BookingService {
	return &BookingService{store: store, inventory: inventory, ledger: ledger}
}

// SearchTrains returns a copy of the schedule for a route, ordered by
// departure time. The copies keep callers from aliasing live seat counts.
func (s *BookingService) SearchTrains(from, to string) []models.Train {
	trains := s.store.Trains[models.RouteKey(from, to)]
	out := make([]models.Train, len(trains))
	copy(out, trains)
	sort.Slice(out, func(i, j int) bool { return out[i].Departure < out[j].Departure })
	return out
}

// ValidateTravelDate parses a YYYY-MM-DD date and rejects dates before today
func ValidateTravelDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	today, _ := time.Parse(DateLayout, time.Now().Format(DateLayout))
	if d.Before(today) {
		return time.Time{}, fmt.Errorf("date cannot be in the past")
	}
	return d, nil
}

// Create prices the request, reserves seats and records the booking. The
// availability check happens before any mutation, so a rejected request
// leaves inventory untouched. Returned warnings are non-fatal persistence
// problems: the in-memory booking stands either way.
func (s *BookingService) Create(req models.BookingRequest) (*models.Booking, []string, error) {
	if req.Counts.AnyNegative() {
		return nil, nil, fmt.Errorf("ticket counts must not be negative")
	}
	total := req.Counts.Total()
	if total == 0 {
		return nil, nil, ErrEmptyBooking
	}

	travelDate, err := time.Parse(DateLayout, req.TravelDate)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid travel date: %w", err)
	}

	routeKey := models.RouteKey(req.From, req.To)
	train, err := s.inventory.Snapshot(routeKey, req.TrainID)
	if err != nil {
		return nil, nil, err
	}
	if total > train.Seats {
		return nil, nil, ErrInsufficientSeats
	}

	pricing := CalculatePrice(train.Price, travelDate, req.Counts)

	// Availability was checked above; a failure here is a programming error.
	if err := s.inventory.Reserve(routeKey, req.TrainID, total); err != nil {
		return nil, nil, err
	}

	booking := models.Booking{
		BookingID:   newBookingID(),
		Username:    req.Username,
		BookedAt:    time.Now(),
		Route:       models.Route{From: req.From, To: req.To},
		TravelDate:  req.TravelDate,
		Train:       train,
		TicketTotal: total,
		Pricing:     pricing,
		TotalPrice:  pricing.FinalPrice,
	}
	if err := s.ledger.Append(booking); err != nil {
		// Undo the reservation so a rejected record does not leak seats.
		_ = s.inventory.Release(routeKey, req.TrainID, total)
		return nil, nil, err
	}

	var warnings []string
	if err := s.store.SaveBookings(); err != nil {
		log.Printf("Warning: could not save bookings: %v", err)
		warnings = append(warnings, fmt.Sprintf("could not save bookings: %v", err))
	}
	if err := s.store.SaveTrains(); err != nil {
		log.Printf("Warning: could not update seat count: %v", err)
		warnings = append(warnings, fmt.Sprintf("could not update seat count: %v", err))
	}

	return &booking, warnings, nil
}

// Cancel removes the given per-category ticket counts from a booking. A full
// cancellation deletes the record; a partial one updates counts, ticket
// total and price in one step. Seats go back to inventory afterwards — if
// the train has meanwhile vanished from the schedule the ledger-side
// cancellation still commits and a warning is returned.
func (s *BookingService) Cancel(username, bookingID string, cancel models.TicketCounts) (*models.RefundSummary, []string, error) {
	booking, err := s.ledger.GetForUser(bookingID, username)
	if err != nil {
		return nil, nil, err
	}

	remaining := booking.Pricing.Counts
	if cancel.AnyNegative() ||
		cancel.Adult > remaining.Adult || cancel.Infant > remaining.Infant ||
		cancel.Child > remaining.Child || cancel.Senior > remaining.Senior {
		return nil, nil, ErrCancelExceedsCount
	}
	total := cancel.Total()
	if total == 0 {
		return nil, nil, ErrNothingSelected
	}

	gross := GrossRefund(booking.Pricing.BasePricePerTicket, cancel)
	fee := gross * CancellationFeeRate
	net := gross - fee

	full := total == booking.TicketTotal
	if full {
		if err := s.ledger.Remove(bookingID); err != nil {
			return nil, nil, err
		}
	} else {
		if err := s.ledger.UpdateCounts(bookingID, remaining.Sub(cancel), booking.TotalPrice-net); err != nil {
			return nil, nil, err
		}
	}

	var warnings []string
	if err := s.inventory.Release(booking.Route.Key(), booking.Train.ID, total); err != nil {
		log.Printf("Warning: could not restore %d seats for train %s: %v", total, booking.Train.ID, err)
		warnings = append(warnings, fmt.Sprintf("could not restore seats for train %s: %v", booking.Train.ID, err))
	}

	if err := s.store.SaveBookings(); err != nil {
		log.Printf("Warning: could not save bookings: %v", err)
		warnings = append(warnings, fmt.Sprintf("could not save bookings: %v", err))
	}
	if err := s.store.SaveTrains(); err != nil {
		log.Printf("Warning: could not update seat count: %v", err)
		warnings = append(warnings, fmt.Sprintf("could not update seat count: %v", err))
	}

	return &models.RefundSummary{
		BookingID:       bookingID,
		Cancelled:       cancel,
		SeatsReleased:   total,
		GrossRefund:     gross,
		CancellationFee: fee,
		NetRefund:       net,
		FullyCancelled:  full,
	}, warnings, nil
}

// FindBookings lists the user's bookings for display
func (s *BookingService) FindBookings(username string) []models.Booking {
	return s.ledger.FindByUser(username)
}

// newBookingID builds a time-and-random booking ID. Uniqueness is
// probabilistic; collisions are possible in theory and not retried.
func newBookingID() string {
	return fmt.Sprintf("%s%d%03d", bookingIDPrefix, time.Now().Unix(), 100+rand.Intn(900))
}
