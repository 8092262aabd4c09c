package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"train-booking-cli/models"
	"train-booking-cli/storage"
)

func newTestService(t *testing.T) (*BookingService, *storage.Store) {
	t.Helper()
	store := newTestStore(t)
	return NewBookingService(store, NewInventory(store), NewLedger(store)), store
}

// offSeasonDate returns a date in next year's June: always in the future
// and never inside the January/February discount season.
func offSeasonDate() string {
	return time.Date(time.Now().Year()+1, time.June, 15, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

func createBooking(t *testing.T, s *BookingService, counts models.TicketCounts) *models.Booking {
	t.Helper()
	booking, warnings, err := s.Create(models.BookingRequest{
		Username:   "asha",
		From:       "Mumbai",
		To:         "Delhi",
		TravelDate: offSeasonDate(),
		TrainID:    testTrainID,
		Counts:     counts,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	return booking
}

func TestCreateBooking(t *testing.T) {
	s, store := newTestService(t)
	booking := createBooking(t, s, models.TicketCounts{Adult: 2, Child: 1})

	if !strings.HasPrefix(booking.BookingID, "BCC") {
		t.Errorf("booking ID = %q, want BCC prefix", booking.BookingID)
	}
	if booking.TicketTotal != 3 {
		t.Errorf("ticket total = %d, want 3", booking.TicketTotal)
	}
	if !almostEqual(booking.TotalPrice, 2500) {
		t.Errorf("total price = %v, want 2500", booking.TotalPrice)
	}
	if got := store.Trains[testRoute][0].Seats; got != 47 {
		t.Errorf("seats after create = %d, want 47", got)
	}
	// The embedded train is a snapshot, not the live schedule entry.
	if booking.Train.Seats != 50 {
		t.Errorf("snapshot seats = %d, want pre-reservation 50", booking.Train.Seats)
	}
	if len(s.FindBookings("asha")) != 1 {
		t.Errorf("booking not recorded in ledger")
	}
}

func TestCreateEmptyBookingRejected(t *testing.T) {
	s, store := newTestService(t)
	_, _, err := s.Create(models.BookingRequest{
		Username: "asha", From: "Mumbai", To: "Delhi",
		TravelDate: offSeasonDate(), TrainID: testTrainID,
	})
	if !errors.Is(err, ErrEmptyBooking) {
		t.Fatalf("err = %v, want ErrEmptyBooking", err)
	}
	if got := store.Trains[testRoute][0].Seats; got != 50 {
		t.Errorf("rejected booking changed seats to %d", got)
	}
}

func TestCreateInsufficientSeatsLeavesInventory(t *testing.T) {
	s, store := newTestService(t)
	_, _, err := s.Create(models.BookingRequest{
		Username: "asha", From: "Mumbai", To: "Delhi",
		TravelDate: offSeasonDate(), TrainID: testTrainID,
		Counts: models.TicketCounts{Adult: 51},
	})
	if !errors.Is(err, ErrInsufficientSeats) {
		t.Fatalf("err = %v, want ErrInsufficientSeats", err)
	}
	if got := store.Trains[testRoute][0].Seats; got != 50 {
		t.Errorf("rejected booking changed seats to %d", got)
	}
	if len(s.FindBookings("asha")) != 0 {
		t.Errorf("rejected booking reached the ledger")
	}
}

func TestCreateUnknownTrain(t *testing.T) {
	s, _ := newTestService(t)
	_, _, err := s.Create(models.BookingRequest{
		Username: "asha", From: "Mumbai", To: "Delhi",
		TravelDate: offSeasonDate(), TrainID: "NOPE999",
		Counts: models.TicketCounts{Adult: 1},
	})
	if !errors.Is(err, ErrTrainNotFound) {
		t.Fatalf("err = %v, want ErrTrainNotFound", err)
	}
}

func TestCancelPartial(t *testing.T) {
	s, store := newTestService(t)
	booking := createBooking(t, s, models.TicketCounts{Adult: 2, Child: 1})

	summary, warnings, err := s.Cancel("asha", booking.BookingID, models.TicketCounts{Adult: 1})
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if !almostEqual(summary.GrossRefund, 1000) || !almostEqual(summary.CancellationFee, 100) || !almostEqual(summary.NetRefund, 900) {
		t.Errorf("refund = %+v, want gross 1000, fee 100, net 900", summary)
	}
	if summary.FullyCancelled {
		t.Errorf("partial cancel reported as full")
	}

	remaining := s.FindBookings("asha")
	if len(remaining) != 1 {
		t.Fatalf("booking missing after partial cancel")
	}
	b := remaining[0]
	if b.TicketTotal != 2 || b.Pricing.Counts != (models.TicketCounts{Adult: 1, Child: 1}) {
		t.Errorf("counts after partial cancel = %+v (total %d)", b.Pricing.Counts, b.TicketTotal)
	}
	if b.TicketTotal != b.Pricing.Counts.Total() {
		t.Errorf("invariant broken after partial cancel")
	}
	if !almostEqual(b.TotalPrice, 1600) {
		t.Errorf("total price after partial cancel = %v, want 1600", b.TotalPrice)
	}
	if got := store.Trains[testRoute][0].Seats; got != 48 {
		t.Errorf("seats after partial cancel = %d, want 48", got)
	}
}

func TestCancelFullRemovesBooking(t *testing.T) {
	s, store := newTestService(t)
	booking := createBooking(t, s, models.TicketCounts{Adult: 1, Senior: 1})

	summary, _, err := s.Cancel("asha", booking.BookingID, models.TicketCounts{Adult: 1, Senior: 1})
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if !summary.FullyCancelled {
		t.Errorf("full cancel not reported as full")
	}
	if !almostEqual(summary.GrossRefund, 1700) || !almostEqual(summary.NetRefund, 1530) {
		t.Errorf("refund = %+v, want gross 1700, net 1530", summary)
	}
	if got := s.FindBookings("asha"); len(got) != 0 {
		t.Errorf("fully cancelled booking still listed: %+v", got)
	}
	if got := store.Trains[testRoute][0].Seats; got != 50 {
		t.Errorf("seats after full cancel = %d, want 50", got)
	}
}

func TestCancelSeasonDiscountNotRefunded(t *testing.T) {
	s, _ := newTestService(t)
	// Book for next January so the season discount applies at booking time.
	jan := time.Date(time.Now().Year()+1, time.January, 10, 0, 0, 0, 0, time.UTC).Format(DateLayout)
	booking, _, err := s.Create(models.BookingRequest{
		Username: "asha", From: "Mumbai", To: "Delhi",
		TravelDate: jan, TrainID: testTrainID,
		Counts: models.TicketCounts{Adult: 1},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !almostEqual(booking.TotalPrice, 900) {
		t.Fatalf("january booking price = %v, want 900", booking.TotalPrice)
	}

	// The refund ignores the season discount: gross is the full category price.
	summary, _, err := s.Cancel("asha", booking.BookingID, models.TicketCounts{Adult: 1})
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if !almostEqual(summary.GrossRefund, 1000) || !almostEqual(summary.NetRefund, 900) {
		t.Errorf("refund = %+v, want gross 1000, net 900", summary)
	}
}

func TestCancelValidation(t *testing.T) {
	s, _ := newTestService(t)
	booking := createBooking(t, s, models.TicketCounts{Adult: 2})

	if _, _, err := s.Cancel("asha", booking.BookingID, models.TicketCounts{}); !errors.Is(err, ErrNothingSelected) {
		t.Errorf("empty cancel = %v, want ErrNothingSelected", err)
	}
	if _, _, err := s.Cancel("asha", booking.BookingID, models.TicketCounts{Adult: 3}); !errors.Is(err, ErrCancelExceedsCount) {
		t.Errorf("over-cancel = %v, want ErrCancelExceedsCount", err)
	}
	if _, _, err := s.Cancel("asha", booking.BookingID, models.TicketCounts{Child: 1}); !errors.Is(err, ErrCancelExceedsCount) {
		t.Errorf("cancel of empty category = %v, want ErrCancelExceedsCount", err)
	}
	if _, _, err := s.Cancel("vikram", booking.BookingID, models.TicketCounts{Adult: 1}); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("other user's cancel = %v, want ErrBookingNotFound", err)
	}

	// Nothing above may have touched the booking.
	b := s.FindBookings("asha")[0]
	if b.TicketTotal != 2 {
		t.Errorf("failed cancels changed the booking: %+v", b)
	}
}

func TestCancelSurvivesMissingTrain(t *testing.T) {
	s, store := newTestService(t)
	booking := createBooking(t, s, models.TicketCounts{Adult: 1})

	// Simulate a regenerated schedule that lost the booked train.
	delete(store.Trains, testRoute)

	summary, warnings, err := s.Cancel("asha", booking.BookingID, models.TicketCounts{Adult: 1})
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if len(warnings) == 0 {
		t.Errorf("expected a seat-restoration warning")
	}
	if !summary.FullyCancelled {
		t.Errorf("ledger-side cancellation did not commit")
	}
	if got := s.FindBookings("asha"); len(got) != 0 {
		t.Errorf("booking still listed after cancel: %+v", got)
	}
}

func TestValidateTravelDate(t *testing.T) {
	if _, err := ValidateTravelDate("not-a-date"); err == nil {
		t.Errorf("malformed date accepted")
	}
	if _, err := ValidateTravelDate("2020-01-01"); err == nil {
		t.Errorf("past date accepted")
	}
	today := time.Now().Format(DateLayout)
	if _, err := ValidateTravelDate(today); err != nil {
		t.Errorf("today rejected: %v", err)
	}
	if _, err := ValidateTravelDate(offSeasonDate()); err != nil {
		t.Errorf("future date rejected: %v", err)
	}
}

func TestSearchTrainsSortedCopy(t *testing.T) {
	s, store := newTestService(t)
	trains := s.SearchTrains("Mumbai", "Delhi")
	if len(trains) != 2 {
		t.Fatalf("len = %d, want 2", len(trains))
	}
	if trains[0].Departure > trains[1].Departure {
		t.Errorf("results not ordered by departure: %v, %v", trains[0].Departure, trains[1].Departure)
	}
	trains[0].Seats = 0
	if store.Trains[testRoute][0].Seats == 0 {
		t.Errorf("search results alias live inventory")
	}
	if got := s.SearchTrains("Delhi", "Patna"); len(got) != 0 {
		t.Errorf("unknown route returned %d trains", len(got))
	}
}
