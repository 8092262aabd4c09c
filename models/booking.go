package models

import "time"

// Booking represents a confirmed reservation. Train is a value copy of the
// schedule entry taken at booking time — later inventory changes never alter
// it. TicketTotal must equal Pricing.Counts.Total() after every mutation.
type Booking struct {
	BookingID   string         `json:"booking_id"`
	Username    string         `json:"username"`
	BookedAt    time.Time      `json:"booked_at"`
	Route       Route          `json:"route"`
	TravelDate  string         `json:"travel_date"` // YYYY-MM-DD
	Train       Train          `json:"train_details"`
	TicketTotal int            `json:"ticket_total"`
	Pricing     PriceBreakdown `json:"pricing"`
	TotalPrice  float64        `json:"total_price"`
}

// BookingRequest carries the already-validated inputs for creating a booking
type BookingRequest struct {
	Username   string       `json:"username"`
	From       string       `json:"from"`
	To         string       `json:"to"`
	TravelDate string       `json:"travel_date"`
	TrainID    string       `json:"train_id"`
	Counts     TicketCounts `json:"counts"`
}

// RefundSummary reports the outcome of a cancellation for display
type RefundSummary struct {
	BookingID       string       `json:"booking_id"`
	Cancelled       TicketCounts `json:"cancelled"`
	SeatsReleased   int          `json:"seats_released"`
	GrossRefund     float64      `json:"gross_refund"`
	CancellationFee float64      `json:"cancellation_fee"`
	NetRefund       float64      `json:"net_refund"`
	FullyCancelled  bool         `json:"fully_cancelled"`
}
