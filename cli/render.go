package cli

import (
	"fmt"
	"strings"

	"train-booking-cli/models"
	"train-booking-cli/services"
)

// divider returns a separator line of the given width
func divider(width int) string {
	return strings.Repeat("=", width)
}

// printTrains renders the search results table
func printTrains(from, to, date string, trains []models.Train) {
	fmt.Printf("\n--- Results for %s to %s on %s (Base Price) ---\n", from, to, date)
	fmt.Println(divider(70))
	fmt.Println("  # | Train ID | Train Name           | Departs | Arrives   | Price (₹) | Seats")
	fmt.Println(strings.Repeat("-", 70))
	for i, t := range trains {
		fmt.Printf(" %2d | %-8s | %-20s | %-7s | %-9s | %9.2f | %d\n",
			i+1, t.ID, t.Name, t.Departure, t.Arrival, t.Price, t.Seats)
	}
	fmt.Println(divider(70))
}

// printConfirmation renders the pre-booking summary and price breakdown
func printConfirmation(train models.Train, from, to, date string, p models.PriceBreakdown) {
	fmt.Println("\n--- Confirm Your Booking ---")
	fmt.Printf("  Train:    %s (%s)\n", train.Name, train.ID)
	fmt.Printf("  Route:    %s to %s\n", from, to)
	fmt.Printf("  Date:     %s\n", date)
	fmt.Printf("  Time:     %s - %s\n", train.Departure, train.Arrival)

	fmt.Println("\n--- Price Breakdown ---")
	fmt.Printf("  Base Price (per ticket): ₹%.2f\n", p.BasePricePerTicket)
	fmt.Printf("  Adult Tickets (Normal):  %d\n", p.Counts.Adult)
	fmt.Printf("  Infant Tickets (0-5, Free): %d\n", p.Counts.Infant)
	fmt.Printf("  Child Tickets (5-12, 50%% Off): %d\n", p.Counts.Child)
	fmt.Printf("  Senior Tickets (30%% Off): %d\n", p.Counts.Senior)
	fmt.Printf("  Total Tickets:           %d\n", p.Counts.Total())
	fmt.Printf("  Discount (Category Fares): - ₹%.2f\n", p.CategorySavings)
	if p.SeasonSavings > 0 {
		fmt.Printf("  Discount (Off-Season):   - ₹%.2f (10%% General)\n", p.SeasonSavings)
	}
	fmt.Printf("  TOTAL SAVINGS:           ₹%.2f\n", p.TotalDiscount)
	fmt.Printf("  TOTAL PAYABLE:           ₹%.2f\n", p.FinalPrice)
}

// printBooking renders one booking in the "my bookings" list
func printBooking(n int, b models.Booking) {
	c := b.Pricing.Counts
	fmt.Println("\n" + divider(50))
	fmt.Printf("  Booking #%d | ID: %s\n", n, b.BookingID)
	fmt.Printf("  Booked On:   %s\n", b.BookedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Travel Date: %s\n", b.TravelDate)
	fmt.Printf("  Route:       %s -> %s\n", b.Route.From, b.Route.To)
	fmt.Printf("  Train:       %s (%s)\n", b.Train.Name, b.Train.ID)
	fmt.Printf("  Departure:   %s\n", b.Train.Departure)
	fmt.Printf("  Tickets:     %d (A:%d | I:%d | C:%d | S:%d)\n",
		b.TicketTotal, c.Adult, c.Infant, c.Child, c.Senior)
	fmt.Printf("  Total Price: ₹%.2f\n", b.TotalPrice)
	if b.Pricing.TotalDiscount > 0.01 {
		fmt.Printf("  SAVINGS:     ₹%.2f\n", b.Pricing.TotalDiscount)
	}
	fmt.Println(divider(50))
}

// printRefund renders the financial outcome of a cancellation
func printRefund(s *models.RefundSummary) {
	status := fmt.Sprintf("partially cancelled (%d seats removed)", s.SeatsReleased)
	if s.FullyCancelled {
		status = "fully cancelled"
	}
	fmt.Printf("\nBooking %s has been %s.\n", s.BookingID, status)
	fmt.Printf("Refund processed for %d seats.\n", s.SeatsReleased)
	fmt.Printf("Total Gross Refund: ₹%.2f\n", s.GrossRefund)
	fmt.Printf("Cancellation Fee (%.0f%%): ₹%.2f\n", services.CancellationFeeRate*100, s.CancellationFee)
	fmt.Printf("NET REFUND: ₹%.2f\n", s.NetRefund)
}
