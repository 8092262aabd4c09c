package services

import (
	"time"

	"train-booking-cli/models"
)

// Fare category discount rates, as fractions of the base price.
const (
	InfantDiscountRate = 1.00 // infants travel free
	ChildDiscountRate  = 0.50
	SeniorDiscountRate = 0.30

	// SeasonDiscountRate applies to the post-category subtotal for travel in
	// January or February.
	SeasonDiscountRate = 0.10
)

// CalculatePrice prices a ticket request. Category discounts come off the
// base price first; the off-peak season discount then comes off the already
// reduced subtotal. Inputs are assumed validated (non-negative counts, a
// parsed travel date); the function is pure and deterministic.
func CalculatePrice(basePrice float64, travelDate time.Time, counts models.TicketCounts) models.PriceBreakdown {
	adultTotal := basePrice * float64(counts.Adult)

	infantTotal := basePrice * float64(counts.Infant) * (1 - InfantDiscountRate)
	infantSavings := basePrice * float64(counts.Infant) * InfantDiscountRate

	childTotal := basePrice * float64(counts.Child) * (1 - ChildDiscountRate)
	childSavings := basePrice * float64(counts.Child) * ChildDiscountRate

	seniorTotal := basePrice * float64(counts.Senior) * (1 - SeniorDiscountRate)
	seniorSavings := basePrice * float64(counts.Senior) * SeniorDiscountRate

	subtotal := adultTotal + infantTotal + childTotal + seniorTotal
	categorySavings := infantSavings + childSavings + seniorSavings

	seasonSavings := 0.0
	if m := travelDate.Month(); m == time.January || m == time.February {
		seasonSavings = subtotal * SeasonDiscountRate
	}

	return models.PriceBreakdown{
		BasePricePerTicket: basePrice,
		Counts:             counts,
		Subtotal:           subtotal,
		CategorySavings:    categorySavings,
		SeasonSavings:      seasonSavings,
		TotalDiscount:      categorySavings + seasonSavings,
		FinalPrice:         subtotal - seasonSavings,
	}
}

// GrossRefund sums the per-ticket prices actually paid for the cancelled
// categories. Only the category discount enters this math: a season discount
// applied at booking time is not refunded.
func GrossRefund(basePrice float64, cancelled models.TicketCounts) float64 {
	refund := basePrice * float64(cancelled.Adult)
	refund += basePrice * (1 - InfantDiscountRate) * float64(cancelled.Infant)
	refund += basePrice * (1 - ChildDiscountRate) * float64(cancelled.Child)
	refund += basePrice * (1 - SeniorDiscountRate) * float64(cancelled.Senior)
	return refund
}
