package models

// TicketCounts holds the number of tickets per fare category
type TicketCounts struct {
	Adult  int `json:"adult"`
	Infant int `json:"infant"`
	Child  int `json:"child"`
	Senior int `json:"senior"`
}

// Total returns the total number of tickets across all categories
func (c TicketCounts) Total() int {
	return c.Adult + c.Infant + c.Child + c.Senior
}

// AnyNegative reports whether any category count is below zero
func (c TicketCounts) AnyNegative() bool {
	return c.Adult < 0 || c.Infant < 0 || c.Child < 0 || c.Senior < 0
}

// Sub returns the counts remaining after removing other from c
func (c TicketCounts) Sub(other TicketCounts) TicketCounts {
	return TicketCounts{
		Adult:  c.Adult - other.Adult,
		Infant: c.Infant - other.Infant,
		Child:  c.Child - other.Child,
		Senior: c.Senior - other.Senior,
	}
}

// PriceBreakdown is the detailed pricing of a booking. It is computed once at
// booking time and stored verbatim on the booking so that cancellation can
// recompute per-category paid prices without re-deriving season eligibility.
type PriceBreakdown struct {
	BasePricePerTicket float64      `json:"base_price_per_ticket"`
	Counts             TicketCounts `json:"counts"`
	Subtotal           float64      `json:"subtotal"`
	CategorySavings    float64      `json:"category_savings"`
	SeasonSavings      float64      `json:"season_savings"`
	TotalDiscount      float64      `json:"total_discount"`
	FinalPrice         float64      `json:"final_price"`
}
