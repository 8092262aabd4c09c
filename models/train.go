package models

// Train represents one scheduled train on a route. Seats is the live
// availability counter and is only ever changed through the seat inventory.
type Train struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Departure string  `json:"departure"`
	Arrival   string  `json:"arrival"` // may carry a "(D+n)" day-offset marker
	Price     float64 `json:"price"`
	Seats     int     `json:"seats"`
}
