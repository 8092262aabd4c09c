package models

// Stations is the fixed set of cities served by the schedule. Route keys are
// built from ordered pairs of these names.
var Stations = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai",
	"Kolkata", "Pune", "Ahmedabad", "Jaipur", "Lucknow",
	"Kanpur", "Nagpur", "Patna", "Bhopal", "Chandigarh",
}

// Route is an ordered station pair
type Route struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Key returns the route key used to index the train schedule. The format
// must stay stable for the lifetime of any booking that references it.
func (r Route) Key() string {
	return RouteKey(r.From, r.To)
}

// RouteKey builds the schedule key for an ordered station pair
func RouteKey(from, to string) string {
	return from + "::" + to
}
