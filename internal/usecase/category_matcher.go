package usecase

// Refinement categories a request can be routed to
const (
	CategoryFlights    = "flights"
	CategoryHotels     = "hotels"
	CategoryActivities = "activities"
)

// CategoryMatcher decides whether a refinement request belongs to its category
type CategoryMatcher interface {
	// Category is the name returned when the matcher accepts a message
	Category() string

	// CanHandle determines if this matcher accepts the given message
	CanHandle(message string) bool
}

// CategoryRouter routes refinement requests to the first accepting matcher
type CategoryRouter interface {
	Register(matcher CategoryMatcher)
	Route(message string) string
}
