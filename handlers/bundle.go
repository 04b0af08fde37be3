package handlers

// HandlerBundle aggregates the HTTP handlers so route registration can
// receive a single dependency.
type HandlerBundle struct {
	Users        *UserHandler
	Properties   *PropertyHandler
	Availability *AvailabilityHandler
	Bookings     *BookingHandler
}
