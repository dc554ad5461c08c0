package domain

// User roles. Admin privilege is never read from a token claim; it is
// re-derived from user_roles rows on every privileged call.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Profile visibility status (distinct from admin approval).
const (
	ProfileAvailable = "available"
	ProfileBooked    = "booked"
)

// Booking lifecycle. pending is initial; completed and cancelled are terminal.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

const (
	MinDurationHours = 1
	MaxDurationHours = 6
	MinAge           = 18
	MinPhoneDigits   = 10
)

// Notification event types.
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.statusChanged"
	EventContactReceived      = "contact.received"
)

// bookingTransitions is the transition table available to any authorized
// actor. Same-status repeats are never legal.
var bookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted},
}

// CanTransition reports whether from -> to is a legal booking transition for
// a non-admin actor.
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionAsAdmin extends the base table: an admin may additionally
// cancel a booking from any state except cancelled itself.
func CanTransitionAsAdmin(from, to string) bool {
	if CanTransition(from, to) {
		return true
	}
	return to == BookingCancelled && from != BookingCancelled
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}
