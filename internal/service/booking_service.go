package service

import (
	"errors"
	"strings"
	"time"

	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
	"github.com/rajeev8964/thepersonalbuddy/internal/models"

	"gorm.io/gorm"
)

type BookingService struct {
	bookings   BookingStore
	profiles   ProfileStore
	dispatcher Dispatcher
	now        func() time.Time
}

func NewBookingService(bookings BookingStore, profiles ProfileStore, dispatcher Dispatcher) *BookingService {
	return &BookingService{
		bookings:   bookings,
		profiles:   profiles,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

type SubmitBookingInput struct {
	FriendID    string `json:"friend_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Activity    string `json:"activity"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Message     string `json:"message"`
}

func (in *SubmitBookingInput) validate(today time.Time) error {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)
	in.Activity = strings.TrimSpace(in.Activity)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	switch {
	case in.FriendID == "":
		return domain.Invalid("friend_id", "required")
	case in.ClientName == "":
		return domain.Invalid("client_name", "required")
	case in.Activity == "":
		return domain.Invalid("activity", "required")
	case in.Time == "":
		return domain.Invalid("time", "required")
	}
	if !domain.ValidEmail(in.ClientEmail) {
		return domain.Invalid("client_email", "invalid email address")
	}
	if domain.PhoneDigits(in.ClientPhone) < domain.MinPhoneDigits {
		return domain.Invalid("client_phone", "must contain at least 10 digits")
	}
	if in.Duration < domain.MinDurationHours || in.Duration > domain.MaxDurationHours {
		return domain.Invalid("duration", "must be between 1 and 6 hours")
	}
	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return domain.Invalid("date", "must be an ISO calendar date")
	}
	// Reject past dates server-side; a client-side check alone would let a
	// buggy client create stale bookings.
	if day.Before(today.UTC().Truncate(24 * time.Hour)) {
		return domain.Invalid("date", "must not be in the past")
	}
	return nil
}

// Submit creates a pending booking for an approved profile and dispatches
// the booking.created notification. The stored row is the success signal;
// notification delivery is best-effort.
func (s *BookingService) Submit(in SubmitBookingInput) (*models.Booking, error) {
	if err := in.validate(s.now()); err != nil {
		return nil, err
	}
	friend, err := s.profiles.GetByID(in.FriendID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	// Unapproved profiles are not publicly listed; booking one is treated
	// the same as booking a profile that does not exist.
	if !friend.IsApproved {
		return nil, domain.ErrProfileNotFound
	}
	b := &models.Booking{
		FriendID:    friend.ID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		Activity:    in.Activity,
		BookingDate: in.Date,
		BookingTime: in.Time,
		Duration:    in.Duration,
		Message:     in.Message,
		Status:      domain.BookingPending,
	}
	if err := s.bookings.Create(b); err != nil {
		return nil, err
	}
	s.dispatcher.BookingCreated(b, friend.FullName, friend.Email)
	return b, nil
}

// Transition moves a booking to newStatus on behalf of actor. A companion
// may only confirm or decline pending bookings of their own profile; an
// admin may use the full table plus cancel-from-anywhere. Repeating a
// transition (confirmed -> confirmed) is an InvalidTransitionError, so a
// duplicate call changes nothing and sends no second notification.
func (s *BookingService) Transition(actor Actor, bookingID, newStatus string) (*models.Booking, error) {
	if !domain.ValidBookingStatus(newStatus) || newStatus == domain.BookingPending {
		return nil, domain.Invalid("status", "must be confirmed, cancelled or completed")
	}
	b, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var friendName string
	if actor.Admin {
		if !domain.CanTransitionAsAdmin(b.Status, newStatus) {
			return nil, &domain.InvalidTransitionError{From: b.Status, To: newStatus}
		}
	} else {
		// Ownership first: a companion acting on someone else's booking is
		// an authorization failure regardless of the requested pair.
		p, err := s.profiles.GetByUserID(actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrForbidden
			}
			return nil, err
		}
		if p.ID != b.FriendID {
			return nil, domain.ErrForbidden
		}
		if newStatus != domain.BookingConfirmed && newStatus != domain.BookingCancelled {
			return nil, domain.ErrForbidden
		}
		if !domain.CanTransition(b.Status, newStatus) {
			return nil, &domain.InvalidTransitionError{From: b.Status, To: newStatus}
		}
		friendName = p.FullName
	}
	if err := s.bookings.UpdateStatus(b.ID, newStatus); err != nil {
		return nil, err
	}
	b.Status = newStatus
	if !actor.Admin {
		s.dispatcher.BookingStatusChanged(b, friendName)
	}
	return b, nil
}

// Delete hard-deletes a booking. Admin only; irreversible.
func (s *BookingService) Delete(actor Actor, bookingID string) error {
	if !actor.Admin {
		return domain.ErrForbidden
	}
	if _, err := s.bookings.GetByID(bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.bookings.Delete(bookingID)
}

// ListAll is the admin partition.
func (s *BookingService) ListAll(actor Actor) ([]models.Booking, error) {
	if !actor.Admin {
		return nil, domain.ErrForbidden
	}
	return s.bookings.ListAll()
}

// ListForOwner returns bookings of the companion profile owned by userID.
func (s *BookingService) ListForOwner(userID string) ([]models.Booking, error) {
	p, err := s.profiles.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return s.bookings.ListByFriendID(p.ID)
}

// ListForClient returns bookings whose client_email matches the caller's
// verified email. The joined profile is reduced to its client-visible
// fields; the companion's contact email stays private.
func (s *BookingService) ListForClient(email string) ([]models.ClientBooking, error) {
	list, err := s.bookings.ListByClientEmail(email)
	if err != nil {
		return nil, err
	}
	out := make([]models.ClientBooking, 0, len(list))
	for i := range list {
		out = append(out, list[i].ClientView())
	}
	return out, nil
}
