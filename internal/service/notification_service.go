package service

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
	"github.com/rajeev8964/thepersonalbuddy/internal/logger"
	"github.com/rajeev8964/thepersonalbuddy/internal/models"
	"github.com/rajeev8964/thepersonalbuddy/pkg/mailer"
)

// NotificationService renders and delivers templated email. Delivery is
// fire-and-forget relative to the triggering workflow: each message goes
// out on its own goroutine and a failure is logged with recipient class and
// event type, never raised back to the caller. The booking/profile state
// change, not the email, is the source of truth.
type NotificationService struct {
	mail       mailer.Mailer
	from       string
	adminEmail string
	log        *slog.Logger

	wg          sync.WaitGroup
	sendTimeout time.Duration
}

func NewNotificationService(mail mailer.Mailer, from, adminEmail string, log *slog.Logger) *NotificationService {
	return &NotificationService{
		mail:        mail,
		from:        from,
		adminEmail:  adminEmail,
		log:         log,
		sendTimeout: 30 * time.Second,
	}
}

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// sanitize strips markup and caps length before any value is interpolated
// into outbound mail. Stripping runs first so a tag straddling the cap
// cannot survive as a dangling fragment; the cap counts runes.
func sanitize(s string, maxLen int) string {
	s = markupPattern.ReplaceAllString(s, "")
	if r := []rune(s); len(r) > maxLen {
		s = string(r[:maxLen])
	}
	return s
}

func (s *NotificationService) BookingCreated(b *models.Booking, friendName, friendEmail string) {
	name := sanitize(b.ClientName, 100)
	email := sanitize(b.ClientEmail, 254)
	activity := sanitize(b.Activity, 100)
	date := sanitize(b.BookingDate, 50)
	at := sanitize(b.BookingTime, 50)
	message := sanitize(b.Message, 1000)
	buddy := sanitize(friendName, 100)

	s.deliver(domain.EventBookingCreated, "admin", mailer.Message{
		From:    s.from,
		To:      []string{s.adminEmail},
		Subject: "New booking request from " + name + " for " + buddy,
		HTML:    bookingAdminHTML(name, email, buddy, activity, date, at, b.Duration, message),
	})
	s.deliver(domain.EventBookingCreated, "client", mailer.Message{
		From:    s.from,
		To:      []string{email},
		Subject: "Your booking request was received",
		HTML:    bookingClientHTML(name, buddy, activity, date, at, b.Duration),
	})
	if domain.ValidEmail(friendEmail) {
		s.deliver(domain.EventBookingCreated, "companion", mailer.Message{
			From:    s.from,
			To:      []string{friendEmail},
			Subject: "You have a new session request",
			HTML:    bookingFriendHTML(buddy, name, email, activity, date, at, b.Duration, message),
		})
	}
}

func (s *NotificationService) BookingStatusChanged(b *models.Booking, friendName string) {
	name := sanitize(b.ClientName, 100)
	email := sanitize(b.ClientEmail, 254)
	buddy := sanitize(friendName, 100)
	activity := sanitize(b.Activity, 100)
	date := sanitize(b.BookingDate, 50)
	at := sanitize(b.BookingTime, 50)

	subject := "Booking update: session with " + buddy
	if b.Status == domain.BookingConfirmed {
		subject = "Your booking with " + buddy + " is confirmed"
	}
	s.deliver(domain.EventBookingStatusChanged, "client", mailer.Message{
		From:    s.from,
		To:      []string{email},
		Subject: subject,
		HTML:    statusChangeHTML(name, buddy, activity, date, at, b.Status),
	})
}

func (s *NotificationService) ContactReceived(name, email, message string) {
	n := sanitize(name, 100)
	e := sanitize(email, 254)
	m := sanitize(message, 1000)
	s.deliver(domain.EventContactReceived, "admin", mailer.Message{
		From:    s.from,
		To:      []string{s.adminEmail},
		Subject: "New contact message from " + n,
		HTML:    contactHTML(n, e, m),
	})
}

func (s *NotificationService) deliver(event, recipientClass string, msg mailer.Message) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.sendTimeout)
		defer cancel()
		if err := s.mail.Send(ctx, msg); err != nil {
			s.log.Error("email delivery failed",
				"event", event,
				"recipient", recipientClass,
				logger.Err(err),
			)
		}
	}()
}

// Flush waits for in-flight deliveries; used on shutdown and in tests.
func (s *NotificationService) Flush() {
	s.wg.Wait()
}
