package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
	"github.com/rajeev8964/thepersonalbuddy/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) messages() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mailer.Message, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *fakeMailer) recipients() []string {
	var out []string
	for _, msg := range m.messages() {
		out = append(out, msg.To...)
	}
	return out
}

func newTestNotifier(m mailer.Mailer) *NotificationService {
	log := slog.New(slog.DiscardHandler)
	return NewNotificationService(m, "Test <no-reply@example.com>", "admin@example.com", log)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"plain text", "hello there", 100, "hello there"},
		{"strips tags", "<script>alert(1)</script>hi", 100, "alert(1)hi"},
		{"strips partial markup", "a <b>bold</b> claim", 100, "a bold claim"},
		{"caps length", strings.Repeat("x", 20), 5, "xxxxx"},
		{"strips before capping", "abc<script>alert(1)</script>", 5, "abcal"},
		{"caps whole runes", "héllo wörld", 6, "héllo "},
		{"empty", "", 10, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitize(tc.in, tc.max))
		})
	}
}

func TestBookingCreatedDeliveries(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifier(m)

	b := pendingBooking("b1", "friend-1")
	svc.BookingCreated(b, "Asha Rao", "asha@example.com")
	svc.Flush()

	got := m.recipients()
	require.Len(t, got, 3)
	assert.Contains(t, got, "admin@example.com")
	assert.Contains(t, got, "ravi@example.com")
	assert.Contains(t, got, "asha@example.com")
}

func TestBookingCreatedSkipsCompanionWithoutEmail(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifier(m)

	svc.BookingCreated(pendingBooking("b1", "friend-1"), "Asha Rao", "")
	svc.Flush()

	assert.Len(t, m.messages(), 2)
	assert.NotContains(t, m.recipients(), "")
}

func TestBookingCreatedSanitizesSubject(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifier(m)

	b := pendingBooking("b1", "friend-1")
	b.ClientName = "<img src=x>Ravi"
	svc.BookingCreated(b, "Asha<script></script>", "asha@example.com")
	svc.Flush()

	for _, msg := range m.messages() {
		assert.NotContains(t, msg.Subject, "<")
		assert.NotContains(t, msg.HTML, "<script>")
	}
}

func TestStatusChangedSubjects(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifier(m)

	confirmed := pendingBooking("b1", "friend-1")
	confirmed.Status = domain.BookingConfirmed
	svc.BookingStatusChanged(confirmed, "Asha Rao")

	declined := pendingBooking("b2", "friend-1")
	declined.Status = domain.BookingCancelled
	svc.BookingStatusChanged(declined, "Asha Rao")
	svc.Flush()

	msgs := m.messages()
	require.Len(t, msgs, 2)
	var subjects []string
	for _, msg := range msgs {
		assert.Equal(t, []string{"ravi@example.com"}, msg.To)
		subjects = append(subjects, msg.Subject)
	}
	assert.Contains(t, subjects, "Your booking with Asha Rao is confirmed")
	assert.Contains(t, subjects, "Booking update: session with Asha Rao")
}

func TestContactReceivedGoesToAdmin(t *testing.T) {
	m := &fakeMailer{}
	svc := newTestNotifier(m)

	svc.ContactReceived("Ravi", "ravi@example.com", "hello")
	svc.Flush()

	msgs := m.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"admin@example.com"}, msgs[0].To)
	assert.Contains(t, msgs[0].Subject, "Ravi")
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	m := &fakeMailer{err: errStore}
	svc := newTestNotifier(m)

	// Must not panic or surface the error to the caller.
	svc.ContactReceived("Ravi", "ravi@example.com", "hello")
	svc.Flush()
	assert.Empty(t, m.messages())
}
