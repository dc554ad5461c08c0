package service

import (
	"fmt"

	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
)

// Email bodies. Inputs are sanitized by the caller before interpolation.

const mailFooter = `<hr style="border:none;border-top:1px solid #e2e8f0;margin:24px 0;" />
<p style="color:#a0aec0;font-size:12px;text-align:center;">This is a strictly platonic friendship service. All activities are conducted in safe, public spaces.</p>`

func mailWrap(body string) string {
	return `<div style="font-family:sans-serif;max-width:600px;margin:0 auto;padding:32px;">` + body + mailFooter + `</div>`
}

func bookingDetails(activity, date, at string, duration int) string {
	return fmt.Sprintf(`<p><strong>Activity:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Duration:</strong> %d hour(s)</p>`, activity, date, at, duration)
}

func bookingAdminHTML(name, email, buddy, activity, date, at string, duration int, message string) string {
	body := fmt.Sprintf(`<h1>New booking request</h1>
<h2>Booked buddy</h2><p><strong>Name:</strong> %s</p>
<h2>Customer</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p>
<h2>Booking details</h2>%s`, buddy, name, email, bookingDetails(activity, date, at, duration))
	if message != "" {
		body += "<h2>Message</h2><p>" + message + "</p>"
	}
	body += fmt.Sprintf(`<p>Reply to this email or contact %s to confirm the booking.</p>`, email)
	return mailWrap(body)
}

func bookingClientHTML(name, buddy, activity, date, at string, duration int) string {
	body := fmt.Sprintf(`<h1>Hey %s!</h1>
<p>Thanks for reaching out! Your booking request for <strong>%s</strong> has been received.</p>
<h2>Your request summary</h2>%s
<p>You'll hear back within 24 hours once your buddy reviews the request.</p>`,
		name, buddy, bookingDetails(activity, date, at, duration))
	return mailWrap(body)
}

func bookingFriendHTML(buddy, name, email, activity, date, at string, duration int, message string) string {
	body := fmt.Sprintf(`<h1>Hey %s!</h1>
<p>Someone has booked a session with you.</p>
<h2>Customer</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p>
<h2>Session details</h2>%s`, buddy, name, email, bookingDetails(activity, date, at, duration))
	if message != "" {
		body += "<h2>Customer's message</h2><p>" + message + "</p>"
	}
	body += fmt.Sprintf(`<p>Please confirm or decline the request from your dashboard, or contact the customer at <strong>%s</strong>.</p>`, email)
	return mailWrap(body)
}

func statusChangeHTML(name, buddy, activity, date, at, status string) string {
	if status == domain.BookingConfirmed {
		return mailWrap(fmt.Sprintf(`<h1>Great news, %s!</h1>
<p>Your booking with <strong>%s</strong> has been confirmed.</p>
<h2>Session details</h2>
<p><strong>Activity:</strong> %s</p><p><strong>Date:</strong> %s</p><p><strong>Time:</strong> %s</p>
<p><strong>Status: CONFIRMED</strong></p>
<p>Please arrive on time and have a wonderful experience!</p>`, name, buddy, activity, date, at))
	}
	return mailWrap(fmt.Sprintf(`<h1>Hi %s,</h1>
<p>Unfortunately your booking with <strong>%s</strong> could not be confirmed at this time.</p>
<h2>Session details</h2>
<p><strong>Activity:</strong> %s</p><p><strong>Date:</strong> %s</p><p><strong>Time:</strong> %s</p>
<p><strong>Status: DECLINED</strong></p>
<p>There are many other amazing buddies available. Feel free to browse and book with someone else.</p>`, name, buddy, activity, date, at))
}

func contactHTML(name, email, message string) string {
	return mailWrap(fmt.Sprintf(`<h1>New contact message</h1>
<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p>
<h2>Message</h2><p>%s</p>`, name, email, message))
}
