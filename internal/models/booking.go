package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is one request to engage a companion. Status starts at pending;
// deleting a profile hard-deletes its bookings.
type Booking struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	FriendID    string    `gorm:"type:char(36);not null;index" json:"friend_id"`
	ClientName  string    `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string    `gorm:"size:255;not null;index" json:"client_email"`
	ClientPhone string    `gorm:"size:30;not null" json:"client_phone"`
	Activity    string    `gorm:"size:100;not null" json:"activity"`
	BookingDate string    `gorm:"size:10;not null" json:"booking_date"` // ISO calendar date
	BookingTime string    `gorm:"size:20;not null" json:"booking_time"`
	Duration    int       `gorm:"not null;default:1" json:"duration"` // hours
	Message     string    `gorm:"type:text" json:"message"`
	Status      string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	Friend *FriendProfile `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE" json:"friend,omitempty"`
}

func (Booking) TableName() string {
	return "friend_bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BookedFriend is the slice of the joined profile a client may see: name
// and picture only, never the companion's private contact email.
type BookedFriend struct {
	FullName          string `json:"full_name"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// ClientBooking is the client partition view of a booking.
type ClientBooking struct {
	Booking
	Friend *BookedFriend `json:"friend,omitempty"`
}

// ClientView projects the booking for the requesting client.
func (b *Booking) ClientView() ClientBooking {
	out := ClientBooking{Booking: *b}
	out.Booking.Friend = nil
	if b.Friend != nil {
		out.Friend = &BookedFriend{
			FullName:          b.Friend.FullName,
			ProfilePictureURL: b.Friend.ProfilePictureURL,
		}
	}
	return out
}
