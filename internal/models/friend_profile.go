package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FriendProfile is one bookable companion. Email is the companion's private
// contact address and must never appear in public listing output; use
// Public() for anything client-facing.
type FriendProfile struct {
	ID                string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID            *string   `gorm:"type:char(36);index" json:"user_id"` // nil for admin-created profiles
	FullName          string    `gorm:"size:100;not null" json:"full_name"`
	Email             string    `gorm:"size:255;not null" json:"email"`
	Age               int       `gorm:"not null" json:"age"`
	Education         string    `gorm:"size:255;not null" json:"education"`
	Height            string    `gorm:"size:50;not null" json:"height"`
	Weight            string    `gorm:"size:50;not null" json:"weight"`
	Hobbies           string    `gorm:"type:text;not null" json:"hobbies"` // comma-delimited tags
	BioData           string    `gorm:"type:text;not null" json:"bio_data"`
	ProfilePictureURL string    `gorm:"size:512" json:"profile_picture_url"`
	Status            string    `gorm:"size:20;not null;default:'available';index" json:"status"`
	IsApproved        bool      `gorm:"not null;default:false;index" json:"is_approved"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (FriendProfile) TableName() string {
	return "friend_profiles"
}

func (p *FriendProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PublicProfile is the listing view of a profile. It has no email field at
// all, so no serialization path can leak the private contact address.
type PublicProfile struct {
	ID                string `json:"id"`
	FullName          string `json:"full_name"`
	Age               int    `json:"age"`
	Education         string `json:"education"`
	Height            string `json:"height"`
	Weight            string `json:"weight"`
	Hobbies           string `json:"hobbies"`
	BioData           string `json:"bio_data"`
	ProfilePictureURL string `json:"profile_picture_url"`
	Status            string `json:"status"`
}

func (p *FriendProfile) Public() PublicProfile {
	return PublicProfile{
		ID:                p.ID,
		FullName:          p.FullName,
		Age:               p.Age,
		Education:         p.Education,
		Height:            p.Height,
		Weight:            p.Weight,
		Hobbies:           p.Hobbies,
		BioData:           p.BioData,
		ProfilePictureURL: p.ProfilePictureURL,
		Status:            p.Status,
	}
}
