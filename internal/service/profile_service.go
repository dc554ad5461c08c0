package service

import (
	"errors"
	"strings"

	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
	"github.com/rajeev8964/thepersonalbuddy/internal/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

type ProfileInput struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Age               int    `json:"age"`
	Education         string `json:"education"`
	Height            string `json:"height"`
	Weight            string `json:"weight"`
	Hobbies           string `json:"hobbies"`
	BioData           string `json:"bio_data"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

func (in *ProfileInput) validate() error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	required := []struct{ field, value string }{
		{"full_name", in.FullName},
		{"education", in.Education},
		{"height", in.Height},
		{"weight", in.Weight},
		{"hobbies", in.Hobbies},
		{"bio_data", in.BioData},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.Invalid(r.field, "required")
		}
	}
	if !domain.ValidEmail(in.Email) {
		return domain.Invalid("email", "invalid email address")
	}
	if in.Age < domain.MinAge {
		return domain.Invalid("age", "must be 18 or older")
	}
	return nil
}

func (in *ProfileInput) apply(p *models.FriendProfile) {
	p.FullName = in.FullName
	p.Email = in.Email
	p.Age = in.Age
	p.Education = in.Education
	p.Height = in.Height
	p.Weight = in.Weight
	p.Hobbies = in.Hobbies
	p.BioData = in.BioData
	if in.ProfilePictureURL != "" {
		p.ProfilePictureURL = in.ProfilePictureURL
	}
}

// UpsertSelf creates or updates the caller's own profile. One profile per
// account: when one already exists the submission becomes an update. Any
// owner-initiated write resets approval, so the profile leaves the public
// listing until an admin re-reviews it.
func (s *ProfileService) UpsertSelf(userID string, in ProfileInput) (*models.FriendProfile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.profiles.GetByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && err == nil {
		in.apply(existing)
		existing.IsApproved = false
		if err := s.profiles.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	p := &models.FriendProfile{
		UserID:     &userID,
		Status:     domain.ProfileAvailable,
		IsApproved: false,
	}
	in.apply(p)
	if err := s.profiles.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateByAdmin creates a profile on behalf of the site. Admin-created
// profiles carry the status and approval the caller supplies (approved by
// default) and have no owning account.
func (s *ProfileService) CreateByAdmin(in ProfileInput, status string, approved bool) (*models.FriendProfile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if status == "" {
		status = domain.ProfileAvailable
	}
	if status != domain.ProfileAvailable && status != domain.ProfileBooked {
		return nil, domain.Invalid("status", "must be available or booked")
	}
	p := &models.FriendProfile{Status: status, IsApproved: approved}
	in.apply(p)
	if err := s.profiles.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateByAdmin edits any profile without touching its approval flag.
func (s *ProfileService) UpdateByAdmin(profileID string, in ProfileInput) (*models.FriendProfile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p, err := s.getProfile(profileID)
	if err != nil {
		return nil, err
	}
	in.apply(p)
	if err := s.profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetApproval flips the admin approval gate. No booking side effects.
func (s *ProfileService) SetApproval(profileID string, approved bool) (*models.FriendProfile, error) {
	p, err := s.getProfile(profileID)
	if err != nil {
		return nil, err
	}
	p.IsApproved = approved
	if err := s.profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetAvailability toggles the owner's visibility status. Only approved
// profiles can change it; unapproved ones are not listed anyway.
func (s *ProfileService) SetAvailability(userID, status string) (*models.FriendProfile, error) {
	if status != domain.ProfileAvailable && status != domain.ProfileBooked {
		return nil, domain.Invalid("status", "must be available or booked")
	}
	p, err := s.profiles.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	if !p.IsApproved {
		return nil, domain.ErrForbidden
	}
	p.Status = status
	if err := s.profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a profile and, through the store, every booking that
// references it.
func (s *ProfileService) Delete(profileID string) error {
	if _, err := s.getProfile(profileID); err != nil {
		return err
	}
	return s.profiles.Delete(profileID)
}

func (s *ProfileService) GetSelf(userID string) (*models.FriendProfile, error) {
	p, err := s.profiles.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListPublic returns the approved listing with the private email stripped.
func (s *ProfileService) ListPublic() ([]models.PublicProfile, error) {
	profiles, err := s.profiles.ListPublic()
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicProfile, 0, len(profiles))
	for i := range profiles {
		out = append(out, profiles[i].Public())
	}
	return out, nil
}

func (s *ProfileService) ListAll() ([]models.FriendProfile, error) {
	return s.profiles.ListAll()
}

func (s *ProfileService) getProfile(id string) (*models.FriendProfile, error) {
	p, err := s.profiles.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}
