package repository

import (
	"github.com/rajeev8964/thepersonalbuddy/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(p *models.FriendProfile) error {
	return r.db.Create(p).Error
}

func (r *ProfileRepository) GetByID(id string) (*models.FriendProfile, error) {
	var p models.FriendProfile
	err := r.db.First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByUserID(userID string) (*models.FriendProfile, error) {
	var p models.FriendProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Update(p *models.FriendProfile) error {
	return r.db.Save(p).Error
}

// Delete removes the profile and all bookings that reference it in one
// transaction.
func (r *ProfileRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("friend_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.FriendProfile{}).Error
	})
}

// ListPublic returns approved profiles, newest first. Callers must project
// rows through Public() before exposing them.
func (r *ProfileRepository) ListPublic() ([]models.FriendProfile, error) {
	var list []models.FriendProfile
	err := r.db.Where("is_approved = ?", true).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ProfileRepository) ListAll() ([]models.FriendProfile, error) {
	var list []models.FriendProfile
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}
