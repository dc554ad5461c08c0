package repository

import (
	"github.com/rajeev8964/thepersonalbuddy/internal/models"

	"gorm.io/gorm"
)

// BookingRepository is the only read/write path for bookings. The three
// list methods are the access-control partition: admin sees all, a
// companion sees rows for their profile, a client sees rows matching their
// verified email. No other query path exists, so cross-tenant rows cannot
// leak.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) GetByID(id string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(id, status string) error {
	return r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status).Error
}

func (r *BookingRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Booking{}).Error
}

func (r *BookingRepository) ListAll() ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.Preload("Friend").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *BookingRepository) ListByFriendID(friendID string) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.Where("friend_id = ?", friendID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *BookingRepository) ListByClientEmail(email string) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.Where("client_email = ?", email).Preload("Friend").Order("created_at DESC").Find(&list).Error
	return list, err
}
