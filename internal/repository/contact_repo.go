package repository

import (
	"github.com/rajeev8964/thepersonalbuddy/internal/models"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(m *models.ContactMessage) error {
	return r.db.Create(m).Error
}

func (r *ContactRepository) List(limit, offset int) ([]models.ContactMessage, error) {
	var list []models.ContactMessage
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
