package repository

import (
	"github.com/rajeev8964/thepersonalbuddy/internal/models"

	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// HasRole reports whether the account holds the role. Errors mean the store
// was unreachable; callers fail closed.
func (r *RoleRepository) HasRole(userID, role string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RoleRepository) Grant(userID, role string) error {
	ok, err := r.HasRole(userID, role)
	if err != nil || ok {
		return err
	}
	return r.db.Create(&models.UserRole{UserID: userID, Role: role}).Error
}
