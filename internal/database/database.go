package database

import (
	"errors"
	"log/slog"

	"github.com/rajeev8964/thepersonalbuddy/config"
	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
	"github.com/rajeev8964/thepersonalbuddy/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.FriendProfile{},
		&models.Booking{},
		&models.ContactMessage{},
	)
}

// SeedAdmin provisions the configured admin account and its admin role row.
// Safe to run on every startup; does nothing when the account already exists
// or seeding is not configured.
func SeedAdmin(db *gorm.DB, cfg *config.AdminSeedConfig, log *slog.Logger) error {
	if cfg.Email == "" {
		log.Info("admin seeding skipped: SEED_ADMIN_EMAIL not set")
		return nil
	}
	var u models.User
	err := db.Where("email = ?", cfg.Email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if cfg.Password == "" {
			log.Warn("admin seeding skipped: SEED_ADMIN_PASSWORD not set")
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u = models.User{Email: cfg.Email, PasswordHash: string(hash), FullName: cfg.Name}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Info("admin account created", "email", cfg.Email)
	} else if err != nil {
		return err
	}
	var count int64
	if err := db.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", u.ID, domain.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return db.Create(&models.UserRole{UserID: u.ID, Role: domain.RoleAdmin}).Error
	}
	return nil
}
