package service

import (
	"errors"
	"strings"

	"github.com/rajeev8964/thepersonalbuddy/config"
	"github.com/rajeev8964/thepersonalbuddy/internal/auth"
	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
	"github.com/rajeev8964/thepersonalbuddy/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
)

type AuthService struct {
	cfg   *config.Config
	users UserStore
	roles RoleStore
}

func NewAuthService(cfg *config.Config, users UserStore, roles RoleStore) *AuthService {
	return &AuthService{cfg: cfg, users: users, roles: roles}
}

func (s *AuthService) Register(email, password, fullName string) (*models.User, string, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !domain.ValidEmail(email) {
		return nil, "", "", domain.Invalid("email", "invalid email address")
	}
	if len(password) < 8 {
		return nil, "", "", domain.Invalid("password", "must be at least 8 characters")
	}
	_, err := s.users.GetByEmail(email)
	if err == nil {
		return nil, "", "", ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	u := &models.User{Email: email, PasswordHash: string(hash), FullName: fullName}
	if err := s.users.Create(u); err != nil {
		return nil, "", "", err
	}
	// Every account starts with the plain user role. Admin is only ever
	// granted through the provisioning path.
	if err := s.roles.Grant(u.ID, domain.RoleUser); err != nil {
		return nil, "", "", err
	}
	access, refresh, err := s.tokens(u)
	return u, access, refresh, err
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	u, err := s.users.GetByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if u.PasswordHash == "" {
		return nil, "", "", ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, refresh, err := s.tokens(u)
	return u, access, refresh, err
}

// LoginWithGoogle finds or creates a user for a verified Google identity
// and returns user + tokens + isNew flag.
func (s *AuthService) LoginWithGoogle(googleID, email, name, avatarURL string) (*models.User, string, string, bool, error) {
	u, err := s.users.GetByGoogleID(googleID)
	if err == nil {
		access, refresh, err := s.tokens(u)
		return u, access, refresh, false, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", false, err
	}
	existing, err := s.users.GetByEmail(email)
	if err == nil {
		// Link Google to the existing account.
		gid := googleID
		existing.GoogleID = &gid
		if avatarURL != "" {
			existing.AvatarURL = avatarURL
		}
		if err := s.users.Update(existing); err != nil {
			return nil, "", "", false, err
		}
		access, refresh, err := s.tokens(existing)
		return existing, access, refresh, false, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", false, err
	}
	gid := googleID
	u = &models.User{Email: email, FullName: name, GoogleID: &gid, AvatarURL: avatarURL}
	if err := s.users.Create(u); err != nil {
		return nil, "", "", false, err
	}
	if err := s.roles.Grant(u.ID, domain.RoleUser); err != nil {
		return nil, "", "", false, err
	}
	access, refresh, err := s.tokens(u)
	return u, access, refresh, true, err
}

// ChangePassword updates the user's password after verifying the current one.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return ErrInvalidCreds
	}
	if u.PasswordHash == "" {
		return errors.New("account uses Google sign-in; set a password first")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCreds
	}
	if len(newPassword) < 8 {
		return domain.Invalid("password", "must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.users.Update(u)
}

func (s *AuthService) RefreshToken(refreshToken string) (string, string, error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", "", err
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}
	return s.tokens(u)
}

func (s *AuthService) tokens(u *models.User) (string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return access, "", err
	}
	return access, refresh, nil
}
