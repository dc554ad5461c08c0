package service

import "github.com/rajeev8964/thepersonalbuddy/internal/models"

// Store interfaces are the narrow slices of the repository layer the
// workflows need; tests inject fakes, production wires the GORM repos.

type ProfileStore interface {
	Create(p *models.FriendProfile) error
	GetByID(id string) (*models.FriendProfile, error)
	GetByUserID(userID string) (*models.FriendProfile, error)
	Update(p *models.FriendProfile) error
	Delete(id string) error
	ListPublic() ([]models.FriendProfile, error)
	ListAll() ([]models.FriendProfile, error)
}

type BookingStore interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
	ListAll() ([]models.Booking, error)
	ListByFriendID(friendID string) ([]models.Booking, error)
	ListByClientEmail(email string) ([]models.Booking, error)
}

type RoleStore interface {
	HasRole(userID, role string) (bool, error)
	Grant(userID, role string) error
}

type ContactStore interface {
	Create(m *models.ContactMessage) error
	List(limit, offset int) ([]models.ContactMessage, error)
}

type UserStore interface {
	Create(u *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByGoogleID(googleID string) (*models.User, error)
	Update(u *models.User) error
}

// Dispatcher is the notification boundary. Implementations are best-effort:
// they never return an error to the workflow, and failures are only logged.
type Dispatcher interface {
	BookingCreated(b *models.Booking, friendName, friendEmail string)
	BookingStatusChanged(b *models.Booking, friendName string)
	ContactReceived(name, email, message string)
}

// Actor identifies the caller of a privileged workflow operation. Admin is
// set only after a role-store check, never from a token claim.
type Actor struct {
	UserID string
	Email  string
	Admin  bool
}
