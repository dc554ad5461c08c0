package service

import (
	"strings"

	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
	"github.com/rajeev8964/thepersonalbuddy/internal/models"
)

type ContactService struct {
	contacts   ContactStore
	dispatcher Dispatcher
}

func NewContactService(contacts ContactStore, dispatcher Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// Submit stores the message and forwards it to the site admin. The stored
// row is the success signal; the email copy is best-effort.
func (s *ContactService) Submit(name, email, message string) (*models.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" {
		return nil, domain.Invalid("name", "required")
	}
	if !domain.ValidEmail(email) {
		return nil, domain.Invalid("email", "invalid email address")
	}
	if message == "" {
		return nil, domain.Invalid("message", "required")
	}
	m := &models.ContactMessage{Name: name, Email: email, Message: message}
	if err := s.contacts.Create(m); err != nil {
		return nil, err
	}
	s.dispatcher.ContactReceived(name, email, message)
	return m, nil
}

func (s *ContactService) List(limit, offset int) ([]models.ContactMessage, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.contacts.List(limit, offset)
}
