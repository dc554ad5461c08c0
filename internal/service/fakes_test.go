package service

import (
	"errors"

	"github.com/rajeev8964/thepersonalbuddy/internal/models"

	"gorm.io/gorm"
)

var errStore = errors.New("store unavailable")

type fakeProfileStore struct {
	profiles map[string]*models.FriendProfile // keyed by profile ID
	err      error

	created []*models.FriendProfile
	updated []*models.FriendProfile
	deleted []string
}

func newFakeProfileStore(profiles ...*models.FriendProfile) *fakeProfileStore {
	s := &fakeProfileStore{profiles: make(map[string]*models.FriendProfile)}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	return s
}

func (s *fakeProfileStore) Create(p *models.FriendProfile) error {
	if s.err != nil {
		return s.err
	}
	if p.ID == "" {
		p.ID = "profile-" + p.FullName
	}
	s.profiles[p.ID] = p
	s.created = append(s.created, p)
	return nil
}

func (s *fakeProfileStore) GetByID(id string) (*models.FriendProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *fakeProfileStore) GetByUserID(userID string) (*models.FriendProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.profiles {
		if p.UserID != nil && *p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeProfileStore) Update(p *models.FriendProfile) error {
	if s.err != nil {
		return s.err
	}
	s.profiles[p.ID] = p
	s.updated = append(s.updated, p)
	return nil
}

func (s *fakeProfileStore) Delete(id string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.profiles, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeProfileStore) ListPublic() ([]models.FriendProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.FriendProfile
	for _, p := range s.profiles {
		if p.IsApproved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeProfileStore) ListAll() ([]models.FriendProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.FriendProfile
	for _, p := range s.profiles {
		out = append(out, *p)
	}
	return out, nil
}

type fakeBookingStore struct {
	bookings map[string]*models.Booking
	err      error

	statusUpdates []string // "id:status"
	deleted       []string
}

func newFakeBookingStore(bookings ...*models.Booking) *fakeBookingStore {
	s := &fakeBookingStore{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
	return s
}

func (s *fakeBookingStore) Create(b *models.Booking) error {
	if s.err != nil {
		return s.err
	}
	if b.ID == "" {
		b.ID = "booking-1"
	}
	s.bookings[b.ID] = b
	return nil
}

func (s *fakeBookingStore) GetByID(id string) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *fakeBookingStore) UpdateStatus(id, status string) error {
	if s.err != nil {
		return s.err
	}
	b, ok := s.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.Status = status
	s.statusUpdates = append(s.statusUpdates, id+":"+status)
	return nil
}

func (s *fakeBookingStore) Delete(id string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.bookings, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeBookingStore) ListAll() ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Booking
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (s *fakeBookingStore) ListByFriendID(friendID string) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if b.FriendID == friendID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) ListByClientEmail(email string) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if b.ClientEmail == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakeRoleStore struct {
	roles map[string][]string // userID -> roles
	err   error

	hasRoleCalls int
	granted      []string // "userID:role"
}

func newFakeRoleStore() *fakeRoleStore {
	return &fakeRoleStore{roles: make(map[string][]string)}
}

func (s *fakeRoleStore) HasRole(userID, role string) (bool, error) {
	s.hasRoleCalls++
	if s.err != nil {
		return false, s.err
	}
	for _, r := range s.roles[userID] {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeRoleStore) Grant(userID, role string) error {
	if s.err != nil {
		return s.err
	}
	s.roles[userID] = append(s.roles[userID], role)
	s.granted = append(s.granted, userID+":"+role)
	return nil
}

// fakeDispatcher records dispatch calls synchronously.
type fakeDispatcher struct {
	created       int
	statusChanged int
	contacts      int

	lastBooking    *models.Booking
	lastFriendName string
	lastFriendMail string
}

func (d *fakeDispatcher) BookingCreated(b *models.Booking, friendName, friendEmail string) {
	d.created++
	d.lastBooking = b
	d.lastFriendName = friendName
	d.lastFriendMail = friendEmail
}

func (d *fakeDispatcher) BookingStatusChanged(b *models.Booking, friendName string) {
	d.statusChanged++
	d.lastBooking = b
	d.lastFriendName = friendName
}

func (d *fakeDispatcher) ContactReceived(name, email, message string) {
	d.contacts++
}

type fakeContactStore struct {
	messages []*models.ContactMessage
	err      error
}

func (s *fakeContactStore) Create(m *models.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, m)
	return nil
}

func (s *fakeContactStore) List(limit, offset int) ([]models.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.ContactMessage
	for _, m := range s.messages {
		out = append(out, *m)
	}
	return out, nil
}
