package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
	"github.com/rajeev8964/thepersonalbuddy/internal/middleware"
	"github.com/rajeev8964/thepersonalbuddy/internal/models"
	"github.com/rajeev8964/thepersonalbuddy/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubProfileStore struct {
	profile *models.FriendProfile
}

func (s *stubProfileStore) Create(p *models.FriendProfile) error { return nil }
func (s *stubProfileStore) GetByID(id string) (*models.FriendProfile, error) {
	if s.profile != nil && s.profile.ID == id {
		return s.profile, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubProfileStore) GetByUserID(userID string) (*models.FriendProfile, error) {
	if s.profile != nil && s.profile.UserID != nil && *s.profile.UserID == userID {
		return s.profile, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubProfileStore) Update(p *models.FriendProfile) error          { return nil }
func (s *stubProfileStore) Delete(id string) error                       { return nil }
func (s *stubProfileStore) ListPublic() ([]models.FriendProfile, error)  { return nil, nil }
func (s *stubProfileStore) ListAll() ([]models.FriendProfile, error)     { return nil, nil }

type stubBookingStore struct {
	created []*models.Booking
	byID    map[string]*models.Booking
}

func (s *stubBookingStore) Create(b *models.Booking) error {
	if b.ID == "" {
		b.ID = "booking-1"
	}
	s.created = append(s.created, b)
	return nil
}
func (s *stubBookingStore) GetByID(id string) (*models.Booking, error) {
	if b, ok := s.byID[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubBookingStore) UpdateStatus(id, status string) error {
	if b, ok := s.byID[id]; ok {
		b.Status = status
	}
	return nil
}
func (s *stubBookingStore) Delete(id string) error                  { return nil }
func (s *stubBookingStore) ListAll() ([]models.Booking, error)      { return nil, nil }
func (s *stubBookingStore) ListByFriendID(string) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingStore) ListByClientEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.created {
		if b.ClientEmail == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

type stubDispatcher struct {
	created       int
	statusChanged int
}

func (d *stubDispatcher) BookingCreated(b *models.Booking, friendName, friendEmail string) {
	d.created++
}
func (d *stubDispatcher) BookingStatusChanged(b *models.Booking, friendName string) {
	d.statusChanged++
}
func (d *stubDispatcher) ContactReceived(name, email, message string) {}

func testProfile() *models.FriendProfile {
	owner := "owner-1"
	return &models.FriendProfile{
		ID:         "friend-1",
		UserID:     &owner,
		FullName:   "Asha Rao",
		Email:      "asha@example.com",
		IsApproved: true,
		Status:     domain.ProfileAvailable,
	}
}

func bookingBody() []byte {
	body, _ := json.Marshal(map[string]any{
		"friend_id":    "friend-1",
		"client_name":  "Ravi Kumar",
		"client_email": "ravi@example.com",
		"client_phone": "9876543210",
		"activity":     "coffee",
		"date":         time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02"),
		"time":         "15:00",
		"duration":     2,
	})
	return body
}

func TestSubmitBookingEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bookings := &stubBookingStore{}
	dispatcher := &stubDispatcher{}
	svc := service.NewBookingService(bookings, &stubProfileStore{profile: testProfile()}, dispatcher)
	h := NewBookingHandler(svc)

	r := gin.New()
	r.POST("/bookings", h.Submit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(bookingBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var got models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.BookingPending, got.Status)
	assert.NotEmpty(t, got.ID)
	assert.Len(t, bookings.created, 1)
	assert.Equal(t, 1, dispatcher.created)
}

func TestSubmitBookingValidationResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewBookingService(&stubBookingStore{}, &stubProfileStore{profile: testProfile()}, &stubDispatcher{})
	r := gin.New()
	r.POST("/bookings", NewBookingHandler(svc).Submit)

	body, _ := json.Marshal(map[string]any{"friend_id": "friend-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestSubmitBookingRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bookings := &stubBookingStore{}
	svc := service.NewBookingService(bookings, &stubProfileStore{profile: testProfile()}, &stubDispatcher{})
	r := gin.New()
	limiter := middleware.NewInMemoryRateLimiter(3, time.Hour)
	r.POST("/bookings", middleware.SubmissionLimit(limiter), NewBookingHandler(svc).Submit)

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(bookingBody()))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "9.9.9.9:1234"
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusCreated, do().Code)
	}
	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	// The rejected request never reached the store.
	assert.Len(t, bookings.created, 3)
}

func TestListMineHidesCompanionEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	friend := testProfile()
	booking := &models.Booking{
		ID:          "b1",
		FriendID:    friend.ID,
		ClientName:  "Ravi Kumar",
		ClientEmail: "ravi@example.com",
		Status:      domain.BookingPending,
		Friend:      friend,
	}
	bookings := &stubBookingStore{created: []*models.Booking{booking}}
	svc := service.NewBookingService(bookings, &stubProfileStore{profile: friend}, &stubDispatcher{})
	h := NewBookingHandler(svc)

	r := gin.New()
	asClient := func(c *gin.Context) {
		c.Set("user_id", "client-1")
		c.Set("email", "ravi@example.com")
	}
	r.GET("/my/bookings", asClient, h.ListMine)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my/bookings", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"full_name":"Asha Rao"`)
	assert.NotContains(t, body, friend.Email)
}

func TestCompanionUpdateStatusEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	booking := &models.Booking{
		ID:          "b1",
		FriendID:    "friend-1",
		ClientName:  "Ravi Kumar",
		ClientEmail: "ravi@example.com",
		Status:      domain.BookingPending,
	}
	bookings := &stubBookingStore{byID: map[string]*models.Booking{"b1": booking}}
	dispatcher := &stubDispatcher{}
	svc := service.NewBookingService(bookings, &stubProfileStore{profile: testProfile()}, dispatcher)
	h := NewBookingHandler(svc)

	r := gin.New()
	asOwner := func(c *gin.Context) {
		c.Set("user_id", "owner-1")
		c.Set("email", "asha@example.com")
	}
	r.PATCH("/me/bookings/:id/status", asOwner, h.UpdateStatus)

	do := func(id, status string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"status": status})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/me/bookings/"+id+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := do("b1", domain.BookingConfirmed)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, dispatcher.statusChanged)

	// Repeating the transition conflicts and sends nothing further.
	w = do("b1", domain.BookingConfirmed)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TRANSITION")
	assert.Equal(t, 1, dispatcher.statusChanged)

	w = do("missing", domain.BookingConfirmed)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
