package testutil

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"photo-market-backend/internal/models"
)

// FakeStore is an in-memory datastore with the same conflict rules as the
// real schema: one connected account per user and one purchase per payment
// reference.
type FakeStore struct {
	mu        sync.Mutex
	Users     map[uuid.UUID]*models.User
	Photos    map[uuid.UUID]*models.Photo
	Purchases []models.Purchase

	// Err, when set, is returned by every method.
	Err error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		Users:  make(map[uuid.UUID]*models.User),
		Photos: make(map[uuid.UUID]*models.Photo),
	}
}

// AddUser stores a user with no processor state.
func (s *FakeStore) AddUser(email string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ID: uuid.New(), Email: email, CreatedAt: time.Now()}
	s.Users[u.ID] = u
	return u
}

// AddSeller stores a user with a connected account in the given state.
func (s *FakeStore) AddSeller(email, accountID string, chargesEnabled, detailsSubmitted bool) *models.User {
	u := s.AddUser(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	u.StripeAccountID = sql.NullString{String: accountID, Valid: true}
	u.StripeChargesEnabled = chargesEnabled
	u.StripeDetailsSubmitted = detailsSubmitted
	return u
}

func (s *FakeStore) AddPhoto(ownerID uuid.UUID, price string, status models.PhotoStatus) *models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	p := &models.Photo{
		ID:           id,
		UserID:       ownerID,
		Title:        "Photo " + id.String()[:8],
		Price:        decimal.RequireFromString(price),
		OriginalPath: ownerID.String() + "/" + id.String() + "/original.jpg",
		Status:       status,
		Visibility:   models.VisibilityPublic,
		CreatedAt:    time.Now(),
	}
	s.Photos[id] = p
	return p
}

// User returns a copy of the stored user.
func (s *FakeStore) User(id uuid.UUID) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *s.Users[id]
	return &u
}

func (s *FakeStore) PurchaseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Purchases)
}

func (s *FakeStore) GetUser(_ context.Context, userID uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.Users[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *FakeStore) SetStripeAccount(_ context.Context, userID uuid.UUID, accountID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	u, ok := s.Users[userID]
	if !ok || u.StripeAccountID.Valid {
		return false, nil
	}
	u.StripeAccountID = sql.NullString{String: accountID, Valid: true}
	u.StripeChargesEnabled = false
	u.StripeDetailsSubmitted = false
	return true, nil
}

func (s *FakeStore) SetStripeCustomerID(_ context.Context, userID uuid.UUID, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if u, ok := s.Users[userID]; ok {
		u.StripeCustomerID = sql.NullString{String: customerID, Valid: true}
	}
	return nil
}

func (s *FakeStore) UpdateStripeAccountStatus(_ context.Context, userID uuid.UUID, chargesEnabled, detailsSubmitted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if u, ok := s.Users[userID]; ok {
		u.StripeChargesEnabled = chargesEnabled
		u.StripeDetailsSubmitted = detailsSubmitted
	}
	return nil
}

func (s *FakeStore) byAccount(accountID string) *models.User {
	for _, u := range s.Users {
		if u.StripeAccountID.Valid && u.StripeAccountID.String == accountID {
			return u
		}
	}
	return nil
}

func (s *FakeStore) SyncStripeAccountStatus(_ context.Context, accountID string, chargesEnabled, detailsSubmitted bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	u := s.byAccount(accountID)
	if u == nil {
		return false, models.ErrNotFound
	}
	u.StripeChargesEnabled = chargesEnabled
	u.StripeDetailsSubmitted = detailsSubmitted
	return u.StripePixEnabled, nil
}

func (s *FakeStore) MarkPixEnabled(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if u := s.byAccount(accountID); u != nil {
		u.StripePixEnabled = true
	}
	return nil
}

func (s *FakeStore) GetPhoto(_ context.Context, photoID uuid.UUID) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Photos[photoID]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *FakeStore) UpdatePhotoPreviewPath(_ context.Context, photoID uuid.UUID, previewPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if p, ok := s.Photos[photoID]; ok {
		p.PreviewPath = previewPath
	}
	return nil
}

func (s *FakeStore) CreatePurchase(_ context.Context, purchase *models.Purchase) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for _, p := range s.Purchases {
		if p.PaymentReference == purchase.PaymentReference {
			return false, nil
		}
	}
	purchase.ID = uuid.New()
	purchase.CreatedAt = time.Now()
	s.Purchases = append(s.Purchases, *purchase)
	return true, nil
}

func (s *FakeStore) HasApprovedPurchase(_ context.Context, buyerID, photoID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for _, p := range s.Purchases {
		if p.BuyerID == buyerID && p.PhotoID == photoID && p.Status == models.PurchaseApproved {
			return true, nil
		}
	}
	return false, nil
}

func (s *FakeStore) ListPurchasesByBuyer(_ context.Context, buyerID uuid.UUID) ([]models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Purchase
	for _, p := range s.Purchases {
		if p.BuyerID == buyerID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
