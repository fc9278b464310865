package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/repositories"
)

// In-memory repository fakes. They cover exactly the behavior the services
// rely on: lookups by id/email, uniqueness on create, and write counting so
// tests can assert that rejected operations write nothing.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) FindWithFilter(filter repositories.UserFilter) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[token]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (r *fakeRefreshTokenRepo) DeleteByToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUserID(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	now := time.Now()
	for k, t := range r.tokens {
		if now.After(t.ExpiresAt) {
			delete(r.tokens, k)
			n++
		}
	}
	return n, nil
}

func (r *fakeRefreshTokenRepo) countForUser(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.tokens {
		if t.UserID == userID {
			n++
		}
	}
	return n
}

type fakeTailorRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.TailorProfile
}

func newFakeTailorRepo() *fakeTailorRepo {
	return &fakeTailorRepo{profiles: make(map[string]*models.TailorProfile)}
}

func (r *fakeTailorRepo) Create(profile *models.TailorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	cp := *profile
	r.profiles[profile.ID] = &cp
	return nil
}

func (r *fakeTailorRepo) FindByID(id string) (*models.TailorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repositories.ErrTailorProfileNotFound
}

func (r *fakeTailorRepo) FindByUserID(userID string) (*models.TailorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrTailorProfileNotFound
}

func (r *fakeTailorRepo) Update(profile *models.TailorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; !ok {
		return repositories.ErrTailorProfileNotFound
	}
	cp := *profile
	r.profiles[profile.ID] = &cp
	return nil
}

type fakeMeasurementRepo struct {
	mu        sync.Mutex
	templates map[string]*models.MeasurementTemplate
	records   map[string]*models.CustomerMeasurement
}

func newFakeMeasurementRepo() *fakeMeasurementRepo {
	return &fakeMeasurementRepo{
		templates: make(map[string]*models.MeasurementTemplate),
		records:   make(map[string]*models.CustomerMeasurement),
	}
}

func (r *fakeMeasurementRepo) CreateTemplate(t *models.MeasurementTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *fakeMeasurementRepo) FindTemplateByID(id string) (*models.MeasurementTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.templates[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repositories.ErrTemplateNotFound
}

func (r *fakeMeasurementRepo) FindAllTemplates() ([]models.MeasurementTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.MeasurementTemplate
	for _, t := range r.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeMeasurementRepo) UpdateTemplate(t *models.MeasurementTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *fakeMeasurementRepo) DeleteTemplate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.templates, id)
	return nil
}

func (r *fakeMeasurementRepo) CreateRecord(rec *models.CustomerMeasurement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *fakeMeasurementRepo) FindRecordByID(id string) (*models.CustomerMeasurement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, repositories.ErrMeasurementNotFound
}

func (r *fakeMeasurementRepo) FindRecordsByCustomer(customerID string) ([]models.CustomerMeasurement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CustomerMeasurement
	for _, rec := range r.records {
		if rec.CustomerID == customerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeMeasurementRepo) UpdateRecord(rec *models.CustomerMeasurement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *fakeMeasurementRepo) DeleteRecord(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

type fakeOrderRepo struct {
	mu           sync.Mutex
	orders       map[string]*models.Order
	statusWrites int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	for _, o := range r.orders {
		if o.OrderNumber == order.OrderNumber {
			return fmt.Errorf("duplicate order number %s", order.OrderNumber)
		}
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) FindByID(id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, repositories.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByOrderNumber(number string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.OrderNumber == number {
			cp := *o
			return &cp, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByCustomer(customerID string, page, pageSize int) ([]models.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) FindByTailor(tailorID string, page, pageSize int) ([]models.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.TailorID == tailorID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) FindAll(page, pageSize int) ([]models.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateStatus(orderID string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return repositories.ErrOrderNotFound
	}
	o.Status = status
	r.statusWrites++
	return nil
}

func (r *fakeOrderRepo) writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.statusWrites
}

type noopEmailProvider struct{}

func (noopEmailProvider) Send(to, subject, htmlBody string) error { return nil }
func (noopEmailProvider) SendWelcome(to, name string) error       { return nil }
func (noopEmailProvider) SendPasswordReset(to, token string) error {
	return nil
}
