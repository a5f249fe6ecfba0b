package helpers

import (
	"context"
	"sync"

	"zogiraa_backend/internal/models"
	"zogiraa_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repositories. They honor the same sentinel errors as the
// postgres implementations so the services cannot tell them apart.

type FakeUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[string]models.User)}
}

func (r *FakeUserRepository) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (r *FakeUserRepository) FindByPhone(phone string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Phone == phone {
			u := u
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *FakeUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Phone == user.Phone {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = *user
	return nil
}

type FakeOTPRepository struct {
	mu    sync.Mutex
	codes []models.OTPCode
}

func NewFakeOTPRepository() *FakeOTPRepository {
	return &FakeOTPRepository{}
}

func (r *FakeOTPRepository) Create(code *models.OTPCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if code.ID == "" {
		code.ID = uuid.NewString()
	}
	r.codes = append(r.codes, *code)
	return nil
}

func (r *FakeOTPRepository) FindLatestByPhone(phone string) (*models.OTPCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *models.OTPCode
	for i := range r.codes {
		c := &r.codes[i]
		if c.Phone != phone {
			continue
		}
		if latest == nil || c.ExpiresAt.After(latest.ExpiresAt) {
			latest = c
		}
	}
	if latest == nil {
		return nil, repositories.ErrOTPNotFound
	}
	out := *latest
	return &out, nil
}

// LatestCode exposes the stored code so HTTP tests can complete the
// verify flow without a real SMS.
func (r *FakeOTPRepository) LatestCode(phone string) (string, bool) {
	c, err := r.FindLatestByPhone(phone)
	if err != nil {
		return "", false
	}
	return c.Code, true
}

type FakeProfileRepository struct {
	mu        sync.Mutex
	workers   map[string]models.WorkerProfile
	employers map[string]models.EmployerProfile
	suppliers map[string]models.SupplierProfile
}

func NewFakeProfileRepository() *FakeProfileRepository {
	return &FakeProfileRepository{
		workers:   make(map[string]models.WorkerProfile),
		employers: make(map[string]models.EmployerProfile),
		suppliers: make(map[string]models.SupplierProfile),
	}
}

func (r *FakeProfileRepository) FindWorkerByUserID(userID string) (*models.WorkerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.workers[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return &p, nil
}

func (r *FakeProfileRepository) FindEmployerByUserID(userID string) (*models.EmployerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.employers[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return &p, nil
}

func (r *FakeProfileRepository) FindSupplierByUserID(userID string) (*models.SupplierProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.suppliers[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return &p, nil
}

func (r *FakeProfileRepository) CreateWorker(profile *models.WorkerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.workers[profile.UserID] = *profile
	return nil
}

func (r *FakeProfileRepository) CreateEmployer(profile *models.EmployerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.employers[profile.UserID] = *profile
	return nil
}

func (r *FakeProfileRepository) CreateSupplier(profile *models.SupplierProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.suppliers[profile.UserID] = *profile
	return nil
}

func (r *FakeProfileRepository) SaveWorker(profile *models.WorkerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers[profile.UserID] = *profile
	return nil
}

func (r *FakeProfileRepository) SaveEmployer(profile *models.EmployerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employers[profile.UserID] = *profile
	return nil
}

func (r *FakeProfileRepository) SaveSupplier(profile *models.SupplierProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[profile.UserID] = *profile
	return nil
}

// SentSMS is one delivery recorded by RecordingSMS.
type SentSMS struct {
	Phone string
	Code  string
}

// RecordingSMS captures outgoing codes and can simulate vendor outages.
type RecordingSMS struct {
	mu   sync.Mutex
	Sent []SentSMS
	fail error
}

func (s *RecordingSMS) SendOTP(_ context.Context, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.Sent = append(s.Sent, SentSMS{Phone: phone, Code: code})
	return nil
}

func (s *RecordingSMS) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func (s *RecordingSMS) SentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Sent)
}
