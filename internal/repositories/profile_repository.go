package repositories

import (
	"errors"

	"zogiraa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindWorkerByUserID(userID string) (*models.WorkerProfile, error)
	FindEmployerByUserID(userID string) (*models.EmployerProfile, error)
	FindSupplierByUserID(userID string) (*models.SupplierProfile, error)

	CreateWorker(profile *models.WorkerProfile) error
	CreateEmployer(profile *models.EmployerProfile) error
	CreateSupplier(profile *models.SupplierProfile) error

	SaveWorker(profile *models.WorkerProfile) error
	SaveEmployer(profile *models.EmployerProfile) error
	SaveSupplier(profile *models.SupplierProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindWorkerByUserID(userID string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	if err := r.findByUserID(&profile, userID); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindEmployerByUserID(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := r.findByUserID(&profile, userID); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindSupplierByUserID(userID string) (*models.SupplierProfile, error) {
	var profile models.SupplierProfile
	if err := r.findByUserID(&profile, userID); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) findByUserID(dest interface{}, userID string) error {
	err := r.db.First(dest, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProfileNotFound
	}
	return err
}

func (r *ProfileRepositoryImpl) CreateWorker(profile *models.WorkerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateEmployer(profile *models.EmployerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateSupplier(profile *models.SupplierProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) SaveWorker(profile *models.WorkerProfile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) SaveEmployer(profile *models.EmployerProfile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) SaveSupplier(profile *models.SupplierProfile) error {
	return r.db.Save(profile).Error
}
