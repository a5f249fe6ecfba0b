package repositories

import (
	"errors"

	"zogiraa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOTPNotFound = errors.New("otp not found")

type OTPRepository interface {
	Create(code *models.OTPCode) error
	// FindLatestByPhone returns the record with the latest expiry for
	// the phone. Several codes may coexist, most recently issued wins.
	FindLatestByPhone(phone string) (*models.OTPCode, error)
}

type OTPRepositoryImpl struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &OTPRepositoryImpl{db: db}
}

func (r *OTPRepositoryImpl) Create(code *models.OTPCode) error {
	return r.db.Create(code).Error
}

func (r *OTPRepositoryImpl) FindLatestByPhone(phone string) (*models.OTPCode, error) {
	var record models.OTPCode
	err := r.db.Where("phone = ?", phone).Order("expires_at DESC").First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOTPNotFound
		}
		return nil, err
	}
	return &record, nil
}
