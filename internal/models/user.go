package models

import "time"

// User is the phone-bound account. The role is fixed at creation and
// decides which profile schema applies to the account.
type User struct {
	BaseModel
	Phone string   `gorm:"uniqueIndex;not null" json:"phone"`
	Role  UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	WorkerProfile   *WorkerProfile   `gorm:"foreignKey:UserID" json:"-"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserID" json:"-"`
	SupplierProfile *SupplierProfile `gorm:"foreignKey:UserID" json:"-"`
}

// OTPCode is one issued verification code. Several rows may exist for
// the same phone; verification always picks the latest-expiring one.
// Rows are never purged, expiry is checked at verify time.
type OTPCode struct {
	BaseModel
	Phone     string    `gorm:"index;not null" json:"phone"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
