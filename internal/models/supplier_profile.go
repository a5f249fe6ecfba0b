package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const SupplierMaxStep = 5

// Product lives only inside a supplier's product list. The list is
// replaced wholesale when the client resubmits the product step.
type Product struct {
	ProductName     string  `json:"productName"`
	Brand           string  `json:"brand,omitempty"`
	Price           float64 `json:"price"`
	Unit            string  `json:"unit"`
	MinOrderQty     int     `json:"minOrderQty"`
	ProductImageURL string  `json:"productImageUrl,omitempty"`
}

// SupplierProfile is the five-step supplier wizard document, one per account.
type SupplierProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`

	// Step 1 - Personal & business details
	FullName             string `json:"fullName"`
	CompanyName          string `json:"companyName"`
	MobileNo             string `json:"mobileNo"`
	Email                string `json:"email"`
	City                 string `json:"city"`
	State                string `json:"state"`
	GSTNumber            string `json:"gstNumber"`
	BusinessAddress      string `json:"businessAddress"`
	MobileNumberVerified bool   `gorm:"default:false" json:"mobileNumberVerified"`

	// Step 2 - Product categories
	ProductCategories pq.StringArray `gorm:"type:text[]" json:"productCategories"`

	// Step 3 - Product details
	Products datatypes.JSONSlice[Product] `json:"products"`

	// Step 4 - Verification documents & payout details
	GSTCertificateURL     string `json:"gstCertificateUrl"`
	PANCardURL            string `json:"panCardUrl"`
	UdyamCertificateURL   string `json:"udyamCertificateUrl"`
	TradeLicenseURL       string `json:"tradeLicenseUrl"`
	AccountHolderName     string `json:"accountHolderName"`
	AccountNumber         string `json:"accountNumber"`
	IFSCCode              string `json:"ifscCode"`
	CancelledChequeURL    string `json:"cancelledChequeUrl"`
	DocumentsConfirmed    bool   `gorm:"default:false" json:"documentsConfirmed"`
	SupplierTermsAccepted bool   `gorm:"default:false" json:"supplierTermsAccepted"`

	// Step 5 - Final review
	ReadDocsAccepted bool `gorm:"default:false" json:"readDocsAccepted"`

	ProfileCompletionStep int                `gorm:"default:1" json:"profileCompletionStep"`
	IsProfileComplete     bool               `gorm:"default:false" json:"isProfileComplete"`
	VerificationStatus    VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verificationStatus"`
}

func (p *SupplierProfile) CompletionStep() int {
	if p.ProfileCompletionStep == 0 {
		return 1
	}
	return p.ProfileCompletionStep
}

func (p *SupplierProfile) SetCompletionStep(step int) { p.ProfileCompletionStep = step }
func (p *SupplierProfile) Complete() bool             { return p.IsProfileComplete }
func (p *SupplierProfile) MarkComplete()              { p.IsProfileComplete = true }
