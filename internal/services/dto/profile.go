package dto

import (
	"encoding/json"

	"zogiraa_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type ProfileStatusResponse struct {
	IsProfileComplete     bool            `json:"isProfileComplete"`
	ProfileCompletionStep int             `json:"profileCompletionStep"`
	Profile               interface{}     `json:"profile"`
	Role                  models.UserRole `json:"role"`
}

type StepUpdateRequest struct {
	Step int             `json:"step" validate:"required,min=1"`
	Data json.RawMessage `json:"data" validate:"required"`
}

type StepUpdateResponse struct {
	Success               bool        `json:"success"`
	Profile               interface{} `json:"profile"`
	ProfileCompletionStep int         `json:"profileCompletionStep"`
	IsProfileComplete     bool        `json:"isProfileComplete"`
}

/*
Per-role step patches. Every field the wizard may submit is enumerated
here with a pointer type: only keys present in the request are applied,
and unknown keys are rejected at decode time. This replaces the
assign-anything merge of the legacy backend, which let clients write
arbitrary document fields (including the completion flag).
*/

// WorkerProfileUpdate enumerates the writable worker wizard fields.
type WorkerProfileUpdate struct {
	FullName        *string         `json:"fullName"`
	MobileNo        *string         `json:"mobileNo"`
	AadharNumber    *string         `json:"aadharNumber"`
	DOB             *string         `json:"dob"`
	Gender          *string         `json:"gender"`
	ProfilePhotoURL *string         `json:"profilePhotoUrl"`
	Address         *models.Address `json:"address"`

	JobCategories     *[]string `json:"jobCategories"`
	SkillLevel        *string   `json:"skillLevel"`
	YearsOfExperience *int      `json:"yearsOfExperience"`
	ToolsOwned        *[]string `json:"toolsOwned"`

	PreferredWorkType    *string             `json:"preferredWorkType"`
	PreferredLocation    *string             `json:"preferredLocation"`
	WorkTimeFrom         *string             `json:"workTimeFrom"`
	WorkTimeTo           *string             `json:"workTimeTo"`
	ExpectedWage         *float64            `json:"expectedWage"`
	WillingToRelocate    *bool               `json:"willingToRelocate"`
	BankAccountNumber    *string             `json:"bankAccountNumber"`
	IFSCCode             *string             `json:"ifscCode"`
	UPIID                *string             `json:"upiId"`
	PreferredPaymentMode *models.PaymentMode `json:"preferredPaymentMode"`
	QRCodeImageURL       *string             `json:"qrCodeImageUrl"`
	AadharFrontURL       *string             `json:"aadharFrontUrl"`
	AadharBackURL        *string             `json:"aadharBackUrl"`
	BankStatementURL     *string             `json:"bankStatementUrl"`
	MobileType           *string             `json:"mobileType"`

	BenefitKitItems  *[]string `json:"benefitKitItems"`
	ReadDocsAccepted *bool     `json:"readDocsAccepted"`
}

// Apply overwrites the profile fields present in the patch. The
// address block is replaced wholesale, never deep-merged.
func (u *WorkerProfileUpdate) Apply(p *models.WorkerProfile) {
	setString(u.FullName, &p.FullName)
	setString(u.MobileNo, &p.MobileNo)
	setString(u.AadharNumber, &p.AadharNumber)
	setString(u.DOB, &p.DOB)
	setString(u.Gender, &p.Gender)
	setString(u.ProfilePhotoURL, &p.ProfilePhotoURL)
	if u.Address != nil {
		p.Address = datatypes.NewJSONType(*u.Address)
	}

	setStringArray(u.JobCategories, &p.JobCategories)
	setString(u.SkillLevel, &p.SkillLevel)
	if u.YearsOfExperience != nil {
		p.YearsOfExperience = *u.YearsOfExperience
	}
	setStringArray(u.ToolsOwned, &p.ToolsOwned)

	setString(u.PreferredWorkType, &p.PreferredWorkType)
	setString(u.PreferredLocation, &p.PreferredLocation)
	setString(u.WorkTimeFrom, &p.WorkTimeFrom)
	setString(u.WorkTimeTo, &p.WorkTimeTo)
	if u.ExpectedWage != nil {
		p.ExpectedWage = *u.ExpectedWage
	}
	if u.WillingToRelocate != nil {
		p.WillingToRelocate = *u.WillingToRelocate
	}
	setString(u.BankAccountNumber, &p.BankAccountNumber)
	setString(u.IFSCCode, &p.IFSCCode)
	setString(u.UPIID, &p.UPIID)
	if u.PreferredPaymentMode != nil {
		p.PreferredPaymentMode = *u.PreferredPaymentMode
	}
	setString(u.QRCodeImageURL, &p.QRCodeImageURL)
	setString(u.AadharFrontURL, &p.AadharFrontURL)
	setString(u.AadharBackURL, &p.AadharBackURL)
	setString(u.BankStatementURL, &p.BankStatementURL)
	setString(u.MobileType, &p.MobileType)

	setStringArray(u.BenefitKitItems, &p.BenefitKitItems)
	if u.ReadDocsAccepted != nil {
		p.ReadDocsAccepted = *u.ReadDocsAccepted
	}
}

// EmployerProfileUpdate enumerates the writable employer wizard fields.
type EmployerProfileUpdate struct {
	FullName        *string         `json:"fullName"`
	MobileNo        *string         `json:"mobileNo"`
	AadharNumber    *string         `json:"aadharNumber"`
	DOB             *string         `json:"dob"`
	Gender          *string         `json:"gender"`
	ProfilePhotoURL *string         `json:"profilePhotoUrl"`
	Address         *models.Address `json:"address"`

	CompanyName           *string `json:"companyName"`
	GSTNumber             *string `json:"gstNumber"`
	ContactNumber         *string `json:"contactNumber"`
	ContactNumberVerified *bool   `json:"contactNumberVerified"`

	BankAccountNumber    *string             `json:"bankAccountNumber"`
	IFSCCode             *string             `json:"ifscCode"`
	UPIID                *string             `json:"upiId"`
	PreferredPaymentMode *models.PaymentMode `json:"preferredPaymentMode"`
	QRCodeImageURL       *string             `json:"qrCodeImageUrl"`

	DefaultWagePerDay  *float64            `json:"defaultWagePerDay"`
	DefaultPaymentMode *models.PaymentMode `json:"defaultPaymentMode"`

	AadharFrontURL   *string `json:"aadharFrontUrl"`
	AadharBackURL    *string `json:"aadharBackUrl"`
	BankStatementURL *string `json:"bankStatementUrl"`
	ReadDocsAccepted *bool   `json:"readDocsAccepted"`
}

func (u *EmployerProfileUpdate) Apply(p *models.EmployerProfile) {
	setString(u.FullName, &p.FullName)
	setString(u.MobileNo, &p.MobileNo)
	setString(u.AadharNumber, &p.AadharNumber)
	setString(u.DOB, &p.DOB)
	setString(u.Gender, &p.Gender)
	setString(u.ProfilePhotoURL, &p.ProfilePhotoURL)
	if u.Address != nil {
		p.Address = datatypes.NewJSONType(*u.Address)
	}

	setString(u.CompanyName, &p.CompanyName)
	setString(u.GSTNumber, &p.GSTNumber)
	setString(u.ContactNumber, &p.ContactNumber)
	if u.ContactNumberVerified != nil {
		p.ContactNumberVerified = *u.ContactNumberVerified
	}

	setString(u.BankAccountNumber, &p.BankAccountNumber)
	setString(u.IFSCCode, &p.IFSCCode)
	setString(u.UPIID, &p.UPIID)
	if u.PreferredPaymentMode != nil {
		p.PreferredPaymentMode = *u.PreferredPaymentMode
	}
	setString(u.QRCodeImageURL, &p.QRCodeImageURL)

	if u.DefaultWagePerDay != nil {
		p.DefaultWagePerDay = *u.DefaultWagePerDay
	}
	if u.DefaultPaymentMode != nil {
		p.DefaultPaymentMode = *u.DefaultPaymentMode
	}

	setString(u.AadharFrontURL, &p.AadharFrontURL)
	setString(u.AadharBackURL, &p.AadharBackURL)
	setString(u.BankStatementURL, &p.BankStatementURL)
	if u.ReadDocsAccepted != nil {
		p.ReadDocsAccepted = *u.ReadDocsAccepted
	}
}

// SupplierProfileUpdate enumerates the writable supplier wizard fields.
type SupplierProfileUpdate struct {
	FullName             *string `json:"fullName"`
	CompanyName          *string `json:"companyName"`
	MobileNo             *string `json:"mobileNo"`
	Email                *string `json:"email"`
	City                 *string `json:"city"`
	State                *string `json:"state"`
	GSTNumber            *string `json:"gstNumber"`
	BusinessAddress      *string `json:"businessAddress"`
	MobileNumberVerified *bool   `json:"mobileNumberVerified"`

	ProductCategories *[]string `json:"productCategories"`

	Products *[]models.Product `json:"products"`

	GSTCertificateURL     *string `json:"gstCertificateUrl"`
	PANCardURL            *string `json:"panCardUrl"`
	UdyamCertificateURL   *string `json:"udyamCertificateUrl"`
	TradeLicenseURL       *string `json:"tradeLicenseUrl"`
	AccountHolderName     *string `json:"accountHolderName"`
	AccountNumber         *string `json:"accountNumber"`
	IFSCCode              *string `json:"ifscCode"`
	CancelledChequeURL    *string `json:"cancelledChequeUrl"`
	DocumentsConfirmed    *bool   `json:"documentsConfirmed"`
	SupplierTermsAccepted *bool   `json:"supplierTermsAccepted"`

	ReadDocsAccepted *bool `json:"readDocsAccepted"`
}

// Apply overwrites the profile fields present in the patch. A products
// list replaces the stored list atomically while sibling scalar fields
// in the same patch still apply.
func (u *SupplierProfileUpdate) Apply(p *models.SupplierProfile) {
	setString(u.FullName, &p.FullName)
	setString(u.CompanyName, &p.CompanyName)
	setString(u.MobileNo, &p.MobileNo)
	setString(u.Email, &p.Email)
	setString(u.City, &p.City)
	setString(u.State, &p.State)
	setString(u.GSTNumber, &p.GSTNumber)
	setString(u.BusinessAddress, &p.BusinessAddress)
	if u.MobileNumberVerified != nil {
		p.MobileNumberVerified = *u.MobileNumberVerified
	}

	setStringArray(u.ProductCategories, &p.ProductCategories)

	if u.Products != nil {
		p.Products = datatypes.JSONSlice[models.Product](*u.Products)
	}

	setString(u.GSTCertificateURL, &p.GSTCertificateURL)
	setString(u.PANCardURL, &p.PANCardURL)
	setString(u.UdyamCertificateURL, &p.UdyamCertificateURL)
	setString(u.TradeLicenseURL, &p.TradeLicenseURL)
	setString(u.AccountHolderName, &p.AccountHolderName)
	setString(u.AccountNumber, &p.AccountNumber)
	setString(u.IFSCCode, &p.IFSCCode)
	setString(u.CancelledChequeURL, &p.CancelledChequeURL)
	if u.DocumentsConfirmed != nil {
		p.DocumentsConfirmed = *u.DocumentsConfirmed
	}
	if u.SupplierTermsAccepted != nil {
		p.SupplierTermsAccepted = *u.SupplierTermsAccepted
	}
	if u.ReadDocsAccepted != nil {
		p.ReadDocsAccepted = *u.ReadDocsAccepted
	}
}

func setString(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

func setStringArray(src *[]string, dst *pq.StringArray) {
	if src != nil {
		*dst = pq.StringArray(*src)
	}
}
