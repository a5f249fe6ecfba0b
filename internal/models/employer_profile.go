package models

import "gorm.io/datatypes"

const EmployerMaxStep = 6

// EmployerProfile is the six-step employer wizard document, one per account.
type EmployerProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`

	// Step 1 - Personal details
	FullName        string `json:"fullName"`
	MobileNo        string `json:"mobileNo"`
	AadharNumber    string `json:"aadharNumber"`
	DOB             string `json:"dob"`
	Gender          string `gorm:"type:varchar(10)" json:"gender"`
	ProfilePhotoURL string `json:"profilePhotoUrl"`

	// Step 2 - Address
	Address datatypes.JSONType[Address] `json:"address"`

	// Step 3 - Company details
	CompanyName           string `json:"companyName"`
	GSTNumber             string `json:"gstNumber"`
	ContactNumber         string `json:"contactNumber"`
	ContactNumberVerified bool   `gorm:"default:false" json:"contactNumberVerified"`

	// Step 4 - Bank & payment setup
	BankAccountNumber    string      `json:"bankAccountNumber"`
	IFSCCode             string      `json:"ifscCode"`
	UPIID                string      `json:"upiId"`
	PreferredPaymentMode PaymentMode `gorm:"type:varchar(10);default:'none'" json:"preferredPaymentMode"`
	QRCodeImageURL       string      `json:"qrCodeImageUrl"`

	// Step 5 - Wage & payment preferences for job postings
	DefaultWagePerDay  float64     `json:"defaultWagePerDay"`
	DefaultPaymentMode PaymentMode `gorm:"type:varchar(10)" json:"defaultPaymentMode"`

	// Step 6 - Documents
	AadharFrontURL   string `json:"aadharFrontUrl"`
	AadharBackURL    string `json:"aadharBackUrl"`
	BankStatementURL string `json:"bankStatementUrl"`
	ReadDocsAccepted bool   `gorm:"default:false" json:"readDocsAccepted"`

	ProfileCompletionStep int                `gorm:"default:1" json:"profileCompletionStep"`
	IsProfileComplete     bool               `gorm:"default:false" json:"isProfileComplete"`
	VerificationStatus    VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verificationStatus"`
}

func (p *EmployerProfile) CompletionStep() int {
	if p.ProfileCompletionStep == 0 {
		return 1
	}
	return p.ProfileCompletionStep
}

func (p *EmployerProfile) SetCompletionStep(step int) { p.ProfileCompletionStep = step }
func (p *EmployerProfile) Complete() bool             { return p.IsProfileComplete }
func (p *EmployerProfile) MarkComplete()              { p.IsProfileComplete = true }
