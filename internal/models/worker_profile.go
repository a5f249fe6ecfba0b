package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const WorkerMaxStep = 5

// WorkerProfile is the five-step worker wizard document, one per account.
type WorkerProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`

	// Step 1 - Personal
	FullName        string `json:"fullName"`
	MobileNo        string `json:"mobileNo"`
	AadharNumber    string `json:"aadharNumber"`
	DOB             string `json:"dob"`
	Gender          string `gorm:"type:varchar(10)" json:"gender"`
	ProfilePhotoURL string `json:"profilePhotoUrl"`

	// Step 2 - Address
	Address datatypes.JSONType[Address] `json:"address"`

	// Step 3 - Job & Skills
	JobCategories     pq.StringArray `gorm:"type:text[]" json:"jobCategories"`
	SkillLevel        string         `json:"skillLevel"`
	YearsOfExperience int            `gorm:"default:0" json:"yearsOfExperience"`
	ToolsOwned        pq.StringArray `gorm:"type:text[]" json:"toolsOwned"`

	// Step 4 - Work preferences & payment
	PreferredWorkType    string      `json:"preferredWorkType"`
	PreferredLocation    string      `json:"preferredLocation"`
	WorkTimeFrom         string      `json:"workTimeFrom"`
	WorkTimeTo           string      `json:"workTimeTo"`
	ExpectedWage         float64     `json:"expectedWage"`
	WillingToRelocate    bool        `gorm:"default:false" json:"willingToRelocate"`
	BankAccountNumber    string      `json:"bankAccountNumber"`
	IFSCCode             string      `json:"ifscCode"`
	UPIID                string      `json:"upiId"`
	PreferredPaymentMode PaymentMode `gorm:"type:varchar(10);default:'none'" json:"preferredPaymentMode"`
	QRCodeImageURL       string      `json:"qrCodeImageUrl"`
	AadharFrontURL       string      `json:"aadharFrontUrl"`
	AadharBackURL        string      `json:"aadharBackUrl"`
	BankStatementURL     string      `json:"bankStatementUrl"`
	MobileType           string      `gorm:"type:varchar(20);default:'unknown'" json:"mobileType"`

	// Step 5 - Benefits kit & agreement
	BenefitKitItems  pq.StringArray `gorm:"type:text[]" json:"benefitKitItems"`
	ReadDocsAccepted bool           `gorm:"default:false" json:"readDocsAccepted"`

	ProfileCompletionStep int                `gorm:"default:1" json:"profileCompletionStep"`
	IsProfileComplete     bool               `gorm:"default:false" json:"isProfileComplete"`
	VerificationStatus    VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verificationStatus"`
}

func (p *WorkerProfile) CompletionStep() int {
	if p.ProfileCompletionStep == 0 {
		return 1
	}
	return p.ProfileCompletionStep
}

func (p *WorkerProfile) SetCompletionStep(step int) { p.ProfileCompletionStep = step }
func (p *WorkerProfile) Complete() bool             { return p.IsProfileComplete }
func (p *WorkerProfile) MarkComplete()              { p.IsProfileComplete = true }
