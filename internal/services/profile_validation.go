package services

import (
	"zogiraa_backend/internal/models"
)

/*
Full-document validators for the final wizard step. Presence checks
only: no format or range validation beyond what the checks state. Each
returns the JSON names of the fields still missing, empty means the
document may be marked complete.
*/

func missingWorkerFields(p *models.WorkerProfile) []string {
	var missing []string

	// Step 1 - personal
	if p.FullName == "" {
		missing = append(missing, "fullName")
	}
	if p.AadharNumber == "" {
		missing = append(missing, "aadharNumber")
	}
	if p.DOB == "" {
		missing = append(missing, "dob")
	}
	if p.Gender == "" {
		missing = append(missing, "gender")
	}

	// Step 2 - address
	missing = append(missing, missingAddressFields(p.Address.Data())...)

	// Step 3 - job & skills
	if len(p.JobCategories) == 0 {
		missing = append(missing, "jobCategories")
	}
	if p.SkillLevel == "" {
		missing = append(missing, "skillLevel")
	}

	// Step 4 - bank details
	if p.BankAccountNumber == "" {
		missing = append(missing, "bankAccountNumber")
	}
	if p.IFSCCode == "" {
		missing = append(missing, "ifscCode")
	}
	if p.PreferredPaymentMode == "" || p.PreferredPaymentMode == models.PaymentModeNone {
		missing = append(missing, "preferredPaymentMode")
	}

	// Step 5 - agreement
	if !p.ReadDocsAccepted {
		missing = append(missing, "readDocsAccepted")
	}

	return missing
}

func missingEmployerFields(p *models.EmployerProfile) []string {
	var missing []string

	// Step 1 - personal
	if p.FullName == "" {
		missing = append(missing, "fullName")
	}
	if p.AadharNumber == "" {
		missing = append(missing, "aadharNumber")
	}
	if p.DOB == "" {
		missing = append(missing, "dob")
	}
	if p.Gender == "" {
		missing = append(missing, "gender")
	}

	// Step 2 - address
	missing = append(missing, missingAddressFields(p.Address.Data())...)

	// Step 3 - company
	if p.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	if p.ContactNumber == "" {
		missing = append(missing, "contactNumber")
	}

	// Step 4 - bank & payment
	if p.BankAccountNumber == "" {
		missing = append(missing, "bankAccountNumber")
	}
	if p.IFSCCode == "" {
		missing = append(missing, "ifscCode")
	}
	if p.PreferredPaymentMode == "" || p.PreferredPaymentMode == models.PaymentModeNone {
		missing = append(missing, "preferredPaymentMode")
	}

	// Step 5 wage preferences are optional.

	// Step 6 - agreement; document uploads stay optional
	if !p.ReadDocsAccepted {
		missing = append(missing, "readDocsAccepted")
	}

	return missing
}

func missingSupplierFields(p *models.SupplierProfile) []string {
	var missing []string

	// Step 1 - personal & business
	if p.FullName == "" {
		missing = append(missing, "fullName")
	}
	if p.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	if p.MobileNo == "" {
		missing = append(missing, "mobileNo")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.City == "" {
		missing = append(missing, "city")
	}
	if p.State == "" {
		missing = append(missing, "state")
	}
	if p.GSTNumber == "" {
		missing = append(missing, "gstNumber")
	}
	if p.BusinessAddress == "" {
		missing = append(missing, "businessAddress")
	}

	// Step 2 - categories
	if len(p.ProductCategories) == 0 {
		missing = append(missing, "productCategories")
	}

	// Step 3 - at least one fully described product
	if len(p.Products) == 0 {
		missing = append(missing, "products")
	} else {
		for _, product := range p.Products {
			if product.ProductName == "" || product.Price == 0 || product.Unit == "" || product.MinOrderQty == 0 {
				missing = append(missing, "products")
				break
			}
		}
	}

	// Step 4 - documents, payout details, confirmations
	if p.GSTCertificateURL == "" {
		missing = append(missing, "gstCertificateUrl")
	}
	if p.PANCardURL == "" {
		missing = append(missing, "panCardUrl")
	}
	if p.AccountHolderName == "" {
		missing = append(missing, "accountHolderName")
	}
	if p.AccountNumber == "" {
		missing = append(missing, "accountNumber")
	}
	if p.IFSCCode == "" {
		missing = append(missing, "ifscCode")
	}
	if !p.DocumentsConfirmed {
		missing = append(missing, "documentsConfirmed")
	}
	if !p.SupplierTermsAccepted {
		missing = append(missing, "supplierTermsAccepted")
	}

	// Step 5 - final review
	if !p.ReadDocsAccepted {
		missing = append(missing, "readDocsAccepted")
	}

	return missing
}

func missingAddressFields(addr models.Address) []string {
	var missing []string
	if addr.VillageOrCity == "" {
		missing = append(missing, "address.villageOrCity")
	}
	if addr.District == "" {
		missing = append(missing, "address.district")
	}
	if addr.State == "" {
		missing = append(missing, "address.state")
	}
	if addr.Pincode == "" {
		missing = append(missing, "address.pincode")
	}
	return missing
}
