package domain

// FinancingOption is the chosen path for obtaining an installment plan.
// It drives which wizard sections, documents, and payload shape apply.
type FinancingOption string

const (
	OptionCreditCard  FinancingOption = "credit_card"
	OptionNewCard     FinancingOption = "new_card"
	OptionDownPayment FinancingOption = "down_payment"
)

// Valid reports whether the option is one of the three supported paths.
func (o FinancingOption) Valid() bool {
	switch o {
	case OptionCreditCard, OptionNewCard, OptionDownPayment:
		return true
	}
	return false
}

// FormSection identifies a wizard data-collection section.
type FormSection string

const (
	SectionApplicantInfo  FormSection = "applicant_info"
	SectionGuarantorInfo  FormSection = "guarantor_info"
	SectionBankOrCardInfo FormSection = "bank_or_card_info"
	SectionEMIParameters  FormSection = "emi_parameters"
)

// DocumentSlot names a single document attachment position on an application.
// Each slot holds at most one uploaded file.
type DocumentSlot string

const (
	SlotApplicantPhoto        DocumentSlot = "applicant_photo"
	SlotApplicantCitizenFront DocumentSlot = "applicant_citizenship_front"
	SlotApplicantCitizenBack  DocumentSlot = "applicant_citizenship_back"
	SlotGuarantorPhoto        DocumentSlot = "guarantor_photo"
	SlotGuarantorCitizenFront DocumentSlot = "guarantor_citizenship_front"
	SlotGuarantorCitizenBack  DocumentSlot = "guarantor_citizenship_back"
	SlotBankStatement         DocumentSlot = "bank_statement"
	SlotSignature             DocumentSlot = "signature"
)

// AllDocumentSlots lists every slot in display order.
var AllDocumentSlots = []DocumentSlot{
	SlotApplicantPhoto,
	SlotApplicantCitizenFront,
	SlotApplicantCitizenBack,
	SlotGuarantorPhoto,
	SlotGuarantorCitizenFront,
	SlotGuarantorCitizenBack,
	SlotBankStatement,
	SlotSignature,
}

// DisplayName returns the human-readable document name used in
// missing-document notices.
func (s DocumentSlot) DisplayName() string {
	switch s {
	case SlotApplicantPhoto:
		return "Applicant Photo"
	case SlotApplicantCitizenFront:
		return "Applicant Citizenship (Front)"
	case SlotApplicantCitizenBack:
		return "Applicant Citizenship (Back)"
	case SlotGuarantorPhoto:
		return "Guarantor Photo"
	case SlotGuarantorCitizenFront:
		return "Guarantor Citizenship (Front)"
	case SlotGuarantorCitizenBack:
		return "Guarantor Citizenship (Back)"
	case SlotBankStatement:
		return "Bank Statement"
	case SlotSignature:
		return "Signature"
	}
	return string(s)
}

// Valid reports whether the slot is a known document slot.
func (s DocumentSlot) Valid() bool {
	for _, known := range AllDocumentSlots {
		if s == known {
			return true
		}
	}
	return false
}

// Gender of the applicant or guarantor.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// MaritalStatus of the applicant or guarantor.
type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "single"
	MaritalMarried MaritalStatus = "married"
)

// ApplicationStatus tracks the wizard-session lifecycle.
type ApplicationStatus string

const (
	ApplicationDraft     ApplicationStatus = "draft"
	ApplicationSubmitted ApplicationStatus = "submitted"
)

// FileType represents the allowed file types for document upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}
