package wizard

import (
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// Step indices. Step 0 is always the financing-option choice, steps 1-3 are
// option-specific data collection, step 4 is review and submit.
const (
	StepChooseOption = 0
	StepReview       = 4
)

// StepSpec describes one data-collection step: the section it edits and the
// documents that must be present before leaving it. OptionalDocuments are
// offered on the step but never gate advancement.
type StepSpec struct {
	Section           domain.FormSection
	RequiredDocuments []domain.DocumentSlot
	OptionalDocuments []domain.DocumentSlot
}

// stepSequences maps each financing option to its data-collection steps in
// order (index 0 of the slice is wizard step 1).
var stepSequences = map[domain.FinancingOption][]StepSpec{
	domain.OptionCreditCard: {
		{Section: domain.SectionBankOrCardInfo},
		{Section: domain.SectionApplicantInfo},
		{Section: domain.SectionEMIParameters},
	},
	domain.OptionNewCard: {
		{
			Section: domain.SectionApplicantInfo,
			RequiredDocuments: []domain.DocumentSlot{
				domain.SlotApplicantPhoto,
				domain.SlotApplicantCitizenFront,
				domain.SlotApplicantCitizenBack,
			},
		},
		{
			Section:           domain.SectionBankOrCardInfo,
			RequiredDocuments: []domain.DocumentSlot{domain.SlotBankStatement},
		},
		{Section: domain.SectionEMIParameters},
	},
	domain.OptionDownPayment: {
		{
			Section: domain.SectionApplicantInfo,
			RequiredDocuments: []domain.DocumentSlot{
				domain.SlotApplicantPhoto,
				domain.SlotApplicantCitizenFront,
				domain.SlotApplicantCitizenBack,
			},
		},
		{
			Section: domain.SectionGuarantorInfo,
			RequiredDocuments: []domain.DocumentSlot{
				domain.SlotGuarantorPhoto,
				domain.SlotGuarantorCitizenFront,
				domain.SlotGuarantorCitizenBack,
			},
		},
		{
			Section:           domain.SectionEMIParameters,
			OptionalDocuments: []domain.DocumentSlot{domain.SlotSignature},
		},
	},
}

// StepFor returns the spec for a data-collection step (1-3) of an option.
// The ok result is false for step 0, the review step, and unknown options.
func StepFor(option domain.FinancingOption, stepIndex int) (StepSpec, bool) {
	seq, found := stepSequences[option]
	if !found || stepIndex < 1 || stepIndex > len(seq) {
		return StepSpec{}, false
	}
	return seq[stepIndex-1], true
}

// StepCount returns the number of data-collection steps for an option.
func StepCount(option domain.FinancingOption) int {
	return len(stepSequences[option])
}
