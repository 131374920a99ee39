package validator

import (
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// SchemaFor maps a (section, financing option) pair to the ruleset that
// applies to that section's data. The mapping is deterministic:
//
//   - applicant info always uses the full personal-details rules;
//   - guarantor info uses the personal-details rules without a required email;
//   - bank-or-card info switches between card and bank-account flavors on the
//     credit-card option;
//   - the plan parameters omit the bank rule on the credit-card option.
func SchemaFor(section domain.FormSection, option domain.FinancingOption) RuleSet {
	switch section {
	case domain.SectionApplicantInfo:
		return personalRules(applicantOf, true)
	case domain.SectionGuarantorInfo:
		return personalRules(guarantorOf, false)
	case domain.SectionBankOrCardInfo:
		if option == domain.OptionCreditCard {
			return cardRules()
		}
		return bankAccountRules()
	case domain.SectionEMIParameters:
		return emiParamRules(option != domain.OptionCreditCard)
	}
	return nil
}
