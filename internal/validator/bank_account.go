package validator

import (
	"strings"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// bankAccountRules validates the bank-account flavor of the bank-or-card
// section, used on the new-card and down-payment paths.
func bankAccountRules() RuleSet {
	return RuleSet{
		{Field: "bank_name", Check: func(app *domain.Application, _ Env) string {
			if strings.TrimSpace(app.BankOrCard.BankName) == "" {
				return "bank is required"
			}
			return ""
		}},
		{Field: "account_number", Check: func(app *domain.Application, _ Env) string {
			if len(strings.TrimSpace(app.BankOrCard.AccountNumber)) < 5 {
				return "account number must be at least 5 characters"
			}
			return ""
		}},
		{Field: "branch", Check: func(app *domain.Application, _ Env) string {
			if len(strings.TrimSpace(app.BankOrCard.Branch)) < 2 {
				return "branch must be at least 2 characters"
			}
			return ""
		}},
		{Field: "monthly_salary", Check: func(app *domain.Application, _ Env) string {
			return positiveNumber(app.BankOrCard.MonthlySalary, "monthly salary")
		}},
	}
}
