package validator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

var (
	// 16 digits grouped in fours, optionally separated by a space or dash.
	cardNumberPattern = regexp.MustCompile(`^\d{4}([ -]?\d{4}){3}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// cardRules validates the credit-card flavor of the bank-or-card section.
func cardRules() RuleSet {
	return RuleSet{
		{Field: "bank_name", Check: func(app *domain.Application, _ Env) string {
			if strings.TrimSpace(app.BankOrCard.BankName) == "" {
				return "card issuing bank is required"
			}
			return ""
		}},
		{Field: "card_holder_name", Check: func(app *domain.Application, _ Env) string {
			if len(strings.TrimSpace(app.BankOrCard.CardHolderName)) < 2 {
				return "card holder name must be at least 2 characters"
			}
			return ""
		}},
		{Field: "card_number", Check: func(app *domain.Application, _ Env) string {
			if !cardNumberPattern.MatchString(strings.TrimSpace(app.BankOrCard.CardNumber)) {
				return "card number must be 16 digits"
			}
			return ""
		}},
		{Field: "card_expiry", Check: func(app *domain.Application, _ Env) string {
			if !cardExpiryPattern.MatchString(strings.TrimSpace(app.BankOrCard.CardExpiry)) {
				return "expiry must be in MM/YY format"
			}
			return ""
		}},
		{Field: "credit_limit", Check: func(app *domain.Application, _ Env) string {
			return positiveNumber(app.BankOrCard.CreditLimit, "credit limit")
		}},
	}
}

// positiveNumber checks that raw parses as a number greater than zero.
func positiveNumber(raw, label string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		return label + " must be a positive number"
	}
	return ""
}
