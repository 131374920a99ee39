package validator

import (
	"strconv"
	"strings"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// emiParamRules validates the plan parameters collected on the final data
// step. The credit-card flavor omits the bank rule since the option already
// implies the card's bank.
func emiParamRules(requireBank bool) RuleSet {
	rules := RuleSet{
		{Field: "down_payment", Check: func(app *domain.Application, env Env) string {
			return checkDownPayment(app.EMI.DownPayment, env.ProductPrice)
		}},
		{Field: "tenure_months", Check: func(app *domain.Application, _ Env) string {
			if app.EMI.TenureMonths <= 0 {
				return "tenure is required"
			}
			return ""
		}},
	}
	if requireBank {
		rules = append(rules, Rule{Field: "bank_name", Check: func(app *domain.Application, _ Env) string {
			if strings.TrimSpace(app.EMI.BankName) == "" {
				return "bank is required"
			}
			return ""
		}})
	}
	return rules
}

// checkDownPayment accepts an empty value, an absolute amount within
// [0, price], or a percent within [0, 100].
func checkDownPayment(raw string, price float64) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if strings.HasSuffix(raw, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil || pct < 0 || pct > 100 {
			return "down payment percent must be between 0 and 100"
		}
		return ""
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 || amount > price {
		return "down payment must be between 0 and the product price"
	}
	return ""
}
