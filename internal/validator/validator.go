package validator

import (
	"sort"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// Env carries the per-session context a rule may need beyond the
// application itself.
type Env struct {
	ProductPrice float64
}

// Rule checks a single field of an application section. Check returns an
// empty string when the field passes, otherwise a human-readable message.
type Rule struct {
	Field string
	Check func(app *domain.Application, env Env) string
}

// RuleSet is the ordered list of rules for one (section, option) pairing.
type RuleSet []Rule

// FieldErrors maps field names to a single human-readable message each.
type FieldErrors map[string]string

// Fields returns the failing field names in sorted order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for f := range fe {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Validate runs every rule and collects all failures in one pass. A field
// keeps only its first failing message.
func (rs RuleSet) Validate(app *domain.Application, env Env) FieldErrors {
	errs := make(FieldErrors)
	for _, rule := range rs {
		if _, seen := errs[rule.Field]; seen {
			continue
		}
		if msg := rule.Check(app, env); msg != "" {
			errs[rule.Field] = msg
		}
	}
	return errs
}
