package validator

import (
	"regexp"
	"strings"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Local mobile numbers: ten digits starting 96/97/98.
	mobilePattern = regexp.MustCompile(`^9[678]\d{8}$`)
)

type personExtractor func(app *domain.Application) *domain.PersonInfo

func applicantOf(app *domain.Application) *domain.PersonInfo { return &app.Applicant }
func guarantorOf(app *domain.Application) *domain.PersonInfo { return &app.Guarantor }

// personalRules builds the personal-details ruleset for either the applicant
// or the guarantor section. The guarantor flavor does not require an email
// but still rejects a malformed one.
func personalRules(person personExtractor, requireEmail bool) RuleSet {
	rules := RuleSet{
		{Field: "full_name", Check: func(app *domain.Application, _ Env) string {
			if len(strings.TrimSpace(person(app).FullName)) < 2 {
				return "full name must be at least 2 characters"
			}
			return ""
		}},
		{Field: "email", Check: func(app *domain.Application, _ Env) string {
			email := strings.TrimSpace(person(app).Email)
			if email == "" {
				if requireEmail {
					return "email is required"
				}
				return ""
			}
			if !emailPattern.MatchString(email) {
				return "email is not a valid address"
			}
			return ""
		}},
		{Field: "phone", Check: func(app *domain.Application, _ Env) string {
			if !mobilePattern.MatchString(strings.TrimSpace(person(app).Phone)) {
				return "phone must be a valid mobile number"
			}
			return ""
		}},
		{Field: "gender", Check: func(app *domain.Application, _ Env) string {
			if person(app).Gender == "" {
				return "gender is required"
			}
			return ""
		}},
		{Field: "marital_status", Check: func(app *domain.Application, _ Env) string {
			if person(app).MaritalStatus == "" {
				return "marital status is required"
			}
			return ""
		}},
		{Field: "partner_name", Check: func(app *domain.Application, _ Env) string {
			p := person(app)
			if p.MaritalStatus == domain.MaritalMarried && strings.TrimSpace(p.PartnerName) == "" {
				return "partner name is required when married"
			}
			return ""
		}},
		{Field: "national_id", Check: func(app *domain.Application, _ Env) string {
			if len(strings.TrimSpace(person(app).NationalID)) < 5 {
				return "citizenship number must be at least 5 characters"
			}
			return ""
		}},
		{Field: "address", Check: func(app *domain.Application, _ Env) string {
			if len(strings.TrimSpace(person(app).Address)) < 5 {
				return "address must be at least 5 characters"
			}
			return ""
		}},
	}
	return rules
}
