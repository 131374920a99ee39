package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

func validApplicant() domain.PersonInfo {
	return domain.PersonInfo{
		FullName:      "Sita Sharma",
		Email:         "sita@example.com",
		Phone:         "9841234567",
		Gender:        domain.GenderFemale,
		MaritalStatus: domain.MaritalSingle,
		NationalID:    "12-34-56-78901",
		Address:       "Baneshwor, Kathmandu",
	}
}

func appWith(applicant domain.PersonInfo) *domain.Application {
	return &domain.Application{Applicant: applicant}
}

func TestPersonalRules_ValidApplicantPasses(t *testing.T) {
	rules := personalRules(applicantOf, true)
	errs := rules.Validate(appWith(validApplicant()), Env{})
	assert.Empty(t, errs)
}

func TestPersonalRules_CollectsAllFailures(t *testing.T) {
	rules := personalRules(applicantOf, true)
	errs := rules.Validate(appWith(domain.PersonInfo{}), Env{})

	assert.Equal(t, []string{
		"address", "email", "full_name", "gender", "marital_status", "national_id", "phone",
	}, errs.Fields())
}

func TestPersonalRules_PartnerNameRequiredOnlyWhenMarried(t *testing.T) {
	rules := personalRules(applicantOf, true)

	applicant := validApplicant()
	applicant.MaritalStatus = domain.MaritalMarried
	errs := rules.Validate(appWith(applicant), Env{})
	require.Contains(t, errs, "partner_name")

	applicant.PartnerName = "Hari Sharma"
	errs = rules.Validate(appWith(applicant), Env{})
	assert.Empty(t, errs)
}

func TestPersonalRules_GuarantorEmailOptionalButFormatChecked(t *testing.T) {
	rules := personalRules(guarantorOf, false)

	app := &domain.Application{Guarantor: validApplicant()}
	app.Guarantor.Email = ""
	errs := rules.Validate(app, Env{})
	assert.NotContains(t, errs, "email")

	app.Guarantor.Email = "not-an-email"
	errs = rules.Validate(app, Env{})
	assert.Contains(t, errs, "email")
}

func TestPersonalRules_PhoneFormat(t *testing.T) {
	rules := personalRules(applicantOf, true)
	applicant := validApplicant()

	for _, phone := range []string{"9841234567", "9761234567", "9612345678"} {
		applicant.Phone = phone
		assert.NotContains(t, rules.Validate(appWith(applicant), Env{}), "phone", phone)
	}
	for _, phone := range []string{"12345", "9941234567", "984123456", "98412345678"} {
		applicant.Phone = phone
		assert.Contains(t, rules.Validate(appWith(applicant), Env{}), "phone", phone)
	}
}

func TestCardRules(t *testing.T) {
	app := &domain.Application{BankOrCard: domain.BankOrCardInfo{
		BankName:       "Nabil Bank",
		CardHolderName: "Sita Sharma",
		CardNumber:     "4111 1111 1111 1111",
		CardExpiry:     "09/27",
		CreditLimit:    "250000",
	}}

	errs := cardRules().Validate(app, Env{})
	assert.Empty(t, errs)

	app.BankOrCard.CardNumber = "4111-1111-1111-1111"
	assert.Empty(t, cardRules().Validate(app, Env{}))

	app.BankOrCard.CardNumber = "1234"
	app.BankOrCard.CardExpiry = "13/27"
	app.BankOrCard.CreditLimit = "-5"
	errs = cardRules().Validate(app, Env{})
	assert.Contains(t, errs, "card_number")
	assert.Contains(t, errs, "card_expiry")
	assert.Contains(t, errs, "credit_limit")
}

func TestBankAccountRules(t *testing.T) {
	app := &domain.Application{BankOrCard: domain.BankOrCardInfo{
		BankName:      "NIC Asia Bank",
		AccountNumber: "0123456789",
		Branch:        "Lalitpur",
		MonthlySalary: "85000",
	}}
	assert.Empty(t, bankAccountRules().Validate(app, Env{}))

	app.BankOrCard.MonthlySalary = "0"
	errs := bankAccountRules().Validate(app, Env{})
	assert.Contains(t, errs, "monthly_salary")
}

func TestEMIParamRules(t *testing.T) {
	app := &domain.Application{EMI: domain.EMIParameters{
		DownPayment:  "20%",
		TenureMonths: 12,
		BankName:     "Nabil Bank",
	}}
	env := Env{ProductPrice: 100000}

	assert.Empty(t, emiParamRules(true).Validate(app, env))

	app.EMI.DownPayment = "150%"
	errs := emiParamRules(true).Validate(app, env)
	assert.Contains(t, errs, "down_payment")

	app.EMI.DownPayment = "120000"
	errs = emiParamRules(true).Validate(app, env)
	assert.Contains(t, errs, "down_payment")

	app.EMI.DownPayment = ""
	app.EMI.TenureMonths = 0
	errs = emiParamRules(true).Validate(app, env)
	assert.NotContains(t, errs, "down_payment")
	assert.Contains(t, errs, "tenure_months")

	// Credit-card flavor does not ask for a bank.
	app.EMI = domain.EMIParameters{TenureMonths: 6}
	assert.Empty(t, emiParamRules(false).Validate(app, env))
}

func TestSchemaFor(t *testing.T) {
	tests := []struct {
		section domain.FormSection
		option  domain.FinancingOption
		field   string
	}{
		{domain.SectionApplicantInfo, domain.OptionCreditCard, "full_name"},
		{domain.SectionGuarantorInfo, domain.OptionDownPayment, "full_name"},
		{domain.SectionBankOrCardInfo, domain.OptionCreditCard, "card_number"},
		{domain.SectionBankOrCardInfo, domain.OptionNewCard, "account_number"},
		{domain.SectionEMIParameters, domain.OptionDownPayment, "bank_name"},
	}
	for _, tt := range tests {
		schema := SchemaFor(tt.section, tt.option)
		require.NotNil(t, schema, "%s/%s", tt.section, tt.option)

		found := false
		for _, rule := range schema {
			if rule.Field == tt.field {
				found = true
				break
			}
		}
		assert.True(t, found, "%s/%s should carry rule %s", tt.section, tt.option, tt.field)
	}

	// Credit-card plan parameters omit the bank rule.
	schema := SchemaFor(domain.SectionEMIParameters, domain.OptionCreditCard)
	for _, rule := range schema {
		assert.NotEqual(t, "bank_name", rule.Field)
	}

	assert.Nil(t, SchemaFor(domain.FormSection("unknown"), domain.OptionCreditCard))
}
