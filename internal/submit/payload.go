package submit

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/emi"
)

// PayloadKind distinguishes the two request shapes the financing partner
// accepts.
type PayloadKind string

const (
	PayloadJSON      PayloadKind = "json"
	PayloadMultipart PayloadKind = "multipart"
)

// Attachment pairs a multipart field name with the stored document it sends.
type Attachment struct {
	FieldName string
	Ref       *domain.DocumentRef
}

// CreditCardPayload is the compact structured body for the credit-card path.
// No documents travel on this path.
type CreditCardPayload struct {
	FullName      string  `json:"full_name"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone"`
	ProductID     string  `json:"product_id"`
	FinanceAmount float64 `json:"finance_amount"`
	MonthlyIncome string  `json:"monthly_income,omitempty"`
	CardNumber    string  `json:"card_number"`
}

// Payload is the assembled submission request. JSON is set for the
// credit-card shape; Fields and Attachments for the multipart shapes.
type Payload struct {
	Kind        PayloadKind
	JSON        *CreditCardPayload
	Fields      map[string]string
	Attachments []Attachment
}

// Builder serializes a finished application into the request shape its
// financing option requires.
type Builder struct {
	calc *emi.Calculator
}

// NewBuilder creates a Builder using the given calculator for the computed
// finance figures.
func NewBuilder(calc *emi.Calculator) *Builder {
	return &Builder{calc: calc}
}

// BuildPayload dispatches on the financing option. Only documents that are
// actually present are attached; absent optional fields are omitted rather
// than sent empty.
func (b *Builder) BuildPayload(app *domain.Application) (*Payload, error) {
	switch app.FinancingOption {
	case domain.OptionCreditCard:
		return b.buildCreditCard(app), nil
	case domain.OptionNewCard:
		return b.buildNewCard(app)
	case domain.OptionDownPayment:
		return b.buildDownPayment(app)
	}
	return nil, domain.ErrInvalidOption
}

func (b *Builder) calculate(app *domain.Application) emi.Result {
	return b.calc.Calculate(emi.Input{
		Principal:    app.ProductPrice,
		TenureMonths: app.EMI.TenureMonths,
		DownPayment:  app.EMI.DownPayment,
		BankID:       app.EMI.BankName,
	})
}

func (b *Builder) buildCreditCard(app *domain.Application) *Payload {
	result := b.calculate(app)
	return &Payload{
		Kind: PayloadJSON,
		JSON: &CreditCardPayload{
			FullName:      app.Applicant.FullName,
			Email:         app.Applicant.Email,
			Phone:         app.Applicant.Phone,
			ProductID:     app.ProductID.String(),
			FinanceAmount: result.FinanceAmount,
			MonthlyIncome: app.BankOrCard.MonthlySalary,
			CardNumber:    app.BankOrCard.CardNumber,
		},
	}
}

// commonFields assembles the multipart fields shared by the new-card and
// down-payment shapes: product identity, option tag, applicant JSON, and
// the plan parameters with the bank name merged in.
func (b *Builder) commonFields(app *domain.Application) (map[string]string, error) {
	applicantJSON, err := json.Marshal(app.Applicant)
	if err != nil {
		return nil, fmt.Errorf("marshaling applicant info: %w", err)
	}

	emiParams := app.EMI
	if emiParams.BankName == "" {
		emiParams.BankName = app.BankOrCard.BankName
	}
	emiJSON, err := json.Marshal(emiParams)
	if err != nil {
		return nil, fmt.Errorf("marshaling plan parameters: %w", err)
	}

	fields := map[string]string{
		"product_id":       app.ProductID.String(),
		"product_price":    strconv.FormatFloat(app.ProductPrice, 'f', 2, 64),
		"financing_option": string(app.FinancingOption),
		"applicant_info":   string(applicantJSON),
		"emi_parameters":   string(emiJSON),
	}
	if app.SelectedVariant != "" {
		fields["selected_variant"] = app.SelectedVariant
	}
	return fields, nil
}

// attachPresent appends an attachment for every listed slot that actually
// holds a document.
func attachPresent(app *domain.Application, attachments []Attachment, slots ...domain.DocumentSlot) []Attachment {
	for _, slot := range slots {
		if ref, ok := app.Documents[slot]; ok && ref != nil {
			attachments = append(attachments, Attachment{FieldName: string(slot), Ref: ref})
		}
	}
	return attachments
}

func (b *Builder) buildNewCard(app *domain.Application) (*Payload, error) {
	fields, err := b.commonFields(app)
	if err != nil {
		return nil, err
	}

	bankJSON, err := json.Marshal(app.BankOrCard)
	if err != nil {
		return nil, fmt.Errorf("marshaling bank account info: %w", err)
	}
	fields["bank_account_info"] = string(bankJSON)

	attachments := attachPresent(app, nil,
		domain.SlotApplicantPhoto,
		domain.SlotApplicantCitizenFront,
		domain.SlotApplicantCitizenBack,
		domain.SlotBankStatement,
	)

	return &Payload{Kind: PayloadMultipart, Fields: fields, Attachments: attachments}, nil
}

func (b *Builder) buildDownPayment(app *domain.Application) (*Payload, error) {
	fields, err := b.commonFields(app)
	if err != nil {
		return nil, err
	}

	guarantorJSON, err := json.Marshal(app.Guarantor)
	if err != nil {
		return nil, fmt.Errorf("marshaling guarantor info: %w", err)
	}
	fields["guarantor_info"] = string(guarantorJSON)
	// The down-payment path carries only the bank name, never the full
	// account details.
	if app.BankOrCard.BankName != "" {
		fields["bank_name"] = app.BankOrCard.BankName
	}

	attachments := attachPresent(app, nil,
		domain.SlotApplicantPhoto,
		domain.SlotApplicantCitizenFront,
		domain.SlotApplicantCitizenBack,
		domain.SlotGuarantorPhoto,
		domain.SlotGuarantorCitizenFront,
		domain.SlotGuarantorCitizenBack,
		domain.SlotSignature,
	)

	return &Payload{Kind: PayloadMultipart, Fields: fields, Attachments: attachments}, nil
}
