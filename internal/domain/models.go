package domain

import (
	"time"

	"github.com/google/uuid"
)

// BankProvider is a financing provider with its rate and tenure options.
// Providers are loaded once at process start and never mutated.
type BankProvider struct {
	ID                  string  `db:"id" json:"id"`
	Name                string  `db:"name" json:"name"`
	AnnualRatePercent   float64 `db:"annual_rate_percent" json:"annual_rate_percent"`
	TenureOptionsMonths []int   `db:"-" json:"tenure_options_months"`
}

// Product is the catalog item an installment plan is requested for.
// The catalog itself is an external collaborator; only the lookup
// surface used by the wizard lives here.
type Product struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Slug            string    `db:"slug" json:"slug"`
	Name            string    `db:"name" json:"name"`
	Price           float64   `db:"price" json:"price"`
	DiscountedPrice *float64  `db:"discounted_price" json:"discounted_price,omitempty"`
	Variants        []string  `db:"-" json:"variants,omitempty"`
	Images          []string  `db:"-" json:"images,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// EffectivePrice returns the discounted price when present, else the list price.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountedPrice != nil && *p.DiscountedPrice > 0 {
		return *p.DiscountedPrice
	}
	return p.Price
}

// PersonInfo holds the personal details collected for the applicant and,
// on the down-payment path, the guarantor. GrandfatherName is collected
// for guarantors only.
type PersonInfo struct {
	FullName        string        `json:"full_name"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone"`
	Gender          Gender        `json:"gender"`
	MaritalStatus   MaritalStatus `json:"marital_status"`
	PartnerName     string        `json:"partner_name,omitempty"`
	GrandfatherName string        `json:"grandfather_name,omitempty"`
	NationalID      string        `json:"national_id"`
	DateOfBirth     string        `json:"date_of_birth"`
	DateOfBirthBS   string        `json:"date_of_birth_bs,omitempty"`
	Address         string        `json:"address"`
}

// BankOrCardInfo holds either bank-account or credit-card details depending
// on the financing option. Card fields apply to the credit-card path, the
// account fields to the others.
type BankOrCardInfo struct {
	BankName       string `json:"bank_name"`
	AccountNumber  string `json:"account_number,omitempty"`
	Branch         string `json:"branch,omitempty"`
	MonthlySalary  string `json:"monthly_salary,omitempty"`
	CardHolderName string `json:"card_holder_name,omitempty"`
	CardNumber     string `json:"card_number,omitempty"`
	CardExpiry     string `json:"card_expiry,omitempty"`
	CreditLimit    string `json:"credit_limit,omitempty"`
}

// EMIParameters are the plan inputs chosen on the final data step.
// DownPayment is either an absolute amount or a percent string like "20%".
type EMIParameters struct {
	DownPayment  string `json:"down_payment"`
	TenureMonths int    `json:"tenure_months"`
	BankName     string `json:"bank_name,omitempty"`
}

// DocumentRef points at an uploaded document blob in object storage.
// PreviewURL is a short-lived presigned URL scoped to the blob it previews;
// it is regenerated when the blob is replaced and dropped with the slot.
type DocumentRef struct {
	Slot         DocumentSlot `json:"slot"`
	OriginalName string       `json:"original_name"`
	ContentType  string       `json:"content_type"`
	Size         int64        `json:"size"`
	StorageKey   string       `json:"storage_key"`
	PreviewURL   string       `json:"preview_url,omitempty"`
	UploadedAt   time.Time    `json:"uploaded_at"`
}

// Application is the aggregate root for one wizard session. It is mutated
// only through the wizard store's named update operations. Documents are
// owned exclusively by the session and are never persisted in snapshots.
type Application struct {
	ID              uuid.UUID                      `json:"id"`
	ProductID       uuid.UUID                      `json:"product_id"`
	ProductSlug     string                         `json:"product_slug"`
	ProductPrice    float64                        `json:"product_price"`
	SelectedVariant string                         `json:"selected_variant,omitempty"`
	FinancingOption FinancingOption                `json:"financing_option,omitempty"`
	Applicant       PersonInfo                     `json:"applicant"`
	Guarantor       PersonInfo                     `json:"guarantor"`
	BankOrCard      BankOrCardInfo                 `json:"bank_or_card"`
	EMI             EMIParameters                  `json:"emi"`
	Documents       map[DocumentSlot]*DocumentRef  `json:"-"`
	StepIndex       int                            `json:"step_index"`
	MaxStepReached  int                            `json:"max_step_reached"`
	Status          ApplicationStatus              `json:"status"`
	CreatedAt       time.Time                      `json:"created_at"`
	UpdatedAt       time.Time                      `json:"updated_at"`
}

// NewApplication creates an empty draft application for a product.
func NewApplication(product *Product) *Application {
	now := time.Now().UTC()
	return &Application{
		ID:           uuid.New(),
		ProductID:    product.ID,
		ProductSlug:  product.Slug,
		ProductPrice: product.EffectivePrice(),
		Documents:    make(map[DocumentSlot]*DocumentRef),
		Status:       ApplicationDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// HasDocument reports whether a slot holds an uploaded file.
func (a *Application) HasDocument(slot DocumentSlot) bool {
	ref, ok := a.Documents[slot]
	return ok && ref != nil
}
