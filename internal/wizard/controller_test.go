package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

func testProduct() *domain.Product {
	return &domain.Product{Slug: "samsung-galaxy-a55", Name: "Samsung Galaxy A55", Price: 55000}
}

func newTestSession() (*Store, *Controller) {
	store := NewStore(domain.NewApplication(testProduct()))
	return store, NewController(store)
}

func fillApplicant(store *Store) {
	store.SetApplicantInfo(domain.PersonInfo{
		FullName:      "Sita Sharma",
		Email:         "sita@example.com",
		Phone:         "9841234567",
		Gender:        domain.GenderFemale,
		MaritalStatus: domain.MaritalSingle,
		NationalID:    "12-34-56-78901",
		Address:       "Baneshwor, Kathmandu",
	})
}

func fillCard(store *Store) {
	store.SetBankOrCardInfo(domain.BankOrCardInfo{
		BankName:       "Nabil Bank",
		CardHolderName: "Sita Sharma",
		CardNumber:     "4111 1111 1111 1111",
		CardExpiry:     "09/27",
		CreditLimit:    "250000",
	})
}

func docRef(slot domain.DocumentSlot) *domain.DocumentRef {
	return &domain.DocumentRef{Slot: slot, OriginalName: string(slot) + ".jpg", StorageKey: "k/" + string(slot)}
}

func TestAdvance_RequiresOptionAtStepZero(t *testing.T) {
	_, ctrl := newTestSession()

	_, err := ctrl.Advance()
	assert.ErrorIs(t, err, domain.ErrOptionNotSelected)
}

func TestChooseOption_MovesToStepOne(t *testing.T) {
	store, ctrl := newTestSession()

	require.NoError(t, ctrl.ChooseOption(domain.OptionCreditCard))
	assert.Equal(t, 1, store.App().StepIndex)
	assert.Equal(t, 1, store.App().MaxStepReached)

	assert.ErrorIs(t, ctrl.ChooseOption(domain.FinancingOption("loan-shark")), domain.ErrInvalidOption)
}

func TestAdvance_BlockedByFieldErrorsStaysPut(t *testing.T) {
	store, ctrl := newTestSession()
	require.NoError(t, ctrl.ChooseOption(domain.OptionCreditCard))

	// Credit-card step 1 is the card section; nothing filled yet.
	result, err := ctrl.Advance()
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, 1, result.StepIndex)
	assert.NotEmpty(t, result.FieldErrors)
	assert.Equal(t, 1, store.App().StepIndex)

	// Advancing again without edits stays blocked at the same step.
	result, err = ctrl.Advance()
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, 1, store.App().StepIndex)
}

func TestAdvance_CreditCardFullWalk(t *testing.T) {
	store, ctrl := newTestSession()
	require.NoError(t, ctrl.ChooseOption(domain.OptionCreditCard))

	fillCard(store)
	result, err := ctrl.Advance()
	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.Equal(t, 2, result.StepIndex)

	fillApplicant(store)
	result, err = ctrl.Advance()
	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.Equal(t, 3, result.StepIndex)

	store.SetEMIParameters(domain.EMIParameters{TenureMonths: 12})
	result, err = ctrl.Advance()
	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.Equal(t, StepReview, result.StepIndex)
	assert.Equal(t, StepReview, store.App().MaxStepReached)

	// The review step never advances further.
	result, err = ctrl.Advance()
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, StepReview, store.App().StepIndex)
}

func TestAdvance_MissingDocumentsBlock(t *testing.T) {
	store, ctrl := newTestSession()
	require.NoError(t, ctrl.ChooseOption(domain.OptionNewCard))
	fillApplicant(store)

	result, err := ctrl.Advance()
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, []string{
		"Applicant Photo",
		"Applicant Citizenship (Front)",
		"Applicant Citizenship (Back)",
	}, result.MissingDocuments)

	store.SetDocument(docRef(domain.SlotApplicantPhoto))
	store.SetDocument(docRef(domain.SlotApplicantCitizenFront))
	result, err = ctrl.Advance()
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, []string{"Applicant Citizenship (Back)"}, result.MissingDocuments)

	store.SetDocument(docRef(domain.SlotApplicantCitizenBack))
	result, err = ctrl.Advance()
	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.Equal(t, 2, result.StepIndex)
}

func TestAdvance_OptionalDocumentNeverGates(t *testing.T) {
	store, ctrl := newTestSession()
	require.NoError(t, ctrl.ChooseOption(domain.OptionDownPayment))

	// Jump straight to the plan step state by walking the store forward.
	store.App().StepIndex = 3
	store.App().MaxStepReached = 3
	store.SetEMIParameters(domain.EMIParameters{TenureMonths: 12, BankName: "Nabil Bank"})

	// The signature slot is optional on this step and stays empty.
	result, err := ctrl.Advance()
	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.Equal(t, StepReview, result.StepIndex)
}

func TestOptionSwitch_PreservesSharedFields(t *testing.T) {
	store, ctrl := newTestSession()
	require.NoError(t, ctrl.ChooseOption(domain.OptionCreditCard))
	fillApplicant(store)

	require.NoError(t, ctrl.ChooseOption(domain.OptionDownPayment))
	assert.Equal(t, "Sita Sharma", store.App().Applicant.FullName)
	assert.Equal(t, 1, store.App().StepIndex)
	assert.Equal(t, 1, store.App().MaxStepReached)
}

func TestBack_FloorsAtZeroAndClearsErrors(t *testing.T) {
	store, ctrl := newTestSession()
	require.NoError(t, ctrl.ChooseOption(domain.OptionCreditCard))

	_, err := ctrl.Advance()
	require.NoError(t, err)
	require.NotEmpty(t, ctrl.FieldErrors())

	assert.Equal(t, 0, ctrl.Back())
	assert.Empty(t, ctrl.FieldErrors())
	assert.Equal(t, 0, ctrl.Back())
	assert.Equal(t, 0, store.App().StepIndex)
}

func TestJumpTo_GuardedByMaxStepReached(t *testing.T) {
	store, ctrl := newTestSession()
	require.NoError(t, ctrl.ChooseOption(domain.OptionCreditCard))
	fillCard(store)
	_, err := ctrl.Advance()
	require.NoError(t, err)
	require.Equal(t, 2, store.App().MaxStepReached)

	assert.ErrorIs(t, ctrl.JumpTo(3), domain.ErrStepNotReachable)
	assert.ErrorIs(t, ctrl.JumpTo(-1), domain.ErrStepNotReachable)

	require.NoError(t, ctrl.JumpTo(1))
	assert.Equal(t, 1, store.App().StepIndex)

	// Re-advancing after a jump back to step 0 works once an option exists.
	require.NoError(t, ctrl.JumpTo(0))
	result, err := ctrl.Advance()
	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.Equal(t, 1, result.StepIndex)
}

func TestClearFieldError(t *testing.T) {
	_, ctrl := newTestSession()
	require.NoError(t, ctrl.ChooseOption(domain.OptionCreditCard))

	_, err := ctrl.Advance()
	require.NoError(t, err)
	require.Contains(t, ctrl.FieldErrors(), "card_number")

	ctrl.ClearFieldError("card_number")
	assert.NotContains(t, ctrl.FieldErrors(), "card_number")
	assert.Contains(t, ctrl.FieldErrors(), "card_expiry")
}

func TestStepFor(t *testing.T) {
	spec, ok := StepFor(domain.OptionCreditCard, 1)
	require.True(t, ok)
	assert.Equal(t, domain.SectionBankOrCardInfo, spec.Section)
	assert.Empty(t, spec.RequiredDocuments)

	spec, ok = StepFor(domain.OptionDownPayment, 2)
	require.True(t, ok)
	assert.Equal(t, domain.SectionGuarantorInfo, spec.Section)
	assert.Len(t, spec.RequiredDocuments, 3)

	_, ok = StepFor(domain.OptionCreditCard, 0)
	assert.False(t, ok)
	_, ok = StepFor(domain.OptionCreditCard, 4)
	assert.False(t, ok)
	_, ok = StepFor(domain.FinancingOption("bogus"), 1)
	assert.False(t, ok)

	assert.Equal(t, 3, StepCount(domain.OptionNewCard))
}
