package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/config"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/emi"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/port"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/submit"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/wizard"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/mocks"
)

type serviceFixture struct {
	svc       ApplicationService
	products  *mocks.MockProductRepo
	states    *mocks.MockStateRepo
	storage   *mocks.MockObjectStorage
	submitter *mocks.MockSubmitter
	email     *mocks.MockEmailSender
}

func newFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		products:  new(mocks.MockProductRepo),
		states:    new(mocks.MockStateRepo),
		storage:   new(mocks.MockObjectStorage),
		submitter: new(mocks.MockSubmitter),
		email:     new(mocks.MockEmailSender),
	}
	calc := emi.NewCalculator(emi.NewRegistry(emi.DefaultProviders()))
	f.svc = NewApplicationService(
		f.products,
		f.states,
		f.storage,
		f.submitter,
		submit.NewBuilder(calc),
		f.email,
		&config.S3Config{Bucket: "test-bucket", MaxFileSizeMB: 10, PresignExpiry: 900},
	)
	f.states.On("Save", mock.Anything, mock.Anything).Return(nil)
	return f
}

func fixtureProduct() *domain.Product {
	return &domain.Product{
		ID:    uuid.New(),
		Slug:  "samsung-galaxy-a55",
		Name:  "Samsung Galaxy A55",
		Price: 55000,
	}
}

func (f *serviceFixture) start(t *testing.T, input StartInput) *SessionView {
	t.Helper()
	view, err := f.svc.Start(context.Background(), input)
	require.NoError(t, err)
	return view
}

// closableReader satisfies multipart.File over an in-memory buffer.
type closableReader struct {
	*bytes.Reader
}

func (closableReader) Close() error { return nil }

var jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x01}, 64)...)

func uploadInput(sessionID uuid.UUID, slot domain.DocumentSlot, name string, data []byte) DocumentUploadInput {
	return DocumentUploadInput{
		SessionID: sessionID,
		Slot:      slot,
		File:      closableReader{bytes.NewReader(data)},
		Header:    &multipart.FileHeader{Filename: name, Size: int64(len(data))},
	}
}

func TestStart_SeedsDeepLinkParameters(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)

	view := f.start(t, StartInput{
		ProductSlug: "samsung-galaxy-a55",
		BankName:    "nabil",
		Tenure:      12,
		DownPayment: "20%",
		Variant:     "awesome-lilac",
	})

	app := view.Application
	assert.Equal(t, "samsung-galaxy-a55", app.ProductSlug)
	assert.Equal(t, 55000.0, app.ProductPrice)
	assert.Equal(t, "nabil", app.EMI.BankName)
	assert.Equal(t, 12, app.EMI.TenureMonths)
	assert.Equal(t, "20%", app.EMI.DownPayment)
	assert.Equal(t, "awesome-lilac", app.SelectedVariant)
	assert.Equal(t, domain.ApplicationDraft, app.Status)
	f.states.AssertCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStart_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "ghost").Return(nil, domain.ErrProductNotFound)

	_, err := f.svc.Start(context.Background(), StartInput{ProductSlug: "ghost"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGet_RehydratesFromSnapshotStore(t *testing.T) {
	f := newFixture(t)
	app := domain.NewApplication(fixtureProduct())
	app.Applicant.FullName = "Sita Sharma"
	f.states.On("Load", mock.Anything, app.ID).Return(app, nil)

	view, err := f.svc.Get(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sita Sharma", view.Application.Applicant.FullName)
	assert.Empty(t, view.Documents)
}

func TestGet_UnknownSession(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.states.On("Load", mock.Anything, id).Return(nil, domain.ErrSessionNotFound)

	_, err := f.svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestUpdateApplicant_DerivesBSBirthDate(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)
	view := f.start(t, StartInput{ProductSlug: "samsung-galaxy-a55"})

	updated, err := f.svc.UpdateApplicant(context.Background(), view.Application.ID, domain.PersonInfo{
		FullName:    "Sita Sharma",
		DateOfBirth: "1990-07-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, updated.Application.Applicant.DateOfBirthBS)

	// A half-typed date leaves the derived field empty instead of failing.
	updated, err = f.svc.UpdateApplicant(context.Background(), view.Application.ID, domain.PersonInfo{
		FullName:    "Sita Sharma",
		DateOfBirth: "1990-07",
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Application.Applicant.DateOfBirthBS)
}

func TestUploadDocument_StoresAndPresigns(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)
	view := f.start(t, StartInput{ProductSlug: "samsung-galaxy-a55"})

	f.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-bucket" && in.ContentType == "image/jpeg"
	})).Return(&port.UploadOutput{}, nil)
	f.storage.On("GetPresignedURL", mock.Anything, "test-bucket", mock.Anything, int64(900)).
		Return("https://s3.test/preview", nil)

	ref, err := f.svc.UploadDocument(context.Background(),
		uploadInput(view.Application.ID, domain.SlotApplicantPhoto, "photo.jpg", jpegBytes))
	require.NoError(t, err)
	assert.Equal(t, domain.SlotApplicantPhoto, ref.Slot)
	assert.Equal(t, "https://s3.test/preview", ref.PreviewURL)

	got, err := f.svc.Get(context.Background(), view.Application.ID)
	require.NoError(t, err)
	require.Len(t, got.Documents, 1)
}

func TestUploadDocument_ReplacementReleasesOldBlob(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)
	view := f.start(t, StartInput{ProductSlug: "samsung-galaxy-a55"})

	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	f.storage.On("GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://s3.test/preview", nil)

	first, err := f.svc.UploadDocument(context.Background(),
		uploadInput(view.Application.ID, domain.SlotApplicantPhoto, "one.jpg", jpegBytes))
	require.NoError(t, err)

	f.storage.On("Delete", mock.Anything, "test-bucket", first.StorageKey).Return(nil)

	second, err := f.svc.UploadDocument(context.Background(),
		uploadInput(view.Application.ID, domain.SlotApplicantPhoto, "two.jpg", jpegBytes))
	require.NoError(t, err)
	assert.NotEqual(t, first.StorageKey, second.StorageKey)

	f.storage.AssertCalled(t, "Delete", mock.Anything, "test-bucket", first.StorageKey)

	got, err := f.svc.Get(context.Background(), view.Application.ID)
	require.NoError(t, err)
	require.Len(t, got.Documents, 1)
	assert.Equal(t, "two.jpg", got.Documents[0].OriginalName)
}

func TestUploadDocument_RejectsBadInput(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)
	view := f.start(t, StartInput{ProductSlug: "samsung-galaxy-a55"})

	_, err := f.svc.UploadDocument(context.Background(),
		uploadInput(view.Application.ID, domain.DocumentSlot("tax-return"), "a.jpg", jpegBytes))
	assert.ErrorIs(t, err, domain.ErrInvalidDocumentSlot)

	_, err = f.svc.UploadDocument(context.Background(),
		uploadInput(view.Application.ID, domain.SlotApplicantPhoto, "a.exe", jpegBytes))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)

	// Correct extension but wrong magic bytes.
	_, err = f.svc.UploadDocument(context.Background(),
		uploadInput(view.Application.ID, domain.SlotApplicantPhoto, "a.jpg", []byte("plain text body")))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)

	big := uploadInput(view.Application.ID, domain.SlotApplicantPhoto, "a.jpg", jpegBytes)
	big.Header.Size = 11 * 1024 * 1024
	_, err = f.svc.UploadDocument(context.Background(), big)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

// walkToReview drives a credit-card session to the review step.
func walkToReview(t *testing.T, f *serviceFixture, id uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	_, err := f.svc.ChooseOption(ctx, id, domain.OptionCreditCard)
	require.NoError(t, err)

	_, err = f.svc.UpdateBankOrCard(ctx, id, domain.BankOrCardInfo{
		BankName:       "Nabil Bank",
		CardHolderName: "Sita Sharma",
		CardNumber:     "4111 1111 1111 1111",
		CardExpiry:     "09/27",
		CreditLimit:    "250000",
		MonthlySalary:  "85000",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateApplicant(ctx, id, domain.PersonInfo{
		FullName:      "Sita Sharma",
		Email:         "sita@example.com",
		Phone:         "9841234567",
		Gender:        domain.GenderFemale,
		MaritalStatus: domain.MaritalSingle,
		NationalID:    "12-34-56-78901",
		Address:       "Baneshwor, Kathmandu",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateEMIParameters(ctx, id, domain.EMIParameters{TenureMonths: 12})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		result, err := f.svc.Advance(ctx, id)
		require.NoError(t, err)
		require.True(t, result.Advanced, "step %d blocked: %v %v", i+1, result.FieldErrors, result.MissingDocuments)
	}
}

func TestSubmit_HappyPath(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)
	view := f.start(t, StartInput{ProductSlug: "samsung-galaxy-a55"})
	walkToReview(t, f, view.Application.ID)

	f.submitter.On("Submit", mock.Anything, mock.MatchedBy(func(p *submit.Payload) bool {
		return p.Kind == submit.PayloadJSON
	})).Return(nil)

	emailed := make(chan struct{})
	f.email.On("SendApplicationReceived", mock.Anything, "sita@example.com", "Sita Sharma", "samsung-galaxy-a55", mock.Anything).
		Run(func(mock.Arguments) { close(emailed) }).Return(nil)

	result, err := f.svc.Submit(context.Background(), view.Application.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Application.ID.String(), result.Reference)

	got, err := f.svc.Get(context.Background(), view.Application.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationSubmitted, got.Application.Status)

	select {
	case <-emailed:
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was never sent")
	}

	// A second submit is rejected.
	_, err = f.svc.Submit(context.Background(), view.Application.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)
}

func TestSubmit_RequiresReviewStep(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)
	view := f.start(t, StartInput{ProductSlug: "samsung-galaxy-a55"})

	_, err := f.svc.Submit(context.Background(), view.Application.ID)
	assert.ErrorIs(t, err, domain.ErrNotReadyForSubmit)
}

func TestSubmit_PartnerFailureKeepsSessionIntact(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)
	view := f.start(t, StartInput{ProductSlug: "samsung-galaxy-a55"})
	walkToReview(t, f, view.Application.ID)

	f.submitter.On("Submit", mock.Anything, mock.Anything).Return(domain.ErrSubmissionFailed)

	_, err := f.svc.Submit(context.Background(), view.Application.ID)
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)

	got, err := f.svc.Get(context.Background(), view.Application.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationDraft, got.Application.Status)
	assert.Equal(t, wizard.StepReview, got.Application.StepIndex)
	f.email.AssertNotCalled(t, "SendApplicationReceived", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAbandon_ReleasesDocumentsAndSnapshot(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)
	view := f.start(t, StartInput{ProductSlug: "samsung-galaxy-a55"})

	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	f.storage.On("GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", nil)
	ref, err := f.svc.UploadDocument(context.Background(),
		uploadInput(view.Application.ID, domain.SlotApplicantPhoto, "photo.jpg", jpegBytes))
	require.NoError(t, err)

	f.storage.On("Delete", mock.Anything, "test-bucket", ref.StorageKey).Return(nil)
	f.states.On("Delete", mock.Anything, view.Application.ID).Return(nil)

	require.NoError(t, f.svc.Abandon(context.Background(), view.Application.ID))
	f.storage.AssertCalled(t, "Delete", mock.Anything, "test-bucket", ref.StorageKey)
	f.states.AssertCalled(t, "Delete", mock.Anything, view.Application.ID)

	// The session is gone from memory; a fresh lookup hits the snapshot store.
	f.states.On("Load", mock.Anything, view.Application.ID).Return(nil, domain.ErrSessionNotFound)
	_, err = f.svc.Get(context.Background(), view.Application.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestJumpAndBackNavigation(t *testing.T) {
	f := newFixture(t)
	f.products.On("GetBySlug", mock.Anything, "samsung-galaxy-a55").Return(fixtureProduct(), nil)
	view := f.start(t, StartInput{ProductSlug: "samsung-galaxy-a55"})
	id := view.Application.ID
	walkToReview(t, f, id)

	got, err := f.svc.JumpTo(context.Background(), id, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Application.StepIndex)

	_, err = f.svc.JumpTo(context.Background(), id, 9)
	assert.ErrorIs(t, err, domain.ErrStepNotReachable)

	got, err = f.svc.Back(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Application.StepIndex)
}
