package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/config"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/dateconv"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/port"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/submit"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/validator"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/wizard"
)

// StartInput seeds a new wizard session. The optional fields come from
// deep-link query parameters when the wizard is entered via a shared link.
type StartInput struct {
	ProductSlug string
	BankName    string
	Tenure      int
	DownPayment string
	Variant     string
}

// SessionView is the read model handlers serialize back to the client.
type SessionView struct {
	Application      *domain.Application           `json:"application"`
	Documents        []domain.DocumentRef          `json:"documents"`
	FieldErrors      validator.FieldErrors         `json:"field_errors,omitempty"`
	MissingDocuments []string                      `json:"missing_documents,omitempty"`
}

// SubmitResult is the terminal outcome of one submission attempt.
type SubmitResult struct {
	Reference string `json:"reference"`
}

// DocumentUploadInput is the DTO for document upload requests.
type DocumentUploadInput struct {
	SessionID uuid.UUID
	Slot      domain.DocumentSlot
	File      multipart.File
	Header    *multipart.FileHeader
}

// ApplicationService drives the EMI wizard sessions: state mutation, step
// navigation, document handling, and final submission.
type ApplicationService interface {
	Start(ctx context.Context, input StartInput) (*SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (*SessionView, error)
	ChooseOption(ctx context.Context, id uuid.UUID, option domain.FinancingOption) (*SessionView, error)
	SetVariant(ctx context.Context, id uuid.UUID, variant string) (*SessionView, error)
	UpdateApplicant(ctx context.Context, id uuid.UUID, info domain.PersonInfo) (*SessionView, error)
	UpdateGuarantor(ctx context.Context, id uuid.UUID, info domain.PersonInfo) (*SessionView, error)
	UpdateBankOrCard(ctx context.Context, id uuid.UUID, info domain.BankOrCardInfo) (*SessionView, error)
	UpdateEMIParameters(ctx context.Context, id uuid.UUID, params domain.EMIParameters) (*SessionView, error)
	UploadDocument(ctx context.Context, input DocumentUploadInput) (*domain.DocumentRef, error)
	RemoveDocument(ctx context.Context, id uuid.UUID, slot domain.DocumentSlot) error
	Advance(ctx context.Context, id uuid.UUID) (*wizard.AdvanceResult, error)
	Back(ctx context.Context, id uuid.UUID) (*SessionView, error)
	JumpTo(ctx context.Context, id uuid.UUID, step int) (*SessionView, error)
	Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error)
	Abandon(ctx context.Context, id uuid.UUID) error
}

// session pairs the live store and controller for one open wizard. The
// mutex serializes mutation and validation so a validation pass always reads
// a fully settled state.
type session struct {
	mu    sync.Mutex
	store *wizard.Store
	ctrl  *wizard.Controller
}

type applicationService struct {
	products  port.ProductRepository
	states    port.ApplicationStateRepository
	storage   port.ObjectStorage
	submitter port.Submitter
	builder   *submit.Builder
	email     port.EmailSender
	s3cfg     *config.S3Config

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// NewApplicationService creates the wizard-session service.
func NewApplicationService(
	products port.ProductRepository,
	states port.ApplicationStateRepository,
	storage port.ObjectStorage,
	submitter port.Submitter,
	builder *submit.Builder,
	email port.EmailSender,
	s3cfg *config.S3Config,
) ApplicationService {
	return &applicationService{
		products:  products,
		states:    states,
		storage:   storage,
		submitter: submitter,
		builder:   builder,
		email:     email,
		s3cfg:     s3cfg,
		sessions:  make(map[uuid.UUID]*session),
	}
}

func (s *applicationService) Start(ctx context.Context, input StartInput) (*SessionView, error) {
	product, err := s.products.GetBySlug(ctx, input.ProductSlug)
	if err != nil {
		return nil, err
	}

	app := domain.NewApplication(product)
	if input.BankName != "" || input.Tenure > 0 || input.DownPayment != "" {
		app.EMI = domain.EMIParameters{
			BankName:     input.BankName,
			TenureMonths: input.Tenure,
			DownPayment:  input.DownPayment,
		}
	}
	if input.Variant != "" {
		app.SelectedVariant = input.Variant
	}

	sess := &session{store: wizard.NewStore(app)}
	sess.ctrl = wizard.NewController(sess.store)

	s.mu.Lock()
	s.sessions[app.ID] = sess
	s.mu.Unlock()

	s.persist(ctx, app)
	log.Printf("applicationService.Start: session %s opened for product %s", app.ID, product.Slug)
	return s.view(sess), nil
}

// getSession returns the live session, rehydrating from the snapshot store
// when the process no longer holds it in memory. Rehydrated sessions come
// back with empty document slots.
func (s *applicationService) getSession(ctx context.Context, id uuid.UUID) (*session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		return sess, nil
	}

	app, err := s.states.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	sess = &session{store: wizard.NewStore(app)}
	sess.ctrl = wizard.NewController(sess.store)

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *applicationService) Get(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sess), nil
}

func (s *applicationService) ChooseOption(ctx context.Context, id uuid.UUID, option domain.FinancingOption) (*SessionView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ctrl.ChooseOption(option); err != nil {
		return nil, err
	}
	s.persist(ctx, sess.store.App())
	return s.view(sess), nil
}

func (s *applicationService) SetVariant(ctx context.Context, id uuid.UUID, variant string) (*SessionView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.store.SetVariant(variant)
	s.persist(ctx, sess.store.App())
	return s.view(sess), nil
}

func (s *applicationService) UpdateApplicant(ctx context.Context, id uuid.UUID, info domain.PersonInfo) (*SessionView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	deriveBirthDates(&info)
	clearEditedPersonErrors(sess.ctrl, sess.store.App().Applicant, info)
	sess.store.SetApplicantInfo(info)
	s.persist(ctx, sess.store.App())
	return s.view(sess), nil
}

func (s *applicationService) UpdateGuarantor(ctx context.Context, id uuid.UUID, info domain.PersonInfo) (*SessionView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	deriveBirthDates(&info)
	clearEditedPersonErrors(sess.ctrl, sess.store.App().Guarantor, info)
	sess.store.SetGuarantorInfo(info)
	s.persist(ctx, sess.store.App())
	return s.view(sess), nil
}

func (s *applicationService) UpdateBankOrCard(ctx context.Context, id uuid.UUID, info domain.BankOrCardInfo) (*SessionView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	clearEditedBankErrors(sess.ctrl, sess.store.App().BankOrCard, info)
	sess.store.SetBankOrCardInfo(info)
	s.persist(ctx, sess.store.App())
	return s.view(sess), nil
}

func (s *applicationService) UpdateEMIParameters(ctx context.Context, id uuid.UUID, params domain.EMIParameters) (*SessionView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	clearEditedEMIErrors(sess.ctrl, sess.store.App().EMI, params)
	sess.store.SetEMIParameters(params)
	s.persist(ctx, sess.store.App())
	return s.view(sess), nil
}

func (s *applicationService) UploadDocument(ctx context.Context, input DocumentUploadInput) (*domain.DocumentRef, error) {
	if !input.Slot.Valid() {
		return nil, domain.ErrInvalidDocumentSlot
	}

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if _, valid := domain.AllowedContentTypes[http.DetectContentType(buf[:n])]; !valid {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	contentType := domain.AllowedFileTypes[fileType]
	key := fmt.Sprintf("emi/%s/%s/%s.%s", input.SessionID, input.Slot, uuid.New(), ext)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("applicationService.UploadDocument: upload failed for %s/%s: %v", input.SessionID, input.Slot, err)
		return nil, domain.ErrUploadFailed
	}

	// The preview URL lives only as long as the blob it previews.
	previewURL, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, key, s.s3cfg.PresignExpiry)
	if err != nil {
		log.Printf("applicationService.UploadDocument: presign failed for %s: %v", key, err)
	}

	ref := &domain.DocumentRef{
		Slot:         input.Slot,
		OriginalName: input.Header.Filename,
		ContentType:  contentType,
		Size:         input.Header.Size,
		StorageKey:   key,
		PreviewURL:   previewURL,
		UploadedAt:   time.Now().UTC(),
	}

	sess.mu.Lock()
	displaced := sess.store.SetDocument(ref)
	sess.mu.Unlock()

	s.release(ctx, displaced)
	s.persist(ctx, sess.store.App())
	return ref, nil
}

func (s *applicationService) RemoveDocument(ctx context.Context, id uuid.UUID, slot domain.DocumentSlot) error {
	if !slot.Valid() {
		return domain.ErrInvalidDocumentSlot
	}
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	displaced := sess.store.RemoveDocument(slot)
	sess.mu.Unlock()

	s.release(ctx, displaced)
	s.persist(ctx, sess.store.App())
	return nil
}

func (s *applicationService) Advance(ctx context.Context, id uuid.UUID) (*wizard.AdvanceResult, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	result, err := sess.ctrl.Advance()
	if err != nil {
		return nil, err
	}
	if result.Advanced {
		s.persist(ctx, sess.store.App())
	}
	return &result, nil
}

func (s *applicationService) Back(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.ctrl.Back()
	s.persist(ctx, sess.store.App())
	return s.view(sess), nil
}

func (s *applicationService) JumpTo(ctx context.Context, id uuid.UUID, step int) (*SessionView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ctrl.JumpTo(step); err != nil {
		return nil, err
	}
	s.persist(ctx, sess.store.App())
	return s.view(sess), nil
}

func (s *applicationService) Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	app := sess.store.App()
	if app.Status == domain.ApplicationSubmitted {
		return nil, domain.ErrAlreadySubmitted
	}
	if app.StepIndex != wizard.StepReview {
		return nil, domain.ErrNotReadyForSubmit
	}

	payload, err := s.builder.BuildPayload(app)
	if err != nil {
		return nil, err
	}

	// Single attempt; on failure the session stays on the review step with
	// all state intact so the user may retry.
	if err := s.submitter.Submit(ctx, payload); err != nil {
		log.Printf("applicationService.Submit: session %s failed: %v", id, err)
		return nil, err
	}

	sess.store.MarkSubmitted()
	s.persist(ctx, app)
	log.Printf("applicationService.Submit: session %s submitted via %s", id, app.FinancingOption)

	if app.Applicant.Email != "" {
		// Confirmation mail is best-effort and never blocks the response.
		go func(email, name, product, ref string) {
			if err := s.email.SendApplicationReceived(context.Background(), email, name, product, ref); err != nil {
				log.Printf("applicationService.Submit: confirmation email to %s failed: %v", email, err)
			}
		}(app.Applicant.Email, app.Applicant.FullName, app.ProductSlug, app.ID.String())
	}

	return &SubmitResult{Reference: app.ID.String()}, nil
}

func (s *applicationService) Abandon(ctx context.Context, id uuid.UUID) error {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	refs := sess.store.ReleaseAllDocuments()
	sess.mu.Unlock()

	for _, ref := range refs {
		s.release(ctx, ref)
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	if err := s.states.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("applicationService.Abandon: session %s discarded", id)
	return nil
}

// persist writes the snapshot. Snapshot loss degrades resilience, not
// correctness, so failures are logged and the session keeps going.
func (s *applicationService) persist(ctx context.Context, app *domain.Application) {
	if err := s.states.Save(ctx, app); err != nil {
		log.Printf("applicationService: snapshot save for %s failed: %v", app.ID, err)
	}
}

// release deletes a displaced document blob; its preview URL dies with it.
func (s *applicationService) release(ctx context.Context, ref *domain.DocumentRef) {
	if ref == nil {
		return
	}
	if err := s.storage.Delete(ctx, s.s3cfg.Bucket, ref.StorageKey); err != nil {
		log.Printf("applicationService: releasing blob %s failed: %v", ref.StorageKey, err)
	}
}

func (s *applicationService) view(sess *session) *SessionView {
	app := sess.store.App()
	docs := make([]domain.DocumentRef, 0, len(app.Documents))
	for _, slot := range domain.AllDocumentSlots {
		if ref, ok := app.Documents[slot]; ok && ref != nil {
			docs = append(docs, *ref)
		}
	}
	return &SessionView{
		Application:      app,
		Documents:        docs,
		FieldErrors:      sess.ctrl.FieldErrors(),
		MissingDocuments: sess.ctrl.MissingDocuments(),
	}
}

// deriveBirthDates fills whichever birth-date calendar is missing from the
// other. Conversion errors are silently ignored; the derived field is
// simply withheld until the input matches the pattern.
func deriveBirthDates(info *domain.PersonInfo) {
	if info.DateOfBirth != "" && info.DateOfBirthBS == "" {
		if bs, err := dateconv.ADToBS(info.DateOfBirth); err == nil {
			info.DateOfBirthBS = bs
		}
	} else if info.DateOfBirthBS != "" && info.DateOfBirth == "" {
		if ad, err := dateconv.BSToAD(info.DateOfBirthBS); err == nil {
			info.DateOfBirth = ad
		}
	}
}

// The clear-on-edit helpers drop the error for every field whose value
// actually changed, pending the next full validation pass.

func clearEditedPersonErrors(ctrl *wizard.Controller, old, next domain.PersonInfo) {
	if old.FullName != next.FullName {
		ctrl.ClearFieldError("full_name")
	}
	if old.Email != next.Email {
		ctrl.ClearFieldError("email")
	}
	if old.Phone != next.Phone {
		ctrl.ClearFieldError("phone")
	}
	if old.Gender != next.Gender {
		ctrl.ClearFieldError("gender")
	}
	if old.MaritalStatus != next.MaritalStatus {
		ctrl.ClearFieldError("marital_status")
	}
	if old.PartnerName != next.PartnerName {
		ctrl.ClearFieldError("partner_name")
	}
	if old.NationalID != next.NationalID {
		ctrl.ClearFieldError("national_id")
	}
	if old.Address != next.Address {
		ctrl.ClearFieldError("address")
	}
}

func clearEditedBankErrors(ctrl *wizard.Controller, old, next domain.BankOrCardInfo) {
	if old.BankName != next.BankName {
		ctrl.ClearFieldError("bank_name")
	}
	if old.AccountNumber != next.AccountNumber {
		ctrl.ClearFieldError("account_number")
	}
	if old.Branch != next.Branch {
		ctrl.ClearFieldError("branch")
	}
	if old.MonthlySalary != next.MonthlySalary {
		ctrl.ClearFieldError("monthly_salary")
	}
	if old.CardHolderName != next.CardHolderName {
		ctrl.ClearFieldError("card_holder_name")
	}
	if old.CardNumber != next.CardNumber {
		ctrl.ClearFieldError("card_number")
	}
	if old.CardExpiry != next.CardExpiry {
		ctrl.ClearFieldError("card_expiry")
	}
	if old.CreditLimit != next.CreditLimit {
		ctrl.ClearFieldError("credit_limit")
	}
}

func clearEditedEMIErrors(ctrl *wizard.Controller, old, next domain.EMIParameters) {
	if old.DownPayment != next.DownPayment {
		ctrl.ClearFieldError("down_payment")
	}
	if old.TenureMonths != next.TenureMonths {
		ctrl.ClearFieldError("tenure_months")
	}
	if old.BankName != next.BankName {
		ctrl.ClearFieldError("bank_name")
	}
}
