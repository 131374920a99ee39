package wizard

import (
	"time"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// Store owns the application state for one wizard session. All mutation goes
// through its named update operations; nothing else writes to the aggregate.
// Document blobs are exclusively owned by the store: replacing or removing a
// slot hands the superseded reference back to the caller so the underlying
// object and its preview can be released.
type Store struct {
	app *domain.Application
}

// NewStore wraps an application aggregate.
func NewStore(app *domain.Application) *Store {
	if app.Documents == nil {
		app.Documents = make(map[domain.DocumentSlot]*domain.DocumentRef)
	}
	return &Store{app: app}
}

// App returns the underlying aggregate for reading.
func (s *Store) App() *domain.Application {
	return s.app
}

func (s *Store) touch() {
	s.app.UpdatedAt = time.Now().UTC()
}

// SetApplicantInfo replaces the applicant section.
func (s *Store) SetApplicantInfo(info domain.PersonInfo) {
	s.app.Applicant = info
	s.touch()
}

// SetGuarantorInfo replaces the guarantor section.
func (s *Store) SetGuarantorInfo(info domain.PersonInfo) {
	s.app.Guarantor = info
	s.touch()
}

// SetBankOrCardInfo replaces the bank-or-card section.
func (s *Store) SetBankOrCardInfo(info domain.BankOrCardInfo) {
	s.app.BankOrCard = info
	s.touch()
}

// SetEMIParameters replaces the plan parameters.
func (s *Store) SetEMIParameters(params domain.EMIParameters) {
	s.app.EMI = params
	s.touch()
}

// SetVariant records the chosen product variant.
func (s *Store) SetVariant(variant string) {
	s.app.SelectedVariant = variant
	s.touch()
}

// SetDocument places an uploaded file into a slot and returns the reference
// it displaced, if any, so the caller can release it.
func (s *Store) SetDocument(ref *domain.DocumentRef) *domain.DocumentRef {
	previous := s.app.Documents[ref.Slot]
	s.app.Documents[ref.Slot] = ref
	s.touch()
	return previous
}

// RemoveDocument clears a slot and returns the displaced reference, if any.
func (s *Store) RemoveDocument(slot domain.DocumentSlot) *domain.DocumentRef {
	previous := s.app.Documents[slot]
	delete(s.app.Documents, slot)
	s.touch()
	return previous
}

// MarkSubmitted transitions the application out of draft.
func (s *Store) MarkSubmitted() {
	s.app.Status = domain.ApplicationSubmitted
	s.touch()
}

// ReleaseAllDocuments empties every slot and returns the displaced
// references. Used when the session is reset or abandoned.
func (s *Store) ReleaseAllDocuments() []*domain.DocumentRef {
	refs := make([]*domain.DocumentRef, 0, len(s.app.Documents))
	for slot, ref := range s.app.Documents {
		if ref != nil {
			refs = append(refs, ref)
		}
		delete(s.app.Documents, slot)
	}
	s.touch()
	return refs
}

// MissingDocuments returns the display names of required slots that have no
// upload yet, in the order the step lists them.
func (s *Store) MissingDocuments(required []domain.DocumentSlot) []string {
	var missing []string
	for _, slot := range required {
		if !s.app.HasDocument(slot) {
			missing = append(missing, slot.DisplayName())
		}
	}
	return missing
}
