package wizard

import (
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/validator"
)

// Controller is the wizard state machine. It tracks the current step for the
// active financing option, validates the current section before advancing,
// and gates advancement on required documents. Error state lives here, not
// in the store: it describes the last forward attempt, is cleared by any
// backward navigation, and individual field errors clear as soon as the
// field is edited.
type Controller struct {
	store *Store

	fieldErrors validator.FieldErrors
	missingDocs []string
}

// NewController creates a Controller over a session's store.
func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

// AdvanceResult reports the outcome of one forward attempt.
type AdvanceResult struct {
	Advanced         bool                  `json:"advanced"`
	StepIndex        int                   `json:"step_index"`
	FieldErrors      validator.FieldErrors `json:"field_errors,omitempty"`
	MissingDocuments []string              `json:"missing_documents,omitempty"`
}

// ChooseOption selects (or switches) the financing option. The wizard moves
// to step 1 and all prior errors are cleared, but field values shared across
// options are preserved; only the option-specific requirements change.
func (c *Controller) ChooseOption(option domain.FinancingOption) error {
	if !option.Valid() {
		return domain.ErrInvalidOption
	}
	app := c.store.App()
	app.FinancingOption = option
	app.StepIndex = 1
	app.MaxStepReached = 1
	c.clearErrors()
	c.store.touch()
	return nil
}

// Advance validates the current step and moves forward when it passes.
// At step 0 it fails until an option has been chosen; at the review step it
// is a no-op. Validation failures and missing documents are surfaced on the
// result and block the transition.
func (c *Controller) Advance() (AdvanceResult, error) {
	app := c.store.App()

	if app.StepIndex == StepChooseOption {
		if !app.FinancingOption.Valid() {
			return AdvanceResult{StepIndex: app.StepIndex}, domain.ErrOptionNotSelected
		}
		app.StepIndex = 1
		c.clearErrors()
		c.store.touch()
		return AdvanceResult{Advanced: true, StepIndex: app.StepIndex}, nil
	}

	if app.StepIndex >= StepReview {
		return AdvanceResult{Advanced: false, StepIndex: app.StepIndex}, nil
	}

	step, ok := StepFor(app.FinancingOption, app.StepIndex)
	if !ok {
		return AdvanceResult{StepIndex: app.StepIndex}, domain.ErrOptionNotSelected
	}

	schema := validator.SchemaFor(step.Section, app.FinancingOption)
	fieldErrors := schema.Validate(app, validator.Env{ProductPrice: app.ProductPrice})
	missing := c.store.MissingDocuments(step.RequiredDocuments)

	if len(fieldErrors) > 0 || len(missing) > 0 {
		c.fieldErrors = fieldErrors
		c.missingDocs = missing
		return AdvanceResult{
			Advanced:         false,
			StepIndex:        app.StepIndex,
			FieldErrors:      fieldErrors,
			MissingDocuments: missing,
		}, nil
	}

	c.clearErrors()
	app.StepIndex++
	if app.StepIndex > StepReview {
		app.StepIndex = StepReview
	}
	if app.StepIndex > app.MaxStepReached {
		app.MaxStepReached = app.StepIndex
	}
	c.store.touch()
	return AdvanceResult{Advanced: true, StepIndex: app.StepIndex}, nil
}

// Back moves one step backward, floored at step 0, and clears the error
// state; the section is re-validated on the next forward attempt.
func (c *Controller) Back() int {
	app := c.store.App()
	if app.StepIndex > 0 {
		app.StepIndex--
		c.store.touch()
	}
	c.clearErrors()
	return app.StepIndex
}

// JumpTo moves directly to a previously reached step, e.g. from a progress
// indicator. Jumping past the highest step already reached is rejected so
// unvalidated sections cannot be skipped.
func (c *Controller) JumpTo(stepIndex int) error {
	app := c.store.App()
	if stepIndex < 0 || stepIndex > app.MaxStepReached {
		return domain.ErrStepNotReachable
	}
	app.StepIndex = stepIndex
	c.clearErrors()
	c.store.touch()
	return nil
}

// ClearFieldError drops a single field's error as soon as the user edits the
// field, pending the next full validation pass.
func (c *Controller) ClearFieldError(field string) {
	delete(c.fieldErrors, field)
}

// FieldErrors returns the per-field errors from the last forward attempt.
func (c *Controller) FieldErrors() validator.FieldErrors {
	return c.fieldErrors
}

// MissingDocuments returns the document names that blocked the last forward
// attempt.
func (c *Controller) MissingDocuments() []string {
	return c.missingDocs
}

func (c *Controller) clearErrors() {
	c.fieldErrors = nil
	c.missingDocs = nil
}
