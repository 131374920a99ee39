package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrSessionNotFound      = errors.New("application session not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrBankNotFound         = errors.New("bank provider not found")
	ErrInvalidOption        = errors.New("invalid financing option")
	ErrOptionNotSelected    = errors.New("financing option has not been selected")
	ErrStepNotReachable     = errors.New("step has not been reached yet")
	ErrInvalidDocumentSlot  = errors.New("invalid document slot")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrAlreadySubmitted     = errors.New("application has already been submitted")
	ErrNotReadyForSubmit    = errors.New("application has not completed all steps")
	ErrSubmissionFailed     = errors.New("submission to financing partner failed")
	ErrInvalidDatePattern   = errors.New("date does not match the expected pattern")
	ErrDateOutOfRange       = errors.New("date is outside the supported conversion range")
)
