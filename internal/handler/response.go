package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "wizard session not found or expired"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found"
	case errors.Is(err, domain.ErrBankNotFound):
		return http.StatusNotFound, "BANK_NOT_FOUND", "bank provider not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrInvalidOption):
		return http.StatusBadRequest, "INVALID_OPTION", "financing option must be credit_card, new_card, or down_payment"
	case errors.Is(err, domain.ErrOptionNotSelected):
		return http.StatusBadRequest, "OPTION_NOT_SELECTED", "a financing option must be selected first"
	case errors.Is(err, domain.ErrStepNotReachable):
		return http.StatusBadRequest, "STEP_NOT_REACHABLE", "cannot jump past the furthest step reached"
	case errors.Is(err, domain.ErrInvalidDocumentSlot):
		return http.StatusBadRequest, "INVALID_DOCUMENT_SLOT", "unknown document slot"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return http.StatusConflict, "ALREADY_SUBMITTED", "application has already been submitted"
	case errors.Is(err, domain.ErrNotReadyForSubmit):
		return http.StatusBadRequest, "NOT_READY_FOR_SUBMIT", "application must be on the review step to submit"
	case errors.Is(err, domain.ErrSubmissionFailed):
		return http.StatusBadGateway, "SUBMISSION_FAILED", "financing partner rejected the submission; please retry"
	case errors.Is(err, domain.ErrInvalidDatePattern):
		return http.StatusBadRequest, "INVALID_DATE", "date must match YYYY-MM-DD"
	case errors.Is(err, domain.ErrDateOutOfRange):
		return http.StatusBadRequest, "DATE_OUT_OF_RANGE", "date is outside the supported conversion range"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
