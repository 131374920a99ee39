package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/config"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/middleware"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/service"
)

// ApplicationHandler serves the wizard session endpoints.
type ApplicationHandler struct {
	appService service.ApplicationService
	sessionCfg *config.SessionConfig
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(appService service.ApplicationService, sessionCfg *config.SessionConfig) *ApplicationHandler {
	return &ApplicationHandler{appService: appService, sessionCfg: sessionCfg}
}

type startRequest struct {
	ProductSlug string `json:"product_slug" binding:"required"`
	Bank        string `json:"bank"`
	Tenure      int    `json:"tenure"`
	DownPayment string `json:"down_payment"`
	Variant     string `json:"variant"`
	// Color is the legacy deep-link alias for Variant.
	Color string `json:"color"`
}

// Start handles POST /api/v1/applications
// @Summary Open a new EMI wizard session
// @Description Creates a draft application for a product. Bank, tenure, down payment, and variant may be seeded from deep-link parameters.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body startRequest true "Session seed"
// @Success 201 {object} APIResponse "Session view plus bearer token"
// @Failure 404 {object} APIResponse "Product not found"
// @Router /applications [post]
func (h *ApplicationHandler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "product_slug is required")
		return
	}

	variant := req.Variant
	if variant == "" {
		variant = req.Color
	}

	view, err := h.appService.Start(c.Request.Context(), service.StartInput{
		ProductSlug: req.ProductSlug,
		BankName:    req.Bank,
		Tenure:      req.Tenure,
		DownPayment: req.DownPayment,
		Variant:     variant,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	token, err := middleware.IssueSessionToken(h.sessionCfg, view.Application.ID)
	if err != nil {
		log.Printf("applicationHandler.Start: token issue failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
		return
	}

	RespondCreated(c, gin.H{"token": token, "session": view})
}

// Get handles GET /api/v1/applications/me
// @Summary Fetch the current wizard session state
// @Tags applications
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse "Session not found or expired"
// @Security BearerAuth
// @Router /applications/me [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	view, err := h.appService.Get(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

type chooseOptionRequest struct {
	Option domain.FinancingOption `json:"option" binding:"required"`
}

// ChooseOption handles POST /api/v1/applications/me/option
// @Summary Select or switch the financing option
// @Description Moves the wizard to step 1. Previously entered field values are preserved across option switches.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body chooseOptionRequest true "Financing option"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Unknown option"
// @Security BearerAuth
// @Router /applications/me/option [post]
func (h *ApplicationHandler) ChooseOption(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req chooseOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "option is required")
		return
	}
	view, err := h.appService.ChooseOption(c.Request.Context(), sessionID, req.Option)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

type setVariantRequest struct {
	Variant string `json:"variant"`
}

// SetVariant handles PUT /api/v1/applications/me/variant
// @Summary Record the chosen product variant
// @Tags applications
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /applications/me/variant [put]
func (h *ApplicationHandler) SetVariant(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req setVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "malformed request body")
		return
	}
	view, err := h.appService.SetVariant(c.Request.Context(), sessionID, req.Variant)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// UpdateApplicant handles PUT /api/v1/applications/me/applicant
// @Summary Update the applicant section
// @Tags applications
// @Accept json
// @Produce json
// @Param request body domain.PersonInfo true "Applicant details"
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /applications/me/applicant [put]
func (h *ApplicationHandler) UpdateApplicant(c *gin.Context) {
	h.updatePerson(c, h.appService.UpdateApplicant)
}

// UpdateGuarantor handles PUT /api/v1/applications/me/guarantor
// @Summary Update the guarantor section
// @Tags applications
// @Accept json
// @Produce json
// @Param request body domain.PersonInfo true "Guarantor details"
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /applications/me/guarantor [put]
func (h *ApplicationHandler) UpdateGuarantor(c *gin.Context) {
	h.updatePerson(c, h.appService.UpdateGuarantor)
}

func (h *ApplicationHandler) updatePerson(
	c *gin.Context,
	update func(ctx context.Context, id uuid.UUID, info domain.PersonInfo) (*service.SessionView, error),
) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var info domain.PersonInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "malformed request body")
		return
	}
	view, err := update(c.Request.Context(), sessionID, info)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// UpdateBankOrCard handles PUT /api/v1/applications/me/bank-or-card
// @Summary Update the bank account or credit card section
// @Tags applications
// @Accept json
// @Produce json
// @Param request body domain.BankOrCardInfo true "Bank or card details"
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /applications/me/bank-or-card [put]
func (h *ApplicationHandler) UpdateBankOrCard(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var info domain.BankOrCardInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "malformed request body")
		return
	}
	view, err := h.appService.UpdateBankOrCard(c.Request.Context(), sessionID, info)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// UpdateEMIParameters handles PUT /api/v1/applications/me/emi-parameters
// @Summary Update the installment plan parameters
// @Tags applications
// @Accept json
// @Produce json
// @Param request body domain.EMIParameters true "Plan parameters"
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /applications/me/emi-parameters [put]
func (h *ApplicationHandler) UpdateEMIParameters(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var params domain.EMIParameters
	if err := c.ShouldBindJSON(&params); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "malformed request body")
		return
	}
	view, err := h.appService.UpdateEMIParameters(c.Request.Context(), sessionID, params)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// UploadDocument handles POST /api/v1/applications/me/documents/:slot
// @Summary Upload a document into a slot
// @Description Replaces any previous upload in the slot; the replaced file and its preview URL are released.
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Param slot path string true "Document slot"
// @Param file formData file true "PDF, JPG, or PNG"
// @Success 201 {object} APIResponse{data=domain.DocumentRef}
// @Failure 400 {object} APIResponse "Unknown slot or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Security BearerAuth
// @Router /applications/me/documents/{slot} [post]
func (h *ApplicationHandler) UploadDocument(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	ref, err := h.appService.UploadDocument(c.Request.Context(), service.DocumentUploadInput{
		SessionID: sessionID,
		Slot:      domain.DocumentSlot(c.Param("slot")),
		File:      file,
		Header:    header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, ref)
}

// RemoveDocument handles DELETE /api/v1/applications/me/documents/:slot
// @Summary Remove a document from a slot
// @Tags applications
// @Produce json
// @Param slot path string true "Document slot"
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /applications/me/documents/{slot} [delete]
func (h *ApplicationHandler) RemoveDocument(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	if err := h.appService.RemoveDocument(c.Request.Context(), sessionID, domain.DocumentSlot(c.Param("slot"))); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"removed": true})
}

// Advance handles POST /api/v1/applications/me/advance
// @Summary Validate the current step and move forward
// @Description Returns field errors and missing documents when the step is blocked instead of advancing.
// @Tags applications
// @Produce json
// @Success 200 {object} APIResponse{data=wizard.AdvanceResult}
// @Failure 400 {object} APIResponse "No financing option selected"
// @Security BearerAuth
// @Router /applications/me/advance [post]
func (h *ApplicationHandler) Advance(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	result, err := h.appService.Advance(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Back handles POST /api/v1/applications/me/back
// @Summary Move one step backward
// @Tags applications
// @Produce json
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /applications/me/back [post]
func (h *ApplicationHandler) Back(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	view, err := h.appService.Back(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

type jumpRequest struct {
	Step *int `json:"step" binding:"required"`
}

// JumpTo handles POST /api/v1/applications/me/jump
// @Summary Jump to a previously reached step
// @Tags applications
// @Accept json
// @Produce json
// @Param request body jumpRequest true "Target step index"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Step not reachable"
// @Security BearerAuth
// @Router /applications/me/jump [post]
func (h *ApplicationHandler) JumpTo(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req jumpRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Step == nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "step is required")
		return
	}
	view, err := h.appService.JumpTo(c.Request.Context(), sessionID, *req.Step)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// Submit handles POST /api/v1/applications/me/submit
// @Summary Submit the application to the financing partner
// @Description Single attempt; on partner failure the session stays on the review step so the user can retry.
// @Tags applications
// @Produce json
// @Success 200 {object} APIResponse{data=service.SubmitResult}
// @Failure 400 {object} APIResponse "Not on the review step"
// @Failure 409 {object} APIResponse "Already submitted"
// @Failure 502 {object} APIResponse "Partner rejected the submission"
// @Security BearerAuth
// @Router /applications/me/submit [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	result, err := h.appService.Submit(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Abandon handles DELETE /api/v1/applications/me
// @Summary Discard the wizard session
// @Description Releases all uploaded documents and deletes the saved state.
// @Tags applications
// @Produce json
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /applications/me [delete]
func (h *ApplicationHandler) Abandon(c *gin.Context) {
	sessionID, ok := sessionFromContext(c)
	if !ok {
		return
	}
	if err := h.appService.Abandon(c.Request.Context(), sessionID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"abandoned": true})
}

// sessionFromContext extracts the session ID or writes the 401 itself.
func sessionFromContext(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return uuid.Nil, false
	}
	return sessionID, true
}
