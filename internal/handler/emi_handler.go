package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/emi"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/scheduleexport"
)

// EMIHandler serves the installment calculator and bank provider endpoints.
type EMIHandler struct {
	calculator *emi.Calculator
	registry   *emi.Registry
}

// NewEMIHandler creates a new EMIHandler.
func NewEMIHandler(calculator *emi.Calculator, registry *emi.Registry) *EMIHandler {
	return &EMIHandler{calculator: calculator, registry: registry}
}

type calculateRequest struct {
	emi.Input
	IncludeSchedule bool `json:"include_schedule"`
}

type calculateResponse struct {
	emi.Result
	Schedule []emi.ScheduleRow `json:"schedule,omitempty"`
}

// Calculate handles POST /api/v1/emi/calculate
// @Summary Calculate an installment plan
// @Description Compute the monthly payment, totals, and optionally the full repayment schedule
// @Tags emi
// @Accept json
// @Produce json
// @Param request body calculateRequest true "Calculation input"
// @Success 200 {object} APIResponse{data=calculateResponse}
// @Failure 400 {object} APIResponse "Malformed request body"
// @Router /emi/calculate [post]
func (h *EMIHandler) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "malformed request body")
		return
	}

	result := h.calculator.Calculate(req.Input)
	resp := calculateResponse{Result: result}
	if req.IncludeSchedule {
		resp.Schedule = emi.Schedule(result)
	}
	RespondOK(c, resp)
}

// ListBanks handles GET /api/v1/emi/banks
// @Summary List financing partner banks
// @Tags emi
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.BankProvider}
// @Router /emi/banks [get]
func (h *EMIHandler) ListBanks(c *gin.Context) {
	RespondOK(c, h.registry.List())
}

// GetBank handles GET /api/v1/emi/banks/:id
// @Summary Get one financing partner bank by id or name
// @Tags emi
// @Produce json
// @Param id path string true "Bank id or display name"
// @Success 200 {object} APIResponse{data=domain.BankProvider}
// @Failure 404 {object} APIResponse "Unknown bank"
// @Router /emi/banks/{id} [get]
func (h *EMIHandler) GetBank(c *gin.Context) {
	bank, err := h.registry.FindBank(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bank)
}

// ExportSchedule handles POST /api/v1/emi/schedule/export
// @Summary Download the repayment schedule as CSV or XLSX
// @Tags emi
// @Accept json
// @Produce application/octet-stream
// @Param format query string false "csv (default) or xlsx"
// @Param request body emi.Input true "Calculation input"
// @Success 200 {file} file
// @Failure 400 {object} APIResponse "Malformed request body or unknown format"
// @Router /emi/schedule/export [post]
func (h *EMIHandler) ExportSchedule(c *gin.Context) {
	var input emi.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "malformed request body")
		return
	}

	result := h.calculator.Calculate(input)
	rows := emi.Schedule(result)

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		var buf bytes.Buffer
		buf.Write(scheduleexport.BOM)
		w := scheduleexport.NewCSVWriter(&buf)
		if err := w.WriteHeader(); err == nil {
			_ = w.WriteSchedule(rows)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "schedule export failed")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=emi-schedule-%dm.csv", result.TenureMonths))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())

	case "xlsx":
		var buf bytes.Buffer
		if err := scheduleexport.WriteXLSX(&buf, &result, rows); err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "schedule export failed")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=emi-schedule-%dm.xlsx", result.TenureMonths))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())

	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}
