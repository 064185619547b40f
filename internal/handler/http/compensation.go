package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/meridian-erp/erp-backend-go/internal/domain/compensation"
	"github.com/meridian-erp/erp-backend-go/internal/handler/http/response"
)

type CompensationHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type compensationHandlerImpl struct {
	compensationService compensation.CompensationService
}

func NewCompensationHandler(compensationService compensation.CompensationService) CompensationHandler {
	return &compensationHandlerImpl{compensationService: compensationService}
}

// periodFromQuery parses the mandatory year and month query parameters shared
// by the month-scoped endpoints.
func periodFromQuery(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return 0, 0, false
	}
	return year, month, true
}

func (h *compensationHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req compensation.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.compensationService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation generated", result)
}

func (h *compensationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.compensationService.List(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *compensationHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req compensation.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.compensationService.MarkPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation records marked paid", result)
}

func (h *compensationHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	filename, content, err := h.compensationService.Export(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
