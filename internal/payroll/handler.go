package payroll

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/transport"
	"github.com/anshumat/payroll-management/pkg/logger"
)

type ServiceAPI interface {
	CreateSlip(p internal.Principal, dto CreateSalarySlipDTO) (*SalarySlip, error)
	UpdateSlip(p internal.Principal, slipID int64, dto UpdateSalarySlipDTO) (*SalarySlip, error)
	ListSlips(p internal.Principal) ([]*SalarySlip, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateSlip(w http.ResponseWriter, r *http.Request) {
	principal, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("CreateSlip: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateSalarySlipDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateSlip: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	slip, err := h.Service.CreateSlip(principal, dto)
	if err != nil {
		h.Logger.Error("CreateSlip: service error", "error", err, "user_id", principal.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateSlip: salary slip created",
		"slip_id", slip.ID,
		"employee_id", slip.EmployeeID,
		"net_salary", slip.NetSalary)

	h.WriteJSON(w, http.StatusCreated, slip)
}

func (h *Handler) UpdateSlip(w http.ResponseWriter, r *http.Request) {
	principal, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("UpdateSlip: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	slipIDStr := chi.URLParam(r, "id")
	slipID, err := strconv.ParseInt(slipIDStr, 10, 64)
	if err != nil {
		h.Logger.Error("UpdateSlip: invalid slip ID", "id", slipIDStr)
		h.WriteError(w, http.StatusBadRequest, "invalid salary slip ID")
		return
	}

	var dto UpdateSalarySlipDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateSlip: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	slip, err := h.Service.UpdateSlip(principal, slipID, dto)
	if err != nil {
		h.Logger.Error("UpdateSlip: service error", "error", err, "slip_id", slipID, "user_id", principal.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, slip)
}

func (h *Handler) ListSlips(w http.ResponseWriter, r *http.Request) {
	principal, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("ListSlips: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	slips, err := h.Service.ListSlips(principal)
	if err != nil {
		h.Logger.Error("ListSlips: service error", "error", err, "user_id", principal.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"salary_slips": slips,
	})
}
