package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shift-planner-api/internal/dto"
	"github.com/shift-planner-api/internal/service"
)

type DepartmentHandler struct {
	deptService service.DepartmentService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	depts, err := h.deptService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, depts)
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, dept)
}

// ListEmployees возвращает сотрудников подразделения.
func (h *DepartmentHandler) ListEmployees(w http.ResponseWriter, r *http.Request, id string) {
	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, dept.Employees)
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, dept)
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	dept, err := h.deptService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, dept)
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	affected, err := h.deptService.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Department deleted, removed from %d shift plans", affected),
	})
}
