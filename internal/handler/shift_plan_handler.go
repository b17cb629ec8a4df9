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

type ShiftPlanHandler struct {
	planService   service.ShiftPlanService
	exportService service.ExportService
	validator     *validator.Validate
	logger        *slog.Logger
}

func NewShiftPlanHandler(
	planService service.ShiftPlanService,
	exportService service.ExportService,
	logger *slog.Logger,
) *ShiftPlanHandler {
	return &ShiftPlanHandler{
		planService:   planService,
		exportService: exportService,
		validator:     validator.New(),
		logger:        logger,
	}
}

func (h *ShiftPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, plans)
}

func (h *ShiftPlanHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift plan id", "")
		return
	}

	plan, err := h.planService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, plan)
}

func (h *ShiftPlanHandler) GetDetails(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift plan id", "")
		return
	}

	plan, err := h.planService.GetDetails(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, plan)
}

func (h *ShiftPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveShiftPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	plan, err := h.planService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, plan)
}

func (h *ShiftPlanHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift plan id", "")
		return
	}

	var req dto.SaveShiftPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	plan, err := h.planService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, plan)
}

func (h *ShiftPlanHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift plan id", "")
		return
	}

	var req dto.UpdateShiftPlanStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Status must be one of DRAFT, ACTIVE, ARCHIVED", err.Error())
		return
	}

	plan, err := h.planService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, plan)
}

func (h *ShiftPlanHandler) ReorderDepartments(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift plan id", "")
		return
	}

	var req dto.ReorderDepartmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	plan, err := h.planService.ReorderDepartments(r.Context(), id, req.DepartmentIDs)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, plan)
}

func (h *ShiftPlanHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift plan id", "")
		return
	}

	if err := h.planService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ShiftPlanHandler) Export(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift plan id", "")
		return
	}

	file, filename, err := h.exportService.ExportPlan(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := file.Write(w); err != nil {
		h.logger.Error("failed to write workbook", slog.Any("error", err))
	}
}
