package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shift-planner-api/internal/dto"
	"github.com/shift-planner-api/internal/service"
)

type ShiftTypeHandler struct {
	typeService service.ShiftTypeService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewShiftTypeHandler(typeService service.ShiftTypeService, logger *slog.Logger) *ShiftTypeHandler {
	return &ShiftTypeHandler{
		typeService: typeService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *ShiftTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	planID := r.URL.Query().Get("shiftPlanId")
	if !validUUID(planID) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift plan id", "")
		return
	}

	types, err := h.typeService.ListByPlan(r.Context(), planID)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, types)
}

func (h *ShiftTypeHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift type id", "")
		return
	}

	st, err := h.typeService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, st)
}

func (h *ShiftTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	st, err := h.typeService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, st)
}

func (h *ShiftTypeHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift type id", "")
		return
	}

	var req dto.UpdateShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	st, err := h.typeService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, st)
}

func (h *ShiftTypeHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift type id", "")
		return
	}

	if err := h.typeService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
