package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shift-planner-api/internal/dto"
	"github.com/shift-planner-api/internal/service"
)

type ScheduleHandler struct {
	schedService service.ScheduleService
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewScheduleHandler(schedService service.ScheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		schedService: schedService,
		validator:    validator.New(),
		logger:       logger,
	}
}

// ApplyChanges обрабатывает пакет изменений назначений. Ошибки по отдельным
// записям не влияют на статус ответа: 400 возвращается только для
// структурно некорректного тела запроса.
func (h *ScheduleHandler) ApplyChanges(w http.ResponseWriter, r *http.Request, planID string) {
	if !validUUID(planID) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid shift plan id", "")
		return
	}

	var req dto.BatchScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Changes must be a non-empty array", err.Error())
		return
	}
	if len(req.Changes) == 0 {
		respondError(h.logger, w, http.StatusBadRequest, "Changes must be a non-empty array", "")
		return
	}

	result, err := h.schedService.ApplyChanges(r.Context(), planID, req.Changes)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, result)
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if !validUUID(id) {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid schedule id", "")
		return
	}

	if err := h.schedService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
