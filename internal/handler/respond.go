package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg, Details: details}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// handleServiceError переводит бизнес-ошибки в HTTP-ответы
func handleServiceError(logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDepartmentNotFound):
		respondError(logger, w, http.StatusNotFound, "Department not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		respondError(logger, w, http.StatusNotFound, "Employee not found", "")
	case errors.Is(err, domain.ErrShiftPlanNotFound):
		respondError(logger, w, http.StatusNotFound, "Shift plan not found", "")
	case errors.Is(err, domain.ErrShiftTypeNotFound):
		respondError(logger, w, http.StatusNotFound, "Shift type not found", "")
	case errors.Is(err, domain.ErrScheduleNotFound):
		respondError(logger, w, http.StatusNotFound, "Schedule not found", "")
	case errors.Is(err, domain.ErrDuplicateDepartmentID):
		respondError(logger, w, http.StatusBadRequest, "Department with this id already exists", "")
	case errors.Is(err, domain.ErrDuplicateEmployeeID):
		respondError(logger, w, http.StatusBadRequest, "Employee with this employee id already exists", "")
	case errors.Is(err, domain.ErrDuplicateShiftTypeCode):
		respondError(logger, w, http.StatusConflict, "Shift type with this code already exists in this plan", "")
	case errors.Is(err, domain.ErrDepartmentHasEmployees):
		respondError(logger, w, http.StatusBadRequest, "Department has assigned employees", "")
	case errors.Is(err, domain.ErrEmployeeManagesDepartment):
		respondError(logger, w, http.StatusBadRequest, "Employee manages a department", "")
	case errors.Is(err, domain.ErrEmployeeHasSchedules):
		respondError(logger, w, http.StatusBadRequest, "Employee has assigned schedules", "")
	case errors.Is(err, domain.ErrShiftTypeInUse):
		respondError(logger, w, http.StatusBadRequest, "Shift type is referenced by existing schedules", "")
	case errors.Is(err, domain.ErrInvalidDate):
		respondError(logger, w, http.StatusBadRequest, "Invalid date format", "")
	case errors.Is(err, domain.ErrEndDateNotAfterStart):
		respondError(logger, w, http.StatusBadRequest, "End date must be after start date", "")
	case errors.Is(err, domain.ErrDateTooFarInFuture):
		respondError(logger, w, http.StatusBadRequest, "Dates must be within 10 years from now", "")
	case errors.Is(err, domain.ErrNoDepartments):
		respondError(logger, w, http.StatusBadRequest, "At least one department is required", "")
	case errors.Is(err, domain.ErrUnknownPlanDepartment):
		respondError(logger, w, http.StatusBadRequest, "Department is not associated with this shift plan", "")
	case errors.Is(err, domain.ErrShiftTimeRequired):
		respondError(logger, w, http.StatusBadRequest, "Start and end time are required for this shift type", "")
	case errors.Is(err, domain.ErrEmptyChangeList):
		respondError(logger, w, http.StatusBadRequest, "Changes must be a non-empty array", "")
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(logger, w, http.StatusInternalServerError, "Internal server error", "")
	}
}

// validUUID проверяет параметр пути, ожидающий системный идентификатор
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
