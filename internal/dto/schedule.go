package dto

import (
	"github.com/shift-planner-api/internal/domain"
)

// ScheduleChange - одно изменение в пакете назначений
type ScheduleChange struct {
	EmployeeID  string `json:"employeeId"`
	Date        string `json:"date"`
	ShiftTypeID string `json:"shiftTypeId"`
}

// BatchScheduleRequest - пакет изменений назначений для одного графика
type BatchScheduleRequest struct {
	Changes []ScheduleChange `json:"changes"`
}

// ScheduleChangeResult - результат обработки одного изменения
type ScheduleChangeResult struct {
	EmployeeID string           `json:"employeeId"`
	Date       string           `json:"date"`
	Success    bool             `json:"success"`
	Action     string           `json:"action,omitempty"`
	Error      string           `json:"error,omitempty"`
	Schedule   *domain.Schedule `json:"schedule,omitempty"`
}

// BatchScheduleResponse - сводка по обработанному пакету
type BatchScheduleResponse struct {
	Message   string                 `json:"message"`
	Succeeded int                    `json:"succeeded"`
	Total     int                    `json:"total"`
	Results   []ScheduleChangeResult `json:"results"`
}
