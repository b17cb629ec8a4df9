package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
	"github.com/shift-planner-api/internal/repository"
)

// ScheduleService определяет интерфейс бизнес-логики для назначений смен
type ScheduleService interface {
	ApplyChanges(ctx context.Context, planID string, changes []dto.ScheduleChange) (*dto.BatchScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type scheduleService struct {
	schedRepo repository.ScheduleRepository
	planRepo  repository.ShiftPlanRepository
	empRepo   repository.EmployeeRepository
}

// NewScheduleService создаёт новый экземпляр сервиса
func NewScheduleService(
	schedRepo repository.ScheduleRepository,
	planRepo repository.ShiftPlanRepository,
	empRepo repository.EmployeeRepository,
) ScheduleService {
	return &scheduleService{
		schedRepo: schedRepo,
		planRepo:  planRepo,
		empRepo:   empRepo,
	}
}

// ApplyChanges применяет пакет изменений к одному графику. Каждое изменение
// обрабатывается независимо: ошибка по одной записи не прерывает пакет.
// Повторная запись для пары (сотрудник, дата) обновляет существующее
// назначение, а не создаёт дубликат.
func (s *scheduleService) ApplyChanges(ctx context.Context, planID string, changes []dto.ScheduleChange) (*dto.BatchScheduleResponse, error) {
	if len(changes) == 0 {
		return nil, domain.ErrEmptyChangeList
	}
	if _, err := s.planRepo.GetByID(ctx, planID); err != nil {
		return nil, err
	}

	results := make([]dto.ScheduleChangeResult, 0, len(changes))
	succeeded := 0

	for _, change := range changes {
		result := s.applyChange(ctx, planID, change)
		if result.Success {
			succeeded++
		}
		results = append(results, result)
	}

	return &dto.BatchScheduleResponse{
		Message:   fmt.Sprintf("Applied %d of %d changes", succeeded, len(changes)),
		Succeeded: succeeded,
		Total:     len(changes),
		Results:   results,
	}, nil
}

func (s *scheduleService) applyChange(ctx context.Context, planID string, change dto.ScheduleChange) dto.ScheduleChangeResult {
	result := dto.ScheduleChangeResult{
		EmployeeID: change.EmployeeID,
		Date:       change.Date,
	}

	if change.EmployeeID == "" || change.Date == "" || change.ShiftTypeID == "" {
		result.Error = "Missing required fields"
		return result
	}

	date, err := time.ParseInLocation(dateLayout, change.Date, time.Local)
	if err != nil {
		result.Error = "Invalid date format"
		return result
	}

	existing, err := s.schedRepo.FindByPlanEmployeeDate(ctx, planID, change.EmployeeID, date)
	switch {
	case err == nil:
		existing.ShiftTypeID = change.ShiftTypeID
		if err := s.schedRepo.Update(ctx, existing); err != nil {
			result.Error = "Database error"
			return result
		}
		result.Success = true
		result.Action = "updated"
		result.Schedule = existing

	case errors.Is(err, domain.ErrScheduleNotFound):
		sched := &domain.Schedule{
			ID:                    uuid.NewString(),
			EmployeeID:            change.EmployeeID,
			ShiftTypeID:           change.ShiftTypeID,
			ShiftPlanID:           planID,
			ShiftPlanDepartmentID: s.resolvePlanDepartment(ctx, planID, change.EmployeeID),
			Date:                  date,
		}
		createErr := s.schedRepo.Create(ctx, sched)
		if errors.Is(createErr, domain.ErrDuplicateSchedule) {
			// Параллельная запись успела первой, уникальный индекс
			// переводит гонку в обновление
			current, findErr := s.schedRepo.FindByPlanEmployeeDate(ctx, planID, change.EmployeeID, date)
			if findErr != nil {
				result.Error = "Database error"
				return result
			}
			current.ShiftTypeID = change.ShiftTypeID
			if err := s.schedRepo.Update(ctx, current); err != nil {
				result.Error = "Database error"
				return result
			}
			result.Success = true
			result.Action = "updated"
			result.Schedule = current
			return result
		}
		if createErr != nil {
			result.Error = "Database error"
			return result
		}
		result.Success = true
		result.Action = "created"
		result.Schedule = sched

	default:
		result.Error = "Database error"
	}

	return result
}

// resolvePlanDepartment находит связь графика с подразделением сотрудника,
// чтобы назначение было привязано к строке подразделения в графике
func (s *scheduleService) resolvePlanDepartment(ctx context.Context, planID, employeeID string) *string {
	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil
	}
	link, err := s.planRepo.GetPlanDepartment(ctx, planID, emp.DepartmentID)
	if err != nil {
		return nil
	}
	return &link.ID
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	return s.schedRepo.Delete(ctx, id)
}
