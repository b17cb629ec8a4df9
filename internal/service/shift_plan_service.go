package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
	"github.com/shift-planner-api/internal/repository"
)

const dateLayout = "2006-01-02"

// Горизонт планирования: обе даты графика не дальше 10 лет от текущего момента
const planHorizonYears = 10

// ShiftPlanService определяет интерфейс бизнес-логики для графиков смен
type ShiftPlanService interface {
	List(ctx context.Context) ([]domain.ShiftPlan, error)
	GetByID(ctx context.Context, id string) (*domain.ShiftPlan, error)
	GetDetails(ctx context.Context, id string) (*domain.ShiftPlan, error)
	Create(ctx context.Context, req *dto.SaveShiftPlanRequest) (*domain.ShiftPlan, error)
	Update(ctx context.Context, id string, req *dto.SaveShiftPlanRequest) (*domain.ShiftPlan, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.ShiftPlan, error)
	ReorderDepartments(ctx context.Context, id string, departmentIDs []string) (*domain.ShiftPlan, error)
	Delete(ctx context.Context, id string) error
}

type shiftPlanService struct {
	planRepo repository.ShiftPlanRepository
}

// NewShiftPlanService создаёт новый экземпляр сервиса
func NewShiftPlanService(planRepo repository.ShiftPlanRepository) ShiftPlanService {
	return &shiftPlanService{planRepo: planRepo}
}

func (s *shiftPlanService) List(ctx context.Context) ([]domain.ShiftPlan, error) {
	return s.planRepo.GetAll(ctx)
}

func (s *shiftPlanService) GetByID(ctx context.Context, id string) (*domain.ShiftPlan, error) {
	return s.planRepo.GetByIDWithDepartments(ctx, id)
}

func (s *shiftPlanService) GetDetails(ctx context.Context, id string) (*domain.ShiftPlan, error) {
	return s.planRepo.GetDetails(ctx, id)
}

func (s *shiftPlanService) Create(ctx context.Context, req *dto.SaveShiftPlanRequest) (*domain.ShiftPlan, error) {
	start, end, err := parsePlanDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if len(req.DepartmentIDs) == 0 {
		return nil, domain.ErrNoDepartments
	}

	plan := &domain.ShiftPlan{
		ID:        uuid.NewString(),
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Status:    domain.ShiftPlanStatusDraft,
	}
	if req.Status != nil {
		plan.Status = *req.Status
	}

	links := buildPlanDepartments(plan.ID, req.DepartmentIDs)
	if err := s.planRepo.CreateWithDepartments(ctx, plan, links); err != nil {
		return nil, err
	}

	return s.planRepo.GetByIDWithDepartments(ctx, plan.ID)
}

func (s *shiftPlanService) Update(ctx context.Context, id string, req *dto.SaveShiftPlanRequest) (*domain.ShiftPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	start, end, err := parsePlanDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if len(req.DepartmentIDs) == 0 {
		return nil, domain.ErrNoDepartments
	}

	plan.Name = req.Name
	plan.StartDate = start
	plan.EndDate = end
	if req.Status != nil {
		plan.Status = *req.Status
	}

	// Связи с подразделениями заменяются целиком, не поштучно
	links := buildPlanDepartments(plan.ID, req.DepartmentIDs)
	if err := s.planRepo.UpdateWithDepartments(ctx, plan, links); err != nil {
		return nil, err
	}

	return s.planRepo.GetByIDWithDepartments(ctx, id)
}

func (s *shiftPlanService) UpdateStatus(ctx context.Context, id, status string) (*domain.ShiftPlan, error) {
	if _, err := s.planRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.planRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.planRepo.GetByIDWithDepartments(ctx, id)
}

// ReorderDepartments переставляет перечисленные подразделения по позициям
// в массиве. Подразделения, не попавшие в список, сохраняют прежний порядок.
func (s *shiftPlanService) ReorderDepartments(ctx context.Context, id string, departmentIDs []string) (*domain.ShiftPlan, error) {
	if _, err := s.planRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	links, err := s.planRepo.GetPlanDepartments(ctx, id)
	if err != nil {
		return nil, err
	}

	current := make(map[string]bool, len(links))
	for _, link := range links {
		current[link.DepartmentID] = true
	}
	for _, deptID := range departmentIDs {
		if !current[deptID] {
			return nil, domain.ErrUnknownPlanDepartment
		}
	}

	for i, deptID := range departmentIDs {
		if err := s.planRepo.UpdateDisplayOrder(ctx, id, deptID, i); err != nil {
			return nil, err
		}
	}

	return s.planRepo.GetByIDWithDepartments(ctx, id)
}

func (s *shiftPlanService) Delete(ctx context.Context, id string) error {
	if _, err := s.planRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.planRepo.DeleteCascade(ctx, id)
}

// parsePlanDates разбирает границы графика как календарные даты на полуночь
// и проверяет горизонт планирования
func parsePlanDates(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, startStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDate
	}
	end, err := time.ParseInLocation(dateLayout, endStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDate
	}

	horizon := time.Now().AddDate(planHorizonYears, 0, 0)
	if start.After(horizon) || end.After(horizon) {
		return time.Time{}, time.Time{}, domain.ErrDateTooFarInFuture
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, domain.ErrEndDateNotAfterStart
	}

	return start, end, nil
}

// buildPlanDepartments строит связи графика с подразделениями,
// displayOrder равен позиции в исходном массиве
func buildPlanDepartments(planID string, departmentIDs []string) []domain.ShiftPlanDepartment {
	links := make([]domain.ShiftPlanDepartment, len(departmentIDs))
	for i, deptID := range departmentIDs {
		links[i] = domain.ShiftPlanDepartment{
			ID:           uuid.NewString(),
			ShiftPlanID:  planID,
			DepartmentID: deptID,
			DisplayOrder: i,
		}
	}
	return links
}
