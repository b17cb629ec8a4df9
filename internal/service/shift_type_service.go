package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
	"github.com/shift-planner-api/internal/repository"
)

// ShiftTypeService определяет интерфейс бизнес-логики для типов смен
type ShiftTypeService interface {
	ListByPlan(ctx context.Context, planID string) ([]domain.ShiftType, error)
	GetByID(ctx context.Context, id string) (*domain.ShiftType, error)
	Create(ctx context.Context, req *dto.CreateShiftTypeRequest) (*domain.ShiftType, error)
	Update(ctx context.Context, id string, req *dto.UpdateShiftTypeRequest) (*domain.ShiftType, error)
	Delete(ctx context.Context, id string) error
}

type shiftTypeService struct {
	typeRepo  repository.ShiftTypeRepository
	planRepo  repository.ShiftPlanRepository
	schedRepo repository.ScheduleRepository

	// Запрет удаления типа смены, на который ссылаются назначения
	deleteGuard bool
}

// NewShiftTypeService создаёт новый экземпляр сервиса
func NewShiftTypeService(
	typeRepo repository.ShiftTypeRepository,
	planRepo repository.ShiftPlanRepository,
	schedRepo repository.ScheduleRepository,
	deleteGuard bool,
) ShiftTypeService {
	return &shiftTypeService{
		typeRepo:    typeRepo,
		planRepo:    planRepo,
		schedRepo:   schedRepo,
		deleteGuard: deleteGuard,
	}
}

func (s *shiftTypeService) ListByPlan(ctx context.Context, planID string) ([]domain.ShiftType, error) {
	if _, err := s.planRepo.GetByID(ctx, planID); err != nil {
		return nil, err
	}
	return s.typeRepo.GetByPlan(ctx, planID)
}

func (s *shiftTypeService) GetByID(ctx context.Context, id string) (*domain.ShiftType, error) {
	return s.typeRepo.GetByID(ctx, id)
}

func (s *shiftTypeService) Create(ctx context.Context, req *dto.CreateShiftTypeRequest) (*domain.ShiftType, error) {
	if _, err := s.planRepo.GetByID(ctx, req.ShiftPlanID); err != nil {
		return nil, err
	}
	if req.RequiresTime && (req.StartTime == nil || req.EndTime == nil) {
		return nil, domain.ErrShiftTimeRequired
	}

	st := &domain.ShiftType{
		ID:           uuid.NewString(),
		Code:         strings.TrimSpace(req.Code),
		Name:         strings.TrimSpace(req.Name),
		Color:        req.Color,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		RequiresTime: req.RequiresTime,
		ShiftPlanID:  req.ShiftPlanID,
	}

	if err := s.typeRepo.Create(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *shiftTypeService) Update(ctx context.Context, id string, req *dto.UpdateShiftTypeRequest) (*domain.ShiftType, error) {
	st, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.RequiresTime && (req.StartTime == nil || req.EndTime == nil) {
		return nil, domain.ErrShiftTimeRequired
	}

	st.Code = strings.TrimSpace(req.Code)
	st.Name = strings.TrimSpace(req.Name)
	st.Color = req.Color
	st.StartTime = req.StartTime
	st.EndTime = req.EndTime
	st.RequiresTime = req.RequiresTime

	if err := s.typeRepo.Update(ctx, st); err != nil {
		return nil, err
	}

	return s.typeRepo.GetByID(ctx, id)
}

func (s *shiftTypeService) Delete(ctx context.Context, id string) error {
	if _, err := s.typeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if s.deleteGuard {
		count, err := s.schedRepo.CountByShiftType(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrShiftTypeInUse
		}
	}

	return s.typeRepo.Delete(ctx, id)
}
