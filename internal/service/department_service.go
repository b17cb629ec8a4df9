package service

import (
	"context"
	"strings"

	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
	"github.com/shift-planner-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id string) (int, error)
}

type departmentService struct {
	deptRepo  repository.DepartmentRepository
	empRepo   repository.EmployeeRepository
	planRepo  repository.ShiftPlanRepository
	schedRepo repository.ScheduleRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(
	deptRepo repository.DepartmentRepository,
	empRepo repository.EmployeeRepository,
	planRepo repository.ShiftPlanRepository,
	schedRepo repository.ScheduleRepository,
) DepartmentService {
	return &departmentService{
		deptRepo:  deptRepo,
		empRepo:   empRepo,
		planRepo:  planRepo,
		schedRepo: schedRepo,
	}
}

func (s *departmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.GetAll(ctx)
}

func (s *departmentService) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	id := strings.TrimSpace(req.ID)

	// Идентификатор задаётся пользователем, проверяем уникальность
	exists, err := s.deptRepo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentID
	}

	dept := &domain.Department{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Groups:      req.Groups,
		Status:      domain.DepartmentStatusActive,
		ManagerID:   req.ManagerID,
	}
	if req.Status != nil {
		dept.Status = *req.Status
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return s.deptRepo.GetByID(ctx, dept.ID)
}

func (s *departmentService) Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dept.Name = strings.TrimSpace(req.Name)
	dept.Description = req.Description
	dept.Groups = req.Groups
	if req.Status != nil {
		dept.Status = *req.Status
	}
	// Отсутствующий managerId снимает руководителя
	dept.ManagerID = req.ManagerID

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	return s.deptRepo.GetByID(ctx, id)
}

// Delete удаляет подразделение без сотрудников. Назначения, привязанные к
// связям подразделения с графиками, сохраняются - у них обнуляется ссылка
// на связь. Возвращает количество графиков, из которых подразделение удалено.
func (s *departmentService) Delete(ctx context.Context, id string) (int, error) {
	if _, err := s.deptRepo.GetByID(ctx, id); err != nil {
		return 0, err
	}

	count, err := s.empRepo.CountByDepartment(ctx, id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, domain.ErrDepartmentHasEmployees
	}

	links, err := s.planRepo.GetPlanDepartmentsByDepartment(ctx, id)
	if err != nil {
		return 0, err
	}

	for _, link := range links {
		scheduled, err := s.schedRepo.CountByPlanDepartment(ctx, link.ID)
		if err != nil {
			return 0, err
		}
		if scheduled > 0 {
			if err := s.schedRepo.ClearPlanDepartmentRef(ctx, link.ID); err != nil {
				return 0, err
			}
		}
	}

	if err := s.planRepo.DeletePlanDepartmentsByDepartment(ctx, id); err != nil {
		return 0, err
	}

	if err := s.deptRepo.Delete(ctx, id); err != nil {
		return 0, err
	}

	return len(links), nil
}
