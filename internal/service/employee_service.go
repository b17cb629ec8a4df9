package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shift-planner-api/internal/domain"
	"github.com/shift-planner-api/internal/dto"
	"github.com/shift-planner-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	empRepo   repository.EmployeeRepository
	deptRepo  repository.DepartmentRepository
	schedRepo repository.ScheduleRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	empRepo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	schedRepo repository.ScheduleRepository,
) EmployeeService {
	return &employeeService{
		empRepo:   empRepo,
		deptRepo:  deptRepo,
		schedRepo: schedRepo,
	}
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.GetAll(ctx)
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	if _, err := s.empRepo.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		return nil, domain.ErrDuplicateEmployeeID
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	emp := &domain.Employee{
		ID:           uuid.NewString(),
		EmployeeID:   strings.TrimSpace(req.EmployeeID),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         strings.TrimSpace(req.Role),
		Status:       domain.EmployeeStatusActive,
		DepartmentID: req.DepartmentID,
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}

	// Пустые необязательные поля не записываются вовсе, чтобы в хранилище
	// не появлялись пустые строки
	emp.Email = optionalValue(req.Email)
	emp.Phone = optionalValue(req.Phone)
	emp.Group = optionalValue(req.Group)

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EmployeeID != emp.EmployeeID {
		other, err := s.empRepo.GetByEmployeeID(ctx, req.EmployeeID)
		if err == nil && other.ID != id {
			return nil, domain.ErrDuplicateEmployeeID
		}
		if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, err
		}
	}

	if req.DepartmentID != emp.DepartmentID {
		if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
			return nil, err
		}
	}

	emp.EmployeeID = strings.TrimSpace(req.EmployeeID)
	emp.FirstName = strings.TrimSpace(req.FirstName)
	emp.LastName = strings.TrimSpace(req.LastName)
	emp.Role = strings.TrimSpace(req.Role)
	emp.DepartmentID = req.DepartmentID
	if req.Status != nil {
		emp.Status = *req.Status
	}

	// В отличие от создания, отсутствующие необязательные поля
	// явно записываются как NULL
	emp.Email = optionalValue(req.Email)
	emp.Phone = optionalValue(req.Phone)
	emp.Group = optionalValue(req.Group)

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.empRepo.GetByID(ctx, id); err != nil {
		return err
	}

	managed, err := s.deptRepo.CountManagedBy(ctx, id)
	if err != nil {
		return err
	}
	if managed > 0 {
		return domain.ErrEmployeeManagesDepartment
	}

	scheduled, err := s.schedRepo.CountByEmployee(ctx, id)
	if err != nil {
		return err
	}
	if scheduled > 0 {
		return domain.ErrEmployeeHasSchedules
	}

	return s.empRepo.Delete(ctx, id)
}

// optionalValue приводит пустое значение к nil
func optionalValue(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
