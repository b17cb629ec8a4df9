package repository

import (
	"context"
	"errors"

	"github.com/shift-planner-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	GetAll(ctx context.Context) ([]domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	CountManagedBy(ctx context.Context, employeeID string) (int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	err := r.db.WithContext(ctx).Create(dept).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateDepartmentID
	}
	return err
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Employees", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&dept, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetAll(ctx context.Context) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Employees", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	// Явный Select, чтобы снятый руководитель записался как NULL
	return r.db.WithContext(ctx).Model(dept).
		Select("name", "description", "groups", "status", "manager_id").
		Updates(dept).Error
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *departmentRepository) CountManagedBy(ctx context.Context, employeeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).
		Where("manager_id = ?", employeeID).
		Count(&count).Error
	return count, err
}
