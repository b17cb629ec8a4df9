package repository

import (
	"context"
	"errors"

	"github.com/shift-planner-api/internal/domain"
	"gorm.io/gorm"
)

// ShiftPlanRepository определяет интерфейс для работы с графиками смен
// и их связями с подразделениями
type ShiftPlanRepository interface {
	GetAll(ctx context.Context) ([]domain.ShiftPlan, error)
	GetByID(ctx context.Context, id string) (*domain.ShiftPlan, error)
	GetByIDWithDepartments(ctx context.Context, id string) (*domain.ShiftPlan, error)
	GetDetails(ctx context.Context, id string) (*domain.ShiftPlan, error)
	CreateWithDepartments(ctx context.Context, plan *domain.ShiftPlan, links []domain.ShiftPlanDepartment) error
	UpdateWithDepartments(ctx context.Context, plan *domain.ShiftPlan, links []domain.ShiftPlanDepartment) error
	DeleteCascade(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	GetPlanDepartments(ctx context.Context, planID string) ([]domain.ShiftPlanDepartment, error)
	GetPlanDepartment(ctx context.Context, planID, departmentID string) (*domain.ShiftPlanDepartment, error)
	GetPlanDepartmentsByDepartment(ctx context.Context, departmentID string) ([]domain.ShiftPlanDepartment, error)
	DeletePlanDepartmentsByDepartment(ctx context.Context, departmentID string) error
	UpdateDisplayOrder(ctx context.Context, planID, departmentID string, order int) error
}

type shiftPlanRepository struct {
	db *gorm.DB
}

// NewShiftPlanRepository создаёт новый экземпляр репозитория
func NewShiftPlanRepository(db *gorm.DB) ShiftPlanRepository {
	return &shiftPlanRepository{db: db}
}

func (r *shiftPlanRepository) GetAll(ctx context.Context) ([]domain.ShiftPlan, error) {
	var plans []domain.ShiftPlan
	err := r.db.WithContext(ctx).
		Preload("Departments", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Departments.Department").
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *shiftPlanRepository) GetByID(ctx context.Context, id string) (*domain.ShiftPlan, error) {
	var plan domain.ShiftPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShiftPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *shiftPlanRepository) GetByIDWithDepartments(ctx context.Context, id string) (*domain.ShiftPlan, error) {
	var plan domain.ShiftPlan
	err := r.db.WithContext(ctx).
		Preload("Departments", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Departments.Department").
		First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShiftPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *shiftPlanRepository) GetDetails(ctx context.Context, id string) (*domain.ShiftPlan, error) {
	var plan domain.ShiftPlan
	err := r.db.WithContext(ctx).
		Preload("Departments", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Departments.Department").
		Preload("Departments.Department.Employees", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("ShiftTypes", func(db *gorm.DB) *gorm.DB {
			return db.Order("code ASC")
		}).
		Preload("Schedules").
		First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShiftPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *shiftPlanRepository) CreateWithDepartments(ctx context.Context, plan *domain.ShiftPlan, links []domain.ShiftPlanDepartment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range links {
			if err := tx.Create(&links[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrDepartmentNotFound
	}
	return err
}

func (r *shiftPlanRepository) UpdateWithDepartments(ctx context.Context, plan *domain.ShiftPlan, links []domain.ShiftPlanDepartment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.ShiftPlan{}).
			Where("id = ?", plan.ID).
			Updates(map[string]any{
				"name":       plan.Name,
				"start_date": plan.StartDate,
				"end_date":   plan.EndDate,
				"status":     plan.Status,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("shift_plan_id = ?", plan.ID).
			Delete(&domain.ShiftPlanDepartment{}).Error; err != nil {
			return err
		}
		for i := range links {
			if err := tx.Create(&links[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrDepartmentNotFound
	}
	return err
}

func (r *shiftPlanRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shift_plan_id = ?", id).
			Delete(&domain.Schedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shift_plan_id = ?", id).
			Delete(&domain.ShiftType{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shift_plan_id = ?", id).
			Delete(&domain.ShiftPlanDepartment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.ShiftPlan{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrShiftPlanNotFound
		}
		return nil
	})
}

func (r *shiftPlanRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).Model(&domain.ShiftPlan{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrShiftPlanNotFound
	}
	return nil
}

func (r *shiftPlanRepository) GetPlanDepartments(ctx context.Context, planID string) ([]domain.ShiftPlanDepartment, error) {
	var links []domain.ShiftPlanDepartment
	err := r.db.WithContext(ctx).
		Where("shift_plan_id = ?", planID).
		Order("display_order ASC").
		Find(&links).Error
	return links, err
}

func (r *shiftPlanRepository) GetPlanDepartment(ctx context.Context, planID, departmentID string) (*domain.ShiftPlanDepartment, error) {
	var link domain.ShiftPlanDepartment
	err := r.db.WithContext(ctx).
		First(&link, "shift_plan_id = ? AND department_id = ?", planID, departmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownPlanDepartment
		}
		return nil, err
	}
	return &link, nil
}

func (r *shiftPlanRepository) GetPlanDepartmentsByDepartment(ctx context.Context, departmentID string) ([]domain.ShiftPlanDepartment, error) {
	var links []domain.ShiftPlanDepartment
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Find(&links).Error
	return links, err
}

func (r *shiftPlanRepository) DeletePlanDepartmentsByDepartment(ctx context.Context, departmentID string) error {
	return r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Delete(&domain.ShiftPlanDepartment{}).Error
}

func (r *shiftPlanRepository) UpdateDisplayOrder(ctx context.Context, planID, departmentID string, order int) error {
	return r.db.WithContext(ctx).Model(&domain.ShiftPlanDepartment{}).
		Where("shift_plan_id = ? AND department_id = ?", planID, departmentID).
		Update("display_order", order).Error
}
