package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shift-planner-api/internal/domain"
	"gorm.io/gorm"
)

// ScheduleRepository определяет интерфейс для работы с назначениями смен
type ScheduleRepository interface {
	Create(ctx context.Context, sched *domain.Schedule) error
	Update(ctx context.Context, sched *domain.Schedule) error
	Delete(ctx context.Context, id string) error
	FindByPlanEmployeeDate(ctx context.Context, planID, employeeID string, date time.Time) (*domain.Schedule, error)
	GetByPlan(ctx context.Context, planID string) ([]domain.Schedule, error)
	CountByEmployee(ctx context.Context, employeeID string) (int64, error)
	CountByShiftType(ctx context.Context, shiftTypeID string) (int64, error)
	CountByPlanDepartment(ctx context.Context, planDepartmentID string) (int64, error)
	ClearPlanDepartmentRef(ctx context.Context, planDepartmentID string) error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository создаёт новый экземпляр репозитория
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, sched *domain.Schedule) error {
	err := r.db.WithContext(ctx).Create(sched).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateSchedule
	}
	return err
}

func (r *scheduleRepository) Update(ctx context.Context, sched *domain.Schedule) error {
	return r.db.WithContext(ctx).Model(sched).
		Select("shift_type_id", "shift_plan_department_id").
		Updates(sched).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Schedule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *scheduleRepository) FindByPlanEmployeeDate(ctx context.Context, planID, employeeID string, date time.Time) (*domain.Schedule, error) {
	var sched domain.Schedule
	err := r.db.WithContext(ctx).
		First(&sched, "shift_plan_id = ? AND employee_id = ? AND date = ?", planID, employeeID, date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}
	return &sched, nil
}

func (r *scheduleRepository) GetByPlan(ctx context.Context, planID string) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("shift_plan_id = ?", planID).
		Order("date ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) CountByEmployee(ctx context.Context, employeeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Schedule{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepository) CountByShiftType(ctx context.Context, shiftTypeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Schedule{}).
		Where("shift_type_id = ?", shiftTypeID).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepository) CountByPlanDepartment(ctx context.Context, planDepartmentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Schedule{}).
		Where("shift_plan_department_id = ?", planDepartmentID).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepository) ClearPlanDepartmentRef(ctx context.Context, planDepartmentID string) error {
	return r.db.WithContext(ctx).Model(&domain.Schedule{}).
		Where("shift_plan_department_id = ?", planDepartmentID).
		Update("shift_plan_department_id", nil).Error
}
