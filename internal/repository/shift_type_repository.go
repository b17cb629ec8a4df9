package repository

import (
	"context"
	"errors"

	"github.com/shift-planner-api/internal/domain"
	"gorm.io/gorm"
)

// ShiftTypeRepository определяет интерфейс для работы с типами смен
type ShiftTypeRepository interface {
	Create(ctx context.Context, st *domain.ShiftType) error
	GetByID(ctx context.Context, id string) (*domain.ShiftType, error)
	GetByPlan(ctx context.Context, planID string) ([]domain.ShiftType, error)
	Update(ctx context.Context, st *domain.ShiftType) error
	Delete(ctx context.Context, id string) error
}

type shiftTypeRepository struct {
	db *gorm.DB
}

// NewShiftTypeRepository создаёт новый экземпляр репозитория
func NewShiftTypeRepository(db *gorm.DB) ShiftTypeRepository {
	return &shiftTypeRepository{db: db}
}

func (r *shiftTypeRepository) Create(ctx context.Context, st *domain.ShiftType) error {
	err := r.db.WithContext(ctx).Create(st).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateShiftTypeCode
	}
	return err
}

func (r *shiftTypeRepository) GetByID(ctx context.Context, id string) (*domain.ShiftType, error) {
	var st domain.ShiftType
	err := r.db.WithContext(ctx).First(&st, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShiftTypeNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *shiftTypeRepository) GetByPlan(ctx context.Context, planID string) ([]domain.ShiftType, error) {
	var types []domain.ShiftType
	err := r.db.WithContext(ctx).
		Where("shift_plan_id = ?", planID).
		Order("code ASC").
		Find(&types).Error
	return types, err
}

func (r *shiftTypeRepository) Update(ctx context.Context, st *domain.ShiftType) error {
	// Явный Select, чтобы снятое время записалось как NULL
	err := r.db.WithContext(ctx).Model(st).
		Select("code", "name", "color", "start_time", "end_time", "requires_time").
		Updates(st).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateShiftTypeCode
	}
	return err
}

func (r *shiftTypeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.ShiftType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrShiftTypeNotFound
	}
	return nil
}
