package gormrepo

import (
	"context"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"gorm.io/gorm"
)

type gormWorkoutLogRepository struct {
	db *gorm.DB
}

// NewWorkoutLogRepository creates a new workout log repository backed by gorm.
func NewWorkoutLogRepository(db *gorm.DB) repository.WorkoutLogRepository {
	return &gormWorkoutLogRepository{db: db}
}

func (r *gormWorkoutLogRepository) Create(ctx context.Context, l *domain.WorkoutLog) error {
	return mapError(r.db.WithContext(ctx).Create(l).Error)
}

func (r *gormWorkoutLogRepository) GetByID(ctx context.Context, id uint) (*domain.WorkoutLog, error) {
	var l domain.WorkoutLog
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &l, nil
}

func (r *gormWorkoutLogRepository) ListByMember(ctx context.Context, memberID uint) ([]domain.WorkoutLog, error) {
	var ls []domain.WorkoutLog
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Order("id").Find(&ls).Error
	if err != nil {
		return nil, err
	}
	return ls, nil
}

func (r *gormWorkoutLogRepository) Update(ctx context.Context, l *domain.WorkoutLog) error {
	return mapError(r.db.WithContext(ctx).Save(l).Error)
}

func (r *gormWorkoutLogRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.WorkoutLog{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gormWorkoutLogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.WorkoutLog{}).Count(&n).Error
	return n, err
}
