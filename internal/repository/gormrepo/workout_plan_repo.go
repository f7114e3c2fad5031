package gormrepo

import (
	"context"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"gorm.io/gorm"
)

type gormWorkoutPlanRepository struct {
	db *gorm.DB
}

// NewWorkoutPlanRepository creates a new workout plan repository backed by gorm.
func NewWorkoutPlanRepository(db *gorm.DB) repository.WorkoutPlanRepository {
	return &gormWorkoutPlanRepository{db: db}
}

func (r *gormWorkoutPlanRepository) Create(ctx context.Context, p *domain.WorkoutPlan) error {
	return mapError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *gormWorkoutPlanRepository) GetByID(ctx context.Context, id uint) (*domain.WorkoutPlan, error) {
	var p domain.WorkoutPlan
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *gormWorkoutPlanRepository) List(ctx context.Context) ([]domain.WorkoutPlan, error) {
	var ps []domain.WorkoutPlan
	if err := r.db.WithContext(ctx).Order("id").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *gormWorkoutPlanRepository) ListByTrainer(ctx context.Context, trainerID uint) ([]domain.WorkoutPlan, error) {
	var ps []domain.WorkoutPlan
	err := r.db.WithContext(ctx).Where("trainer_id = ?", trainerID).Order("id").Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *gormWorkoutPlanRepository) ListByMember(ctx context.Context, memberID uint) ([]domain.WorkoutPlan, error) {
	var ps []domain.WorkoutPlan
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Order("id").Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *gormWorkoutPlanRepository) Update(ctx context.Context, p *domain.WorkoutPlan) error {
	return mapError(r.db.WithContext(ctx).Save(p).Error)
}

func (r *gormWorkoutPlanRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.WorkoutPlan{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
