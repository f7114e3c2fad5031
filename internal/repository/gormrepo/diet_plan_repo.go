package gormrepo

import (
	"context"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"gorm.io/gorm"
)

type gormDietPlanRepository struct {
	db *gorm.DB
}

// NewDietPlanRepository creates a new diet plan repository backed by gorm.
func NewDietPlanRepository(db *gorm.DB) repository.DietPlanRepository {
	return &gormDietPlanRepository{db: db}
}

func (r *gormDietPlanRepository) Create(ctx context.Context, p *domain.DietPlan) error {
	return mapError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *gormDietPlanRepository) GetByID(ctx context.Context, id uint) (*domain.DietPlan, error) {
	var p domain.DietPlan
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *gormDietPlanRepository) List(ctx context.Context) ([]domain.DietPlan, error) {
	var ps []domain.DietPlan
	if err := r.db.WithContext(ctx).Order("id").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *gormDietPlanRepository) ListByTrainer(ctx context.Context, trainerID uint) ([]domain.DietPlan, error) {
	var ps []domain.DietPlan
	err := r.db.WithContext(ctx).Where("trainer_id = ?", trainerID).Order("id").Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *gormDietPlanRepository) ListByMember(ctx context.Context, memberID uint) ([]domain.DietPlan, error) {
	var ps []domain.DietPlan
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Order("id").Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *gormDietPlanRepository) Update(ctx context.Context, p *domain.DietPlan) error {
	return mapError(r.db.WithContext(ctx).Save(p).Error)
}

func (r *gormDietPlanRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.DietPlan{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
