package gormrepo

import (
	"context"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"gorm.io/gorm"
)

type gormMembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository backed by gorm.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &gormMembershipRepository{db: db}
}

func (r *gormMembershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	return mapError(r.db.WithContext(ctx).Create(m).Error)
}

func (r *gormMembershipRepository) GetByID(ctx context.Context, id uint) (*domain.Membership, error) {
	var m domain.Membership
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

func (r *gormMembershipRepository) List(ctx context.Context) ([]domain.Membership, error) {
	var ms []domain.Membership
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *gormMembershipRepository) ListByMember(ctx context.Context, memberID uint) ([]domain.Membership, error) {
	var ms []domain.Membership
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Order("id").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *gormMembershipRepository) Update(ctx context.Context, m *domain.Membership) error {
	return mapError(r.db.WithContext(ctx).Save(m).Error)
}

func (r *gormMembershipRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Membership{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gormMembershipRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Membership{}).Where("active = ?", true).Count(&n).Error
	return n, err
}
