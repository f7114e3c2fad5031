package gormrepo

import (
	"context"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"gorm.io/gorm"
)

type gormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository backed by gorm.
func NewAttendanceRepository(db *gorm.DB) repository.AttendanceRepository {
	return &gormAttendanceRepository{db: db}
}

func (r *gormAttendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	// A duplicate same-day check-in hits the (member_id, check_in_day)
	// unique index and comes back as ErrConflict.
	return mapError(r.db.WithContext(ctx).Create(a).Error)
}

func (r *gormAttendanceRepository) GetByID(ctx context.Context, id uint) (*domain.Attendance, error) {
	var a domain.Attendance
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *gormAttendanceRepository) List(ctx context.Context) ([]domain.Attendance, error) {
	var as []domain.Attendance
	if err := r.db.WithContext(ctx).Order("check_in DESC").Find(&as).Error; err != nil {
		return nil, err
	}
	return as, nil
}

func (r *gormAttendanceRepository) ListByMember(ctx context.Context, memberID uint) ([]domain.Attendance, error) {
	var as []domain.Attendance
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Order("check_in DESC").Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *gormAttendanceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Attendance{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gormAttendanceRepository) ExistsForDay(ctx context.Context, memberID uint, day time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Attendance{}).
		Where("member_id = ? AND check_in_day = ?", memberID, domain.DateOf(day)).
		Count(&n).Error
	return n > 0, err
}

func (r *gormAttendanceRepository) CountForDay(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Attendance{}).
		Where("check_in_day = ?", domain.DateOf(day)).
		Count(&n).Error
	return n, err
}
