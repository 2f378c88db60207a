package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resume-screener/domain"
)

// SortByMatch orders result pages by match percentage instead of recency.
const SortByMatch = "match"

// ResumeRepository is the CRUD gateway for screening results, scoped by job.
type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

// Create inserts one screening result. A unique-index violation on
// (job_id, file_name) or (job_id, name_key) is reported as domain.ErrDuplicate.
func (r *ResumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	err := r.db.WithContext(ctx).Create(resume).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *ResumeRepository) ByID(ctx context.Context, id uint) (domain.Resume, error) {
	var resume domain.Resume
	err := r.db.WithContext(ctx).First(&resume, id).Error
	return resume, err
}

// HasDuplicate reports whether the job already holds a resume with the same
// file name or the same case-insensitive candidate name.
func (r *ResumeRepository) HasDuplicate(ctx context.Context, jobID uint, fileName, nameKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Resume{}).
		Where("job_id = ? AND (file_name = ? OR name_key = ?)", jobID, fileName, nameKey).
		Count(&count).Error
	return count > 0, err
}

// Page returns one page of the job's resumes. sortBy "match" orders by match
// percentage descending; anything else orders by creation time descending.
func (r *ResumeRepository) Page(ctx context.Context, jobID uint, page, size int, sortBy string) ([]domain.Resume, error) {
	order := "created_at DESC"
	if sortBy == SortByMatch {
		order = "match_percentage DESC"
	}

	var resumes []domain.Resume
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order(order).
		Offset((page - 1) * size).
		Limit(size).
		Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepository) Count(ctx context.Context, jobID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Resume{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}

func (r *ResumeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Resume{}, id).Error
}

func (r *ResumeRepository) DeleteMany(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&domain.Resume{}, ids).Error
}
