package repository

import (
	"context"

	"gorm.io/gorm"

	"resume-screener/domain"
)

// JobRepository is the CRUD gateway for jobs, scoped by owner.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) ByID(ctx context.Context, id uint) (domain.Job, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	return job, err
}

// ByUser lists the owner's jobs, newest first.
func (r *JobRepository) ByUser(ctx context.Context, userID string) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Update(ctx context.Context, id uint, title, description string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Job{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
		}).Error
}

// Delete removes the job only. Resumes are deliberately not cascaded.
func (r *JobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Job{}, id).Error
}
