package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/entity"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	domainRepo "github.com/sandzahub/sebenza-api/internal/domain/repository"
	"gorm.io/gorm"
)

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) domainRepo.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).
		Preload("Provider").
		First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) GetByReference(ctx context.Context, reference string) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).First(&job, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Job{}, "id = ?", id).Error
}

func (r *jobRepository) List(ctx context.Context, params *domainRepo.JobFilterParams) ([]entity.Job, int64, error) {
	var jobs []entity.Job
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Job{})

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.ProviderID != nil {
		query = query.Where("provider_id = ?", *params.ProviderID)
	}

	if params.Search != "" {
		query = query.Where("reference ILIKE ? OR address ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.ServiceType != "" {
		query = query.Where("service_type = ?", params.ServiceType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Provider").
		Order(sortBy + " " + sortOrder).
		Find(&jobs).Error

	return jobs, total, err
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.JobStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Job{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *jobRepository) AssignProvider(ctx context.Context, id uuid.UUID, providerID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Job{}).
		Where("id = ?", id).
		Update("provider_id", providerID).Error
}

func (r *jobRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Job{}).Count(&count).Error
	return int(count) + 1, err
}
