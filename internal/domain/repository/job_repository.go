package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/entity"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"github.com/sandzahub/sebenza-api/pkg/pagination"
)

// JobRepository defines the interface for job data operations
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	GetByReference(ctx context.Context, reference string) (*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *JobFilterParams) ([]entity.Job, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.JobStatus) error
	AssignProvider(ctx context.Context, id uuid.UUID, providerID uuid.UUID) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// JobFilterParams contains filtering parameters for job queries
type JobFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	Status      *enum.JobStatus
	ServiceType string
	CustomerID  *uuid.UUID
	ProviderID  *uuid.UUID
	SortBy      string
	SortOrder   string
}
