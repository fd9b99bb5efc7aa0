package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/entity"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"github.com/sandzahub/sebenza-api/internal/domain/pricing"
	"github.com/sandzahub/sebenza-api/internal/domain/repository"
	"github.com/sandzahub/sebenza-api/pkg/apperror"
	"github.com/sandzahub/sebenza-api/pkg/pagination"
)

// JobService handles service job booking and lifecycle operations
type JobService struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	quotes   *QuoteService
}

// NewJobService creates a new job service
func NewJobService(
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	quotes *QuoteService,
) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		quotes:   quotes,
	}
}

// CreateJobInput represents the input for booking a job
type CreateJobInput struct {
	CustomerID   uuid.UUID
	Quote        QuoteInput
	ScheduledFor time.Time
	Address      string
	Notes        *string
}

// CreateJob books a new job. The price is computed at booking time and
// persisted on the job record so later rate card changes never affect
// an accepted booking.
func (s *JobService) CreateJob(ctx context.Context, input *CreateJobInput) (*entity.Job, error) {
	if input.Quote.ServiceType == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "service_type", Message: "Service type is required"},
		})
	}

	switch input.Quote.ServiceType {
	case pricing.ServiceGrassCutting, pricing.ServiceYardClearing, pricing.ServiceGardening:
		if input.Quote.Area <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "area", Message: "Area is required for area-based services"},
			})
		}
	case pricing.ServiceTreeFelling:
		if input.Quote.TreeSize == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "tree_size", Message: "Tree size is required for tree felling"},
			})
		}
	}

	// Generate reference number
	nextNum, err := s.jobRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := fmt.Sprintf("JOB-%06d", nextNum)

	quote := s.quotes.BuildQuote(&input.Quote)

	job := &entity.Job{
		CustomerID:        input.CustomerID,
		Reference:         reference,
		Status:            enum.JobStatusPending,
		ServiceType:       input.Quote.ServiceType,
		ServiceVariant:    input.Quote.ServiceVariant,
		AreaSqm:           input.Quote.Area,
		VegetationType:    input.Quote.VegetationType,
		GrowthStage:       input.Quote.GrowthStage,
		TerrainType:       input.Quote.TerrainType,
		TreeSize:          input.Quote.TreeSize,
		TreeHeightM:       input.Quote.TreeHeightM,
		LocationRisk:      input.Quote.LocationComplexity,
		NeedsDisposal:     input.Quote.NeedsDisposal,
		NeedsStumpRemoval: input.Quote.NeedsStumpRemoval,
		IsUrgent:          input.Quote.IsUrgent,
		IsRecurring:       input.Quote.IsRecurring,
		TravelDistanceKm:  input.Quote.TravelDistanceKm,
		Address:           input.Address,
		Notes:             input.Notes,
		ScheduledFor:      input.ScheduledFor,
	}
	job.ApplyBreakdown(quote.Breakdown)

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// GetJob retrieves a job by ID. Customers see only their own jobs;
// providers see jobs assigned to them.
func (s *JobService) GetJob(ctx context.Context, userID, id uuid.UUID, isAdmin bool) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}

	if !isAdmin && job.CustomerID != userID &&
		(job.ProviderID == nil || *job.ProviderID != userID) {
		return nil, apperror.ErrForbidden
	}

	return job, nil
}

// ListJobsInput represents the input for listing jobs
type ListJobsInput struct {
	UserID      uuid.UUID
	IsAdmin     bool
	AsProvider  bool
	Pagination  *pagination.PaginationParams
	Search      string
	Status      *enum.JobStatus
	ServiceType string
}

// ListJobs lists jobs with filtering. Non-admin users are scoped to
// jobs they booked, or to jobs assigned to them when AsProvider is set.
func (s *JobService) ListJobs(ctx context.Context, input *ListJobsInput) (*pagination.PaginatedResult[entity.Job], error) {
	params := &repository.JobFilterParams{
		Pagination:  input.Pagination,
		Search:      input.Search,
		Status:      input.Status,
		ServiceType: input.ServiceType,
	}

	if !input.IsAdmin {
		if input.AsProvider {
			params.ProviderID = &input.UserID
		} else {
			params.CustomerID = &input.UserID
		}
	}

	jobs, total, err := s.jobRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(jobs, pag), nil
}

// UpdateJobStatus moves a job through its lifecycle. Illegal
// transitions are rejected; a completed or cancelled job never changes
// again.
func (s *JobService) UpdateJobStatus(ctx context.Context, userID, id uuid.UUID, status enum.JobStatus, isAdmin bool) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}

	if !isAdmin && job.CustomerID != userID &&
		(job.ProviderID == nil || *job.ProviderID != userID) {
		return nil, apperror.ErrForbidden
	}

	if !job.Status.CanTransitionTo(status) {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Cannot change job status from %s to %s", job.Status, status))
	}

	if err := s.jobRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	job.Status = status
	return job, nil
}

// AcceptJob assigns a provider to a pending job and moves it to
// accepted in one step.
func (s *JobService) AcceptJob(ctx context.Context, providerID, id uuid.UUID) (*entity.Job, error) {
	provider, err := s.userRepo.GetWithRoles(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperror.NewNotFoundError("Provider")
	}
	if !provider.HasRole("provider") && !provider.HasRole("admin") {
		return nil, apperror.ErrForbidden
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}
	if job.Status != enum.JobStatusPending {
		return nil, apperror.NewConflictError("Job has already been accepted")
	}

	if err := s.jobRepo.AssignProvider(ctx, id, providerID); err != nil {
		return nil, err
	}
	if err := s.jobRepo.UpdateStatus(ctx, id, enum.JobStatusAccepted); err != nil {
		return nil, err
	}

	job.ProviderID = &providerID
	job.Status = enum.JobStatusAccepted
	return job, nil
}

// CancelJob cancels a job on behalf of the customer
func (s *JobService) CancelJob(ctx context.Context, userID, id uuid.UUID, isAdmin bool) (*entity.Job, error) {
	return s.UpdateJobStatus(ctx, userID, id, enum.JobStatusCancelled, isAdmin)
}
