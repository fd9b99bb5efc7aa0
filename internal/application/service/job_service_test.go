package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/domain/entity"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"github.com/sandzahub/sebenza-api/internal/domain/pricing"
	"github.com/sandzahub/sebenza-api/internal/domain/repository"
	"github.com/sandzahub/sebenza-api/pkg/apperror"
	"github.com/sandzahub/sebenza-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeJobRepository is an in-memory JobRepository for service tests
type fakeJobRepository struct {
	jobs map[uuid.UUID]*entity.Job
}

func newFakeJobRepository() *fakeJobRepository {
	return &fakeJobRepository{jobs: make(map[uuid.UUID]*entity.Job)}
}

func (r *fakeJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (r *fakeJobRepository) GetByReference(ctx context.Context, reference string) (*entity.Job, error) {
	for _, job := range r.jobs {
		if job.Reference == reference {
			cp := *job
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeJobRepository) Update(ctx context.Context, job *entity.Job) error {
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepository) List(ctx context.Context, params *repository.JobFilterParams) ([]entity.Job, int64, error) {
	var out []entity.Job
	for _, job := range r.jobs {
		if params.CustomerID != nil && job.CustomerID != *params.CustomerID {
			continue
		}
		if params.ProviderID != nil && (job.ProviderID == nil || *job.ProviderID != *params.ProviderID) {
			continue
		}
		if params.Status != nil && job.Status != *params.Status {
			continue
		}
		if params.ServiceType != "" && job.ServiceType != params.ServiceType {
			continue
		}
		out = append(out, *job)
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.JobStatus) error {
	if job, ok := r.jobs[id]; ok {
		job.Status = status
	}
	return nil
}

func (r *fakeJobRepository) AssignProvider(ctx context.Context, id uuid.UUID, providerID uuid.UUID) error {
	if job, ok := r.jobs[id]; ok {
		job.ProviderID = &providerID
	}
	return nil
}

func (r *fakeJobRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	return len(r.jobs) + 1, nil
}

// fakeUserRepository is an in-memory UserRepository for service tests
type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepository) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepository) AssignRole(ctx context.Context, userID uuid.UUID, roleID uint) error {
	return nil
}

func (r *fakeUserRepository) RemoveRole(ctx context.Context, userID uuid.UUID, roleID uint) error {
	return nil
}

func newTestJobService() (*JobService, *fakeJobRepository, *fakeUserRepository) {
	jobRepo := newFakeJobRepository()
	userRepo := newFakeUserRepository()
	svc := NewJobService(jobRepo, userRepo, NewQuoteService(nil))
	return svc, jobRepo, userRepo
}

func addProvider(userRepo *fakeUserRepository) uuid.UUID {
	id := uuid.New()
	userRepo.users[id] = &entity.User{
		ID:    id,
		Email: "provider@example.com",
		Roles: []entity.Role{{ID: 2, Name: "provider"}},
	}
	return id
}

func TestCreateJobPersistsQuotedBreakdown(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	customerID := uuid.New()

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID: customerID,
		Quote: QuoteInput{
			ServiceType: pricing.ServiceGrassCutting,
			Area:        100,
		},
		ScheduledFor: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Address:      "Plot 12, Ezulwini",
	})

	require.NoError(t, err)
	assert.Equal(t, "JOB-000001", job.Reference)
	assert.Equal(t, enum.JobStatusPending, job.Status)
	assert.InDelta(t, 100.0, job.BasePrice, 1e-9)
	assert.InDelta(t, 115.0, job.Subtotal, 1e-9)
	assert.InDelta(t, 134.55, job.TotalAmount, 1e-9)

	stored, err := jobRepo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.InDelta(t, job.TotalAmount, stored.TotalAmount, 1e-9)

	// The flat columns round-trip to the same breakdown
	b := stored.Breakdown()
	assert.InDelta(t, stored.Subtotal+stored.MobileMoneyFee+stored.VAT, b.TotalAmount, 1e-9)
}

func TestCreateJobValidation(t *testing.T) {
	svc, _, _ := newTestJobService()

	_, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID: uuid.New(),
		Quote:      QuoteInput{},
	})
	require.Error(t, err)

	_, err = svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID: uuid.New(),
		Quote:      QuoteInput{ServiceType: pricing.ServiceGrassCutting},
	})
	require.Error(t, err, "area-based service without area")

	_, err = svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID: uuid.New(),
		Quote:      QuoteInput{ServiceType: pricing.ServiceTreeFelling},
	})
	require.Error(t, err, "tree felling without tree size")
}

func TestJobReferencesIncrement(t *testing.T) {
	svc, _, _ := newTestJobService()
	customerID := uuid.New()

	for i, want := range []string{"JOB-000001", "JOB-000002", "JOB-000003"} {
		job, err := svc.CreateJob(context.Background(), &CreateJobInput{
			CustomerID: customerID,
			Quote: QuoteInput{
				ServiceType: pricing.ServiceCleaning,
			},
			ScheduledFor: time.Now().AddDate(0, 0, i+1),
			Address:      "Mbabane",
		})
		require.NoError(t, err)
		assert.Equal(t, want, job.Reference)
	}
}

func TestAcceptJob(t *testing.T) {
	svc, jobRepo, userRepo := newTestJobService()
	providerID := addProvider(userRepo)

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:   uuid.New(),
		Quote:        QuoteInput{ServiceType: pricing.ServicePlumbing},
		ScheduledFor: time.Now().AddDate(0, 0, 2),
		Address:      "Manzini",
	})
	require.NoError(t, err)

	accepted, err := svc.AcceptJob(context.Background(), providerID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.JobStatusAccepted, accepted.Status)
	require.NotNil(t, accepted.ProviderID)
	assert.Equal(t, providerID, *accepted.ProviderID)

	// Accepting twice conflicts
	_, err = svc.AcceptJob(context.Background(), providerID, job.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	stored, _ := jobRepo.GetByID(context.Background(), job.ID)
	assert.Equal(t, enum.JobStatusAccepted, stored.Status)
}

func TestAcceptJobRequiresProviderRole(t *testing.T) {
	svc, _, userRepo := newTestJobService()

	customerID := uuid.New()
	userRepo.users[customerID] = &entity.User{
		ID:    customerID,
		Roles: []entity.Role{{ID: 3, Name: "customer"}},
	}

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:   customerID,
		Quote:        QuoteInput{ServiceType: pricing.ServiceErrands},
		ScheduledFor: time.Now().AddDate(0, 0, 1),
		Address:      "Siteki",
	})
	require.NoError(t, err)

	_, err = svc.AcceptJob(context.Background(), customerID, job.ID)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestUpdateJobStatusTransitions(t *testing.T) {
	svc, _, userRepo := newTestJobService()
	providerID := addProvider(userRepo)
	customerID := uuid.New()

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:   customerID,
		Quote:        QuoteInput{ServiceType: pricing.ServiceCleaning},
		ScheduledFor: time.Now().AddDate(0, 0, 3),
		Address:      "Nhlangano",
	})
	require.NoError(t, err)

	// Pending cannot jump straight to completed
	_, err = svc.UpdateJobStatus(context.Background(), customerID, job.ID, enum.JobStatusCompleted, false)
	require.Error(t, err)

	_, err = svc.AcceptJob(context.Background(), providerID, job.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateJobStatus(context.Background(), providerID, job.ID, enum.JobStatusInProgress, false)
	require.NoError(t, err)
	assert.Equal(t, enum.JobStatusInProgress, updated.Status)

	updated, err = svc.UpdateJobStatus(context.Background(), providerID, job.ID, enum.JobStatusCompleted, false)
	require.NoError(t, err)
	assert.Equal(t, enum.JobStatusCompleted, updated.Status)

	// Completed jobs never change again
	_, err = svc.UpdateJobStatus(context.Background(), providerID, job.ID, enum.JobStatusCancelled, false)
	require.Error(t, err)
}

func TestUpdateJobStatusForbiddenForStrangers(t *testing.T) {
	svc, _, _ := newTestJobService()

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:   uuid.New(),
		Quote:        QuoteInput{ServiceType: pricing.ServiceCleaning},
		ScheduledFor: time.Now().AddDate(0, 0, 1),
		Address:      "Big Bend",
	})
	require.NoError(t, err)

	_, err = svc.UpdateJobStatus(context.Background(), uuid.New(), job.ID, enum.JobStatusCancelled, false)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	// Admin override works
	updated, err := svc.UpdateJobStatus(context.Background(), uuid.New(), job.ID, enum.JobStatusCancelled, true)
	require.NoError(t, err)
	assert.Equal(t, enum.JobStatusCancelled, updated.Status)
}

func TestListJobsScoping(t *testing.T) {
	svc, _, userRepo := newTestJobService()
	providerID := addProvider(userRepo)
	customerA := uuid.New()
	customerB := uuid.New()

	for _, cid := range []uuid.UUID{customerA, customerA, customerB} {
		_, err := svc.CreateJob(context.Background(), &CreateJobInput{
			CustomerID:   cid,
			Quote:        QuoteInput{ServiceType: pricing.ServiceMaintenance},
			ScheduledFor: time.Now().AddDate(0, 0, 1),
			Address:      "Lobamba",
		})
		require.NoError(t, err)
	}

	params := &pagination.PaginationParams{Page: 1, PerPage: 15}

	result, err := svc.ListJobs(context.Background(), &ListJobsInput{
		UserID:     customerA,
		Pagination: params,
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)

	// Admin sees everything
	result, err = svc.ListJobs(context.Background(), &ListJobsInput{
		UserID:     customerA,
		IsAdmin:    true,
		Pagination: params,
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 3)

	// Provider view is empty until jobs are assigned
	result, err = svc.ListJobs(context.Background(), &ListJobsInput{
		UserID:     providerID,
		AsProvider: true,
		Pagination: params,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestGetJobVisibility(t *testing.T) {
	svc, _, userRepo := newTestJobService()
	providerID := addProvider(userRepo)
	customerID := uuid.New()

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:   customerID,
		Quote:        QuoteInput{ServiceType: pricing.ServiceCleaning},
		ScheduledFor: time.Now().AddDate(0, 0, 1),
		Address:      "Piggs Peak",
	})
	require.NoError(t, err)

	_, err = svc.GetJob(context.Background(), customerID, job.ID, false)
	require.NoError(t, err)

	_, err = svc.GetJob(context.Background(), uuid.New(), job.ID, false)
	require.Error(t, err)

	_, err = svc.AcceptJob(context.Background(), providerID, job.ID)
	require.NoError(t, err)

	_, err = svc.GetJob(context.Background(), providerID, job.ID, false)
	require.NoError(t, err)
}
