package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sandzahub/sebenza-api/internal/application/service"
	"github.com/sandzahub/sebenza-api/internal/domain/enum"
	"github.com/sandzahub/sebenza-api/internal/presentation/http/dto/response"
	"github.com/sandzahub/sebenza-api/pkg/pagination"
)

// JobHandler handles job booking HTTP requests
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest represents the create job request body
type CreateJobRequest struct {
	QuoteRequest
	ScheduledFor string  `json:"scheduled_for" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	Notes        *string `json:"notes"`
}

// UpdateJobStatusRequest represents the status change request body
type UpdateJobStatusRequest struct {
	Status int `json:"status" binding:"min=0"`
}

// List handles listing jobs
// @Summary List Jobs
// @Description Get jobs with pagination and filtering
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query int false "Status filter"
// @Param service_type query string false "Service type filter"
// @Param as_provider query bool false "List jobs assigned to me"
// @Success 200 {object} response.APIResponse
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page := 1
	perPage := 15
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := parsePositiveInt(pp); err == nil {
			perPage = parsed
		}
	}

	var status *enum.JobStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.JobStatus(parsed)
			status = &st
		}
	}

	result, err := h.jobService.ListJobs(c.Request.Context(), &service.ListJobsInput{
		UserID:     *userID,
		IsAdmin:    IsAdmin(c),
		AsProvider: c.Query("as_provider") == "true",
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:      c.Query("search"),
		Status:      status,
		ServiceType: c.Query("service_type"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Jobs retrieved successfully", result)
}

// Get handles getting a single job
// @Summary Get Job
// @Description Get a job by ID
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), *userID, id, IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job retrieved successfully", job)
}

// Create handles booking a job
// @Summary Book a Job
// @Description Book a new job; the price is computed and locked in at booking time
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateJobRequest true "Job data"
// @Success 201 {object} response.APIResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	// Parse date
	scheduledFor, err := time.Parse("2006-01-02", req.ScheduledFor)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), &service.CreateJobInput{
		CustomerID:   *userID,
		Quote:        *req.QuoteRequest.ToInput(),
		ScheduledFor: scheduledFor,
		Address:      req.Address,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Job booked successfully", job)
}

// UpdateStatus handles moving a job through its lifecycle
// @Summary Update Job Status
// @Description Change the status of a job
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body UpdateJobStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	job, err := h.jobService.UpdateJobStatus(c.Request.Context(), *userID, id,
		enum.JobStatus(req.Status), IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job status updated successfully", job)
}

// Accept handles a provider accepting a pending job
// @Summary Accept Job
// @Description Assign the authenticated provider to a pending job
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id}/accept [post]
func (h *JobHandler) Accept(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobService.AcceptJob(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job accepted successfully", job)
}

// Cancel handles cancelling a job
// @Summary Cancel Job
// @Description Cancel a job that has not been completed
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id}/cancel [post]
func (h *JobHandler) Cancel(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobService.CancelJob(c.Request.Context(), *userID, id, IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job cancelled successfully", job)
}
