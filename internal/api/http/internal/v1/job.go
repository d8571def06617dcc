package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/job-finder/backend/internal/domain"
	"github.com/job-finder/backend/internal/repository"
	"github.com/job-finder/backend/internal/service"
)

func (h *Handler) initJobsRoutes(api *gin.RouterGroup) {
	jobs := api.Group("/jobs")

	jobs.GET("", h.listJobs)
	jobs.GET("/:id", h.getJob)
	jobs.POST("", h.userIdentity, h.createJob)

	api.GET("/job-categories", h.jobCategories)
	api.GET("/job-types", h.jobTypes)
}

type listJobsQuery struct {
	Skip      int    `form:"skip" binding:"omitempty,min=0"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=0"`
	Category  string `form:"category"`
	JobType   string `form:"job_type"`
	Search    string `form:"search"`
	Location  string `form:"location"`
	MinSalary int64  `form:"min_salary" binding:"omitempty,min=0"`
	MaxSalary int64  `form:"max_salary" binding:"omitempty,min=0"`
}

// @Summary List jobs
// @Tags Jobs
// @Description Active postings, newest first, conjunctive filters
// @Produce json
// @Param skip query int false "offset"
// @Param limit query int false "page size"
// @Param category query string false "category exact match"
// @Param job_type query string false "job type exact match"
// @Param search query string false "substring over position/company/description"
// @Param min_salary query int false "job's salary_max must be at least this"
// @Param max_salary query int false "job's salary_min must be at most this"
// @Param location query string false "location substring"
// @Success 200 {array} jobResponse
// @Router /jobs [get]
func (h *Handler) listJobs(c *gin.Context) {
	var query listJobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindingError(c, err)
		return
	}

	filters := &repository.JobFilters{}
	if query.Category != "" {
		filters.Category = &query.Category
	}
	if query.JobType != "" {
		filters.JobType = &query.JobType
	}
	if query.Search != "" {
		filters.Search = &query.Search
	}
	if query.Location != "" {
		filters.Location = &query.Location
	}
	// A zero salary bound means no bound.
	if query.MinSalary != 0 {
		filters.MinSalary = &query.MinSalary
	}
	if query.MaxSalary != 0 {
		filters.MaxSalary = &query.MaxSalary
	}

	jobs, err := h.services.Jobs.GetAll(c.Request.Context(), query.Skip, query.Limit, filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobListResponse(jobs))
}

// @Summary Job detail
// @Tags Jobs
// @Produce json
// @Param id path int true "job id"
// @Success 200 {object} jobResponse
// @Failure 404 {object} messageResponse
// @Router /jobs/{id} [get]
func (h *Handler) getJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: "invalid job id"})
		return
	}

	job, err := h.services.Jobs.GetOneByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobResponse(job))
}

type createJobInput struct {
	CompanyName  string  `json:"company_name"`
	Position     string  `json:"position" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	SalaryMin    *int64  `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax    *int64  `json:"salary_max" binding:"omitempty,min=0"`
	JobType      *string `json:"job_type"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
}

// @Summary Create job
// @Tags Jobs
// @Description Employer only; company name falls back to the employer profile
// @Accept json
// @Produce json
// @Param input body createJobInput true "job data"
// @Success 201 {object} jobResponse
// @Failure 400 {object} messageResponse
// @Failure 403 {object} messageResponse
// @Security UserAuth
// @Router /jobs [post]
func (h *Handler) createJob(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input createJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	job, err := h.services.Jobs.Create(c.Request.Context(), userID, service.CreateJobInput{
		CompanyName:  input.CompanyName,
		Position:     input.Position,
		Location:     input.Location,
		SalaryMin:    input.SalaryMin,
		SalaryMax:    input.SalaryMax,
		JobType:      input.JobType,
		Category:     input.Category,
		Description:  input.Description,
		Requirements: input.Requirements,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newJobResponse(job))
}

// @Summary Job categories
// @Tags Jobs
// @Produce json
// @Success 200 {array} string
// @Router /job-categories [get]
func (h *Handler) jobCategories(c *gin.Context) {
	c.JSON(http.StatusOK, domain.JobCategories())
}

// @Summary Job types
// @Tags Jobs
// @Produce json
// @Success 200 {array} string
// @Router /job-types [get]
func (h *Handler) jobTypes(c *gin.Context) {
	c.JSON(http.StatusOK, domain.JobTypes())
}
