package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/job-finder/backend/internal/domain"
)

func (h *Handler) initEmployerRoutes(api *gin.RouterGroup) {
	employer := api.Group("/employer", h.userIdentity)

	employer.GET("/jobs", h.getEmployerJobs)
	employer.GET("/applications/:jobId", h.getJobApplications)
	employer.PUT("/applications/:id", h.updateApplicationStatus)
}

// @Summary Employer's own postings
// @Tags Employer
// @Produce json
// @Success 200 {array} jobResponse
// @Failure 403 {object} messageResponse
// @Security UserAuth
// @Router /employer/jobs [get]
func (h *Handler) getEmployerJobs(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	jobs, err := h.services.Jobs.GetByEmployer(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobListResponse(jobs))
}

// @Summary Applications on a posting
// @Tags Employer
// @Description Only for jobs owned by the calling employer
// @Produce json
// @Param jobId path int true "job id"
// @Success 200 {array} applicationResponse
// @Failure 403 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Security UserAuth
// @Router /employer/applications/{jobId} [get]
func (h *Handler) getJobApplications(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: "invalid job id"})
		return
	}

	applications, err := h.services.Applications.GetForJob(c.Request.Context(), userID, jobID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newApplicationListResponse(applications))
}

// @Summary Update application status
// @Tags Employer
// @Description Sets pending/accepted/rejected/interviewing on an application to the employer's own posting
// @Produce json
// @Param id path int true "application id"
// @Param status query string true "new status"
// @Success 200 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 403 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Security UserAuth
// @Router /employer/applications/{id} [put]
func (h *Handler) updateApplicationStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: "invalid application id"})
		return
	}

	status := domain.ApplicationStatus(c.Query("status"))

	if err := h.services.Applications.UpdateStatus(c.Request.Context(), userID, applicationID, status); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Application status updated successfully"})
}
