package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initApplicationsRoutes(api *gin.RouterGroup) {
	applications := api.Group("/applications", h.userIdentity)

	applications.POST("", h.applyForJob)
	applications.GET("/me", h.getMyApplications)
}

type applyInput struct {
	JobID int64 `json:"job_id" binding:"required"`
}

// @Summary Apply for a job
// @Tags Applications
// @Description Employee only; one application per job
// @Accept json
// @Produce json
// @Param input body applyInput true "target job"
// @Success 201 {object} applicationResponse
// @Failure 400 {object} messageResponse
// @Failure 403 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Security UserAuth
// @Router /applications [post]
func (h *Handler) applyForJob(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input applyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	application, err := h.services.Applications.Apply(c.Request.Context(), userID, input.JobID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newApplicationResponse(application))
}

// @Summary My applications
// @Tags Applications
// @Produce json
// @Success 200 {array} applicationResponse
// @Failure 401 {object} messageResponse
// @Security UserAuth
// @Router /applications/me [get]
func (h *Handler) getMyApplications(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	applications, err := h.services.Applications.GetMine(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newApplicationListResponse(applications))
}
