package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/job-finder/backend/internal/service"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users", h.userIdentity)

	users.GET("/me", h.getMe)
	users.PUT("/me", h.updateMe)
}

// @Summary Current profile
// @Tags Users
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} messageResponse
// @Security UserAuth
// @Router /users/me [get]
func (h *Handler) getMe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

type updateProfileInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Dob       string `json:"dob"`
}

// @Summary Update profile
// @Tags Users
// @Accept json
// @Produce json
// @Param input body updateProfileInput true "profile data"
// @Success 200 {object} userResponse
// @Failure 400 {object} messageResponse
// @Security UserAuth
// @Router /users/me [put]
func (h *Handler) updateMe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	user, err := h.services.Users.UpdateProfile(c.Request.Context(), userID, service.UpdateProfileInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Dob:       input.Dob,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
