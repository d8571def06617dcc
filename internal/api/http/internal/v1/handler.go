package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/job-finder/backend/internal/config"
	"github.com/job-finder/backend/internal/service"
	"github.com/job-finder/backend/pkg/auth"
)

// @title Job Finder API
// @version 1.0
// @description Job board backend: registration with code verification, job listings and application workflow.

// @BasePath /api

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initAuthRoutes(api)
	h.initUsersRoutes(api)
	h.initJobsRoutes(api)
	h.initApplicationsRoutes(api)
	h.initEmployerRoutes(api)
}
