package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/job-finder/backend/internal/domain"
	"github.com/job-finder/backend/internal/service"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.POST("/verify", h.verify)
	api.POST("/resend-code", h.resendCode)
}

type registerInput struct {
	FirstName          string `json:"first_name" binding:"required"`
	LastName           string `json:"last_name" binding:"required"`
	Email              string `json:"email" binding:"omitempty,email"`
	Phone              string `json:"phone" binding:"omitempty,phonenumber"`
	Dob                string `json:"dob"`
	Password           string `json:"password" binding:"required,min=6"`
	UserType           string `json:"user_type" binding:"omitempty,oneof=employer employee"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
}

type registerResponse struct {
	Message          string `json:"message"`
	UserID           int64  `json:"user_id"`
	VerificationCode string `json:"verification_code,omitempty"`
} // @name RegisterResponse

// @Summary Register
// @Tags Auth
// @Description Creates an account and issues a verification code
// @Accept json
// @Produce json
// @Param input body registerInput true "account data"
// @Success 201 {object} registerResponse
// @Failure 400 {object} messageResponse
// @Router /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	result, err := h.services.Users.Register(c.Request.Context(), service.RegisterInput{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              input.Email,
		Phone:              input.Phone,
		Dob:                input.Dob,
		Password:           input.Password,
		UserType:           domain.UserType(input.UserType),
		CompanyName:        input.CompanyName,
		CompanyDescription: input.CompanyDescription,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := registerResponse{
		Message: "User registered successfully",
		UserID:  result.UserID,
	}
	if h.config.Auth.ExposeVerificationCode {
		resp.VerificationCode = result.VerificationCode
	}

	c.JSON(http.StatusCreated, resp)
}

type loginInput struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,phonenumber"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
} // @name TokenResponse

type notVerifiedResponse struct {
	Message          string `json:"message"`
	UserID           int64  `json:"user_id"`
	VerificationCode string `json:"verification_code,omitempty"`
} // @name NotVerifiedResponse

// @Summary Login
// @Tags Auth
// @Description Issues a bearer token; an unverified account gets 403 with a fresh code issued
// @Accept json
// @Produce json
// @Param input body loginInput true "credentials"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} messageResponse
// @Failure 403 {object} notVerifiedResponse
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	result, err := h.services.Users.Login(c.Request.Context(), service.LoginInput{
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
	})
	if err != nil {
		var notVerified *service.NotVerifiedError
		if errors.As(err, &notVerified) {
			resp := notVerifiedResponse{
				Message: "User not verified",
				UserID:  notVerified.UserID,
			}
			if h.config.Auth.ExposeVerificationCode {
				resp.VerificationCode = notVerified.Code
			}
			c.AbortWithStatusJSON(http.StatusForbidden, resp)
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        newUserResponse(result.User),
	})
}

type verifyInput struct {
	UserID int64  `json:"user_id" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

type verifyResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
} // @name VerifyResponse

// @Summary Verify
// @Tags Auth
// @Description Consumes a verification code and logs the user in
// @Accept json
// @Produce json
// @Param input body verifyInput true "user id and code"
// @Success 200 {object} verifyResponse
// @Failure 400 {object} messageResponse
// @Router /verify [post]
func (h *Handler) verify(c *gin.Context) {
	var input verifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	result, err := h.services.Users.Verify(c.Request.Context(), input.UserID, input.Code)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, verifyResponse{
		Message:     "User verified successfully",
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        newUserResponse(result.User),
	})
}

type resendCodeInput struct {
	UserID int64 `json:"user_id" binding:"required"`
}

type resendCodeResponse struct {
	Message          string `json:"message"`
	VerificationCode string `json:"verification_code,omitempty"`
} // @name ResendCodeResponse

// @Summary Resend code
// @Tags Auth
// @Description Supersedes any previous code and issues a fresh one
// @Accept json
// @Produce json
// @Param input body resendCodeInput true "user id"
// @Success 200 {object} resendCodeResponse
// @Failure 404 {object} messageResponse
// @Router /resend-code [post]
func (h *Handler) resendCode(c *gin.Context) {
	var input resendCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	code, err := h.services.Users.ResendCode(c.Request.Context(), input.UserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := resendCodeResponse{Message: "Verification code resent"}
	if h.config.Auth.ExposeVerificationCode {
		resp.VerificationCode = code
	}

	c.JSON(http.StatusOK, resp)
}
