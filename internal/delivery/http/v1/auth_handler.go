package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/middleware"
	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimit middleware.RateLimitConfig) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/register", handler.Register)
	public.POST("/login", middleware.RateLimit(loginLimit), handler.Login)

	protected.POST("/logout", handler.Logout)
	protected.GET("/user", handler.Me)
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and receive an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      domain.RegisterInput  true  "Registration details"
// @Success      201    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var in domain.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, tokenString, err := h.authUC.Register(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registered", gin.H{
		"user":  user,
		"token": tokenString,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email and password, receive an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      domain.LoginInput  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var in domain.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, tokenString, err := h.authUC.Login(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in", gin.H{
		"user":  user,
		"token": tokenString,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the presented access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(string(domain.KeySessionID))
	if err := h.authUC.Logout(c.Request.Context(), sessionID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current user
// @Description  Fetch the authenticated caller's identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /user [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}
