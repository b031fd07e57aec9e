package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := protected.Group("/resumes")
	{
		resumes.GET("", handler.List)
		resumes.POST("", handler.Create)
		resumes.GET("/:id", handler.Get)
		resumes.PUT("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List resumes
// @Description  List the caller's resumes, newest first
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	resumes, err := h.resumeUC.ListResumes(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	out := make([]ResumeResource, 0, len(resumes))
	for i := range resumes {
		out = append(out, newResumeResource(&resumes[i]))
	}
	response.Success(c, http.StatusOK, "Resume list", out)
}

// Create godoc
// @Summary      Create a resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        input  body      domain.ResumeInput  true  "Resume fields"
// @Success      201    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Create(c *gin.Context) {
	var in domain.ResumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	resume, err := h.resumeUC.CreateResume(c.Request.Context(), userID, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created", newResumeResource(resume))
}

// Get godoc
// @Summary      Fetch a resume with all sections
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [get]
// @Security     BearerAuth
func (h *ResumeHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	resume, err := h.resumeUC.GetResume(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume details", newResumeWithSectionsResource(resume))
}

// Update godoc
// @Summary      Replace a resume's scalar fields
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        id     path      int                 true  "Resume ID"
// @Param        input  body      domain.ResumeInput  true  "Resume fields"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /resumes/{id} [put]
// @Security     BearerAuth
func (h *ResumeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.ResumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	resume, err := h.resumeUC.UpdateResume(c.Request.Context(), userID, id, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", newResumeResource(resume))
}

// Delete godoc
// @Summary      Delete a resume
// @Description  Soft-deletes the resume; its sections are kept until a purge
// @Tags         resumes
// @Param        id  path  int  true  "Resume ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.resumeUC.DeleteResume(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}
