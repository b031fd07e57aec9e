package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(protected *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	educations := protected.Group("/educations")
	{
		educations.POST("", handler.Create)
		educations.PUT("/:id", handler.Update)
		educations.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Add an education entry to a resume
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        input  body      domain.EducationInput  true  "Education fields"
// @Success      201    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /educations [post]
// @Security     BearerAuth
func (h *EducationHandler) Create(c *gin.Context) {
	var in domain.EducationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	education, err := h.educationUC.CreateEducation(c.Request.Context(), userID, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education created", newEducationResource(education))
}

// Update godoc
// @Summary      Update an education entry
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        id     path      int                     true  "Education ID"
// @Param        input  body      domain.EducationUpdate  true  "Fields to change"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /educations/{id} [put]
// @Security     BearerAuth
func (h *EducationHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.EducationUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	education, err := h.educationUC.UpdateEducation(c.Request.Context(), userID, id, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", newEducationResource(education))
}

// Delete godoc
// @Summary      Delete an education entry
// @Tags         educations
// @Param        id  path  int  true  "Education ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /educations/{id} [delete]
// @Security     BearerAuth
func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.educationUC.DeleteEducation(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
