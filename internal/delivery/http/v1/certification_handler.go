package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
)

type CertificationHandler struct {
	certificationUC domain.CertificationUsecase
}

func NewCertificationHandler(protected *gin.RouterGroup, certificationUC domain.CertificationUsecase) {
	handler := &CertificationHandler{certificationUC: certificationUC}

	certifications := protected.Group("/certifications")
	{
		certifications.POST("", handler.Create)
		certifications.PUT("/:id", handler.Update)
		certifications.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Add a certification to a resume
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        input  body      domain.CertificationInput  true  "Certification fields"
// @Success      201    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /certifications [post]
// @Security     BearerAuth
func (h *CertificationHandler) Create(c *gin.Context) {
	var in domain.CertificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	certification, err := h.certificationUC.CreateCertification(c.Request.Context(), userID, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Certification created", newCertificationResource(certification))
}

// Update godoc
// @Summary      Update a certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        id     path      int                         true  "Certification ID"
// @Param        input  body      domain.CertificationUpdate  true  "Fields to change"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /certifications/{id} [put]
// @Security     BearerAuth
func (h *CertificationHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.CertificationUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	certification, err := h.certificationUC.UpdateCertification(c.Request.Context(), userID, id, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification updated", newCertificationResource(certification))
}

// Delete godoc
// @Summary      Delete a certification
// @Tags         certifications
// @Param        id  path  int  true  "Certification ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certifications/{id} [delete]
// @Security     BearerAuth
func (h *CertificationHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.certificationUC.DeleteCertification(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
