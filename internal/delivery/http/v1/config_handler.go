package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/config"
	"go-resume-builder/internal/delivery/http/response"
)

type ConfigHandler struct {
	cfg *config.Config
}

func NewConfigHandler(public *gin.RouterGroup, cfg *config.Config) {
	handler := &ConfigHandler{cfg: cfg}

	public.GET("/config", handler.Get)
}

// Get godoc
// @Summary      Public application configuration
// @Tags         config
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, "Config retrieved", gin.H{
		"app_name": h.cfg.AppName,
		"app_url":  h.cfg.AppURL,
		"app_env":  h.cfg.AppEnv,
	})
}
