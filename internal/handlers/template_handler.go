package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voiceflow-dashboard/internal/components"
	"voiceflow-dashboard/internal/config"
	"voiceflow-dashboard/pkg/utils"
)

type TemplateHandler struct {
	renderer *components.Renderer
	config   *config.Config
}

func NewTemplateHandler(renderer *components.Renderer, cfg *config.Config) (*TemplateHandler, error) {
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return &TemplateHandler{
		renderer: renderer,
		config:   cfg,
	}, nil
}

func (h *TemplateHandler) RenderIndex(c *gin.Context) {
	h.renderDocument(c, http.StatusOK, "", components.HomePage())
}

// RenderNavigationBar serves the bare navigation bar fragment.
func (h *TemplateHandler) RenderNavigationBar(c *gin.Context) {
	output, err := h.render(func(b *strings.Builder) error {
		return h.renderer.RenderNavigationBar(b)
	})
	if err != nil {
		h.renderError(c, err, "navbar")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(output))
}

func (h *TemplateHandler) RenderNotFound(c *gin.Context) {
	path := utils.NormalizePath(c.Request.URL.Path)

	if strings.HasPrefix(path, "/api/") || path == "/api" {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  path,
		})
		return
	}

	h.renderDocument(c, http.StatusNotFound, components.NotFoundHeading, components.NotFoundPage(path))
}
