package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voiceflow-dashboard/internal/components"
	"voiceflow-dashboard/pkg/logger"
)

// documentTitle prefixes the site name with the page title, if any.
func (h *TemplateHandler) documentTitle(title string) string {
	site := strings.TrimSpace(h.config.SiteName)
	if site == "" {
		site = components.Brand.Label
	}
	if title == "" {
		return site
	}
	return fmt.Sprintf("%s - %s", title, site)
}

func (h *TemplateHandler) renderDocument(c *gin.Context, status int, title string, page components.Page) {
	doc := components.Document{
		Title: h.documentTitle(title),
		Page:  page,
	}

	output, err := h.render(func(b *strings.Builder) error {
		return h.renderer.RenderDocument(b, doc)
	})
	if err != nil {
		h.renderError(c, err, "base.html")
		return
	}

	c.Data(status, "text/html; charset=utf-8", []byte(output))
}

func (h *TemplateHandler) render(fn func(*strings.Builder) error) (string, error) {
	var b strings.Builder
	if err := fn(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (h *TemplateHandler) renderError(c *gin.Context, err error, template string) {
	logger.Error(err, "Failed to render template", map[string]interface{}{
		"template": template,
		"path":     c.Request.URL.Path,
	})
	c.String(http.StatusInternalServerError, "500 - Server Error")
}
