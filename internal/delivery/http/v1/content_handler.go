package v1

import (
	"net/http"

	"electric-system-backend/internal/content"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct{}

// NewContentHandler registers the site copy route (public)
func NewContentHandler(public *gin.RouterGroup) {
	handler := &ContentHandler{}

	public.GET("/content", handler.GetContent)
}

// GetContent godoc
// @Summary      Get Site Content
// @Description  Returns the full site copy (hero, services, about, testimonials, contact, footer) as one document.
// @Tags         content
// @Produce      json
// @Success      200  {object}  domain.SiteContent
// @Router       /content [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	c.JSON(http.StatusOK, content.Site())
}
