package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/config"
)

// SiteHandler serves display configuration the dashboard frontend needs: the
// shop identity and the externally published BI report to embed. The embed
// settings are opaque here; only the BI side knows what the report contains.
type SiteHandler struct {
	cfg *config.Config
}

func NewSiteHandler(cfg *config.Config) *SiteHandler {
	return &SiteHandler{cfg: cfg}
}

func (h *SiteHandler) SiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg.Site)
}

func (h *SiteHandler) EmbedConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg.Embed)
}
