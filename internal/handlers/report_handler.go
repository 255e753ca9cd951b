package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.reportService.Dashboard(thresholdParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *ReportHandler) BestSellers(c *gin.Context) {
	rows, err := h.reportService.BestSellers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load best sellers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"best_sellers": rows})
}

func (h *ReportHandler) TopProfit(c *gin.Context) {
	rows, err := h.reportService.TopProfit()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profit ranking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"top_profit": rows})
}

func (h *ReportHandler) CustomersPerHour(c *gin.Context) {
	rows, err := h.reportService.CustomersPerHour()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hourly traffic"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers_per_hour": rows})
}

func (h *ReportHandler) LowStock(c *gin.Context) {
	rows, err := h.reportService.LowStock(thresholdParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load low stock report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"low_stock": rows})
}

func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// thresholdParam reads the optional ?threshold= override. Zero means the
// configured default.
func thresholdParam(c *gin.Context) int {
	value, err := strconv.Atoi(c.Query("threshold"))
	if err != nil {
		return 0
	}
	return value
}
