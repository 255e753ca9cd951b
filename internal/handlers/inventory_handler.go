package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/services"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) ListProducts(c *gin.Context) {
	products, err := h.inventoryService.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var req struct {
		Name         string  `json:"name" binding:"required"`
		CostPrice    float64 `json:"cost_price" binding:"gte=0"`
		SellingPrice float64 `json:"selling_price" binding:"gte=0"`
		StockQty     int     `json:"stock_qty" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.inventoryService.CreateProduct(req.Name, req.CostPrice, req.SellingPrice, req.StockQty)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNameRequired),
			errors.Is(err, services.ErrNegativePrice),
			errors.Is(err, services.ErrNegativeStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added",
		"product": product,
	})
}

func (h *InventoryHandler) AddStock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req struct {
		Qty int `json:"qty" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.inventoryService.AddStock(uint(id), req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidRestockQty):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add stock"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock updated",
		"product": product,
	})
}
