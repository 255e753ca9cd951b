package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/cart"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/services"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/session"
)

// SessionHeader carries the opaque cart session id. A request without one
// gets a fresh id, echoed back in every cart response.
const SessionHeader = "X-Cart-Session"

type OrderHandler struct {
	orderService services.OrderService
	carts        session.Store
}

func NewOrderHandler(orderService services.OrderService, carts session.Store) *OrderHandler {
	return &OrderHandler{orderService: orderService, carts: carts}
}

func (h *OrderHandler) sessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

// loadCart treats a missing or expired session as a fresh empty cart.
func (h *OrderHandler) loadCart(sessionID string) (*cart.Cart, error) {
	staged, err := h.carts.Get(sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return cart.New(), nil
		}
		return nil, err
	}
	return staged, nil
}

// Cart endpoints

func (h *OrderHandler) GetCart(c *gin.Context) {
	sessionID := h.sessionID(c)

	staged, err := h.loadCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	lines, total, err := h.orderService.PricedLines(staged)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":   sessionID,
		"items":        lines,
		"total_amount": total,
	})
}

func (h *OrderHandler) AddCartItem(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
		Qty       int  `json:"qty" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	staged, err := h.loadCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	if err := h.orderService.AddItem(staged, req.ProductID, req.Qty); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, cart.ErrInvalidProduct), errors.Is(err, cart.ErrInvalidQty):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		}
		return
	}

	if err := h.carts.Put(sessionID, staged); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"items":      len(staged.Lines),
		"message":    "Item added to order",
	})
}

func (h *OrderHandler) ClearCart(c *gin.Context) {
	sessionID := h.sessionID(c)

	if err := h.carts.Delete(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"message":    "Cart cleared",
	})
}

// Order endpoints

func (h *OrderHandler) FinalizeOrder(c *gin.Context) {
	sessionID := h.sessionID(c)

	// Customer name is optional; an empty body finalizes for a walk-in.
	var req struct {
		CustomerName string `json:"customer_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	staged, err := h.loadCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	order, err := h.orderService.Finalize(staged, req.CustomerName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order was not saved"})
		}
		return
	}

	if err := h.carts.Delete(sessionID); err != nil {
		log.Printf("Warning: failed to drop cart session %s: %v", sessionID, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id":   sessionID,
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"message":      "Order saved",
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, err := h.orderService.GetRecentOrders(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.orderService.GetOrderByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
