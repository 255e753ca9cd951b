package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/cart"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/models"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyCart       = errors.New("cannot finalize an empty order")
)

// DefaultCustomerName is recorded when an order is finalized without a name.
const DefaultCustomerName = "Walk-in"

// PricedLine is a staged cart line enriched with catalog data for display.
// Prices shown here are a preview; the saved order re-reads them.
type PricedLine struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Qty         int     `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type OrderService interface {
	AddItem(c *cart.Cart, productID uint, qty int) error
	PricedLines(c *cart.Cart) ([]PricedLine, float64, error)
	Finalize(c *cart.Cart, customerName string) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetRecentOrders(limit int) ([]models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{orderRepo: orderRepo, productRepo: productRepo}
}

// AddItem validates the product against the catalog and stages the line.
func (s *orderService) AddItem(c *cart.Cart, productID uint, qty int) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to look up product: %w", err)
	}
	return c.AddItem(productID, qty)
}

func (s *orderService) PricedLines(c *cart.Cart) ([]PricedLine, float64, error) {
	lines := make([]PricedLine, 0, len(c.Lines))
	var total float64

	for _, line := range c.Lines {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, ErrProductNotFound
			}
			return nil, 0, fmt.Errorf("failed to look up product: %w", err)
		}

		lineTotal := product.SellingPrice * float64(line.Qty)
		lines = append(lines, PricedLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Qty:         line.Qty,
			UnitPrice:   product.SellingPrice,
			LineTotal:   lineTotal,
		})
		total += lineTotal
	}

	return lines, total, nil
}

// Finalize saves the staged cart as an order dated now. On success the cart
// is cleared; on any failure nothing is persisted and the cart is kept so the
// caller can retry.
func (s *orderService) Finalize(c *cart.Cart, customerName string) (*models.Order, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if customerName == "" {
		customerName = DefaultCustomerName
	}

	order, err := s.orderRepo.CreateWithItems(customerName, time.Now(), c.Lines)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	c.Clear()
	return order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetRecentOrders(limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.orderRepo.GetRecent(limit)
}
