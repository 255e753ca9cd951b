package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/models"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/repository"
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrNegativePrice       = errors.New("prices cannot be negative")
	ErrNegativeStock       = errors.New("stock cannot be negative")
	ErrInvalidRestockQty   = errors.New("restock quantity must be at least 1")
)

type InventoryService interface {
	ListProducts() ([]models.Product, error)
	CreateProduct(name string, costPrice, sellingPrice float64, stockQty int) (*models.Product, error)
	AddStock(productID uint, qty int) (*models.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
}

func NewInventoryService(productRepo repository.ProductRepository) InventoryService {
	return &inventoryService{productRepo: productRepo}
}

func (s *inventoryService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *inventoryService) CreateProduct(name string, costPrice, sellingPrice float64, stockQty int) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if costPrice < 0 || sellingPrice < 0 {
		return nil, ErrNegativePrice
	}
	if stockQty < 0 {
		return nil, ErrNegativeStock
	}

	product := &models.Product{
		Name:         name,
		CostPrice:    costPrice,
		SellingPrice: sellingPrice,
		StockQty:     stockQty,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// AddStock increases a product's on-hand quantity and returns the updated row.
func (s *inventoryService) AddStock(productID uint, qty int) (*models.Product, error) {
	if qty < 1 {
		return nil, ErrInvalidRestockQty
	}

	if err := s.productRepo.AddStock(productID, qty); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to add stock: %w", err)
	}

	return s.productRepo.GetByID(productID)
}
