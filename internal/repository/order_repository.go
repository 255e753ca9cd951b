package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/cart"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/models"
)

type OrderRepository interface {
	CreateWithItems(customerName string, orderTime time.Time, lines []cart.Line) (*models.Order, error)
	GetByID(id uint) (*models.Order, error)
	GetRecent(limit int) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	ListItemDetails() ([]models.OrderItemDetail, error)
	DeleteAll() error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems saves an order and its items in a single transaction. Each
// line is priced from the product's current selling price, and stock is
// reduced with a floor of zero. Any failure rolls the whole order back so no
// partial order is ever visible.
func (r *orderRepository) CreateWithItems(customerName string, orderTime time.Time, lines []cart.Line) (*models.Order, error) {
	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	order := models.Order{
		OrderTime:    orderTime,
		CustomerName: customerName,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var total float64
	for _, line := range lines {
		var product models.Product
		if err := tx.First(&product, line.ProductID).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("product %d: %w", line.ProductID, err)
		}

		item := models.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Qty:       line.Qty,
			UnitPrice: product.SellingPrice,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
			Update("stock_qty", gorm.Expr("CASE WHEN stock_qty - ? < 0 THEN 0 ELSE stock_qty - ? END", line.Qty, line.Qty)).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		total += product.SellingPrice * float64(line.Qty)
		order.Items = append(order.Items, item)
	}

	if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("total_amount", total).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	order.TotalAmount = total

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("order_time DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Find(&orders).Error
	return orders, err
}

// ListItemDetails joins every order item with its product's current name and
// cost price, the flat shape the report calculations consume.
func (r *orderRepository) ListItemDetails() ([]models.OrderItemDetail, error) {
	var details []models.OrderItemDetail
	err := r.db.Table("order_items oi").
		Select("oi.id, oi.order_id, oi.product_id, oi.qty, oi.unit_price, p.name AS product_name, p.cost_price").
		Joins("JOIN products p ON oi.product_id = p.id").
		Scan(&details).Error
	return details, err
}

func (r *orderRepository) DeleteAll() error {
	if err := r.db.Exec("DELETE FROM order_items").Error; err != nil {
		return err
	}
	return r.db.Exec("DELETE FROM orders").Error
}
