package models

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Qty       int     `json:"qty" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"` // selling price captured when the order was placed
}

// OrderItemDetail is an order item joined with its product's current name and
// cost price. It is a read model for reporting, not a table.
type OrderItemDetail struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductID   uint    `json:"product_id"`
	Qty         int     `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	ProductName string  `json:"product_name"`
	CostPrice   float64 `json:"cost_price"`
}
