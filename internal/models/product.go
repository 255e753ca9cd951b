package models

type Product struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	CostPrice    float64 `json:"cost_price" gorm:"not null"`
	SellingPrice float64 `json:"selling_price" gorm:"not null"`
	StockQty     int     `json:"stock_qty" gorm:"not null;default:0"`
}
