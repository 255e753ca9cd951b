package models

import (
	"time"
)

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	OrderTime    time.Time   `json:"order_time" gorm:"not null"`
	CustomerName string      `json:"customer_name"`
	TotalAmount  float64     `json:"total_amount"`
	Items        []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}
