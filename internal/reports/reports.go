package reports

import (
	"sort"
	"time"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/models"
)

const (
	// TopN caps the ranked reports.
	TopN = 5
	// DefaultLowStockThreshold flags products running out.
	DefaultLowStockThreshold = 2
	// salesWindow is the trailing period for sold-recently counts.
	salesWindow = 30 * 24 * time.Hour
)

type BestSellerRow struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitsSold   int    `json:"units_sold"`
}

type ProfitRow struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Profit      float64 `json:"profit"`
}

type HourlyRow struct {
	Hour      int `json:"hour"`
	Customers int `json:"customers"`
}

type LowStockRow struct {
	ProductID      uint   `json:"product_id"`
	ProductName    string `json:"product_name"`
	StockQty       int    `json:"stock_qty"`
	SoldLast30Days int    `json:"sold_last_30d"`
}

// Dashboard bundles the four standard reports the main page renders together.
type Dashboard struct {
	BestSellers      []BestSellerRow `json:"best_sellers"`
	TopProfit        []ProfitRow     `json:"top_profit"`
	CustomersPerHour []HourlyRow     `json:"customers_per_hour"`
	LowStock         []LowStockRow   `json:"low_stock"`
}

// Summary carries the headline numbers shown above the charts.
type Summary struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int     `json:"total_orders"`
	ProductCount   int     `json:"product_count"`
	InventoryValue float64 `json:"inventory_value"`
	LowStockCount  int     `json:"low_stock_count"`
}

// BestSelling ranks products by lifetime units sold, highest first, capped at
// TopN. Ties keep the lower product id first so the ranking is stable.
func BestSelling(items []models.OrderItemDetail) []BestSellerRow {
	qtyByProduct := make(map[uint]int)
	nameByProduct := make(map[uint]string)
	for _, item := range items {
		qtyByProduct[item.ProductID] += item.Qty
		nameByProduct[item.ProductID] = item.ProductName
	}

	rows := make([]BestSellerRow, 0, len(qtyByProduct))
	for id, qty := range qtyByProduct {
		rows = append(rows, BestSellerRow{
			ProductID:   id,
			ProductName: nameByProduct[id],
			UnitsSold:   qty,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].UnitsSold != rows[j].UnitsSold {
			return rows[i].UnitsSold > rows[j].UnitsSold
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	if len(rows) > TopN {
		rows = rows[:TopN]
	}
	return rows
}

// TopProfitProducts ranks products by realized profit, where each item
// contributes (unit_price - cost_price) * qty. The unit price is the snapshot
// taken at order time while the cost price is the catalog's current value, so
// a later cost change reshapes history here. Negative totals are kept.
func TopProfitProducts(items []models.OrderItemDetail) []ProfitRow {
	profitByProduct := make(map[uint]float64)
	nameByProduct := make(map[uint]string)
	for _, item := range items {
		profitByProduct[item.ProductID] += (item.UnitPrice - item.CostPrice) * float64(item.Qty)
		nameByProduct[item.ProductID] = item.ProductName
	}

	rows := make([]ProfitRow, 0, len(profitByProduct))
	for id, profit := range profitByProduct {
		rows = append(rows, ProfitRow{
			ProductID:   id,
			ProductName: nameByProduct[id],
			Profit:      profit,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Profit != rows[j].Profit {
			return rows[i].Profit > rows[j].Profit
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	if len(rows) > TopN {
		rows = rows[:TopN]
	}
	return rows
}

// CustomersPerHour counts orders falling in each hour of day. The result
// always has all 24 rows, zero filled, so chart axes stay stable even with no
// orders at all.
func CustomersPerHour(orders []models.Order) []HourlyRow {
	rows := make([]HourlyRow, 24)
	for hour := range rows {
		rows[hour].Hour = hour
	}
	for _, order := range orders {
		rows[order.OrderTime.Hour()].Customers++
	}
	return rows
}

// LowStock lists products with stock strictly below threshold, each with the
// units it sold in the trailing 30 days. Products that never sold in the
// window report zero. Input order of products is preserved.
func LowStock(products []models.Product, orders []models.Order, items []models.OrderItemDetail, threshold int, now time.Time) []LowStockRow {
	cutoff := now.Add(-salesWindow)
	recentOrders := make(map[uint]bool)
	for _, order := range orders {
		if !order.OrderTime.Before(cutoff) {
			recentOrders[order.ID] = true
		}
	}

	soldByProduct := make(map[uint]int)
	for _, item := range items {
		if recentOrders[item.OrderID] {
			soldByProduct[item.ProductID] += item.Qty
		}
	}

	rows := make([]LowStockRow, 0)
	for _, product := range products {
		if product.StockQty >= threshold {
			continue
		}
		rows = append(rows, LowStockRow{
			ProductID:      product.ID,
			ProductName:    product.Name,
			StockQty:       product.StockQty,
			SoldLast30Days: soldByProduct[product.ID],
		})
	}
	return rows
}

// Summarize produces the headline metrics: lifetime revenue and order count,
// catalog size, stock valued at selling price, and how many products sit
// below the low stock threshold.
func Summarize(products []models.Product, orders []models.Order, threshold int) Summary {
	s := Summary{
		TotalOrders:  len(orders),
		ProductCount: len(products),
	}
	for _, order := range orders {
		s.TotalRevenue += order.TotalAmount
	}
	for _, product := range products {
		s.InventoryValue += product.SellingPrice * float64(product.StockQty)
		if product.StockQty < threshold {
			s.LowStockCount++
		}
	}
	return s
}
