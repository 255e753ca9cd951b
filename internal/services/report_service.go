package services

import (
	"fmt"
	"time"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/models"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/reports"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/repository"
)

// ReportService loads the relevant tables and hands them to the pure report
// calculations. A threshold of zero or less means the configured default.
type ReportService interface {
	BestSellers() ([]reports.BestSellerRow, error)
	TopProfit() ([]reports.ProfitRow, error)
	CustomersPerHour() ([]reports.HourlyRow, error)
	LowStock(threshold int) ([]reports.LowStockRow, error)
	Dashboard(threshold int) (*reports.Dashboard, error)
	Summary() (*reports.Summary, error)
}

type reportService struct {
	productRepo      repository.ProductRepository
	orderRepo        repository.OrderRepository
	defaultThreshold int
}

func NewReportService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, defaultThreshold int) ReportService {
	if defaultThreshold <= 0 {
		defaultThreshold = reports.DefaultLowStockThreshold
	}
	return &reportService{
		productRepo:      productRepo,
		orderRepo:        orderRepo,
		defaultThreshold: defaultThreshold,
	}
}

func (s *reportService) BestSellers() ([]reports.BestSellerRow, error) {
	items, err := s.loadItemDetails()
	if err != nil {
		return nil, err
	}
	return reports.BestSelling(items), nil
}

func (s *reportService) TopProfit() ([]reports.ProfitRow, error) {
	items, err := s.loadItemDetails()
	if err != nil {
		return nil, err
	}
	return reports.TopProfitProducts(items), nil
}

func (s *reportService) CustomersPerHour() ([]reports.HourlyRow, error) {
	orders, err := s.loadOrders()
	if err != nil {
		return nil, err
	}
	return reports.CustomersPerHour(orders), nil
}

func (s *reportService) LowStock(threshold int) ([]reports.LowStockRow, error) {
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}

	products, orders, items, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	return reports.LowStock(products, orders, items, threshold, time.Now()), nil
}

// Dashboard computes all four standard reports from one read of the tables.
func (s *reportService) Dashboard(threshold int) (*reports.Dashboard, error) {
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}

	products, orders, items, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	return &reports.Dashboard{
		BestSellers:      reports.BestSelling(items),
		TopProfit:        reports.TopProfitProducts(items),
		CustomersPerHour: reports.CustomersPerHour(orders),
		LowStock:         reports.LowStock(products, orders, items, threshold, time.Now()),
	}, nil
}

func (s *reportService) Summary() (*reports.Summary, error) {
	products, err := s.loadProducts()
	if err != nil {
		return nil, err
	}
	orders, err := s.loadOrders()
	if err != nil {
		return nil, err
	}

	summary := reports.Summarize(products, orders, s.defaultThreshold)
	return &summary, nil
}

func (s *reportService) loadProducts() ([]models.Product, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (s *reportService) loadOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

func (s *reportService) loadItemDetails() ([]models.OrderItemDetail, error) {
	items, err := s.orderRepo.ListItemDetails()
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	return items, nil
}

func (s *reportService) loadAll() ([]models.Product, []models.Order, []models.OrderItemDetail, error) {
	products, err := s.loadProducts()
	if err != nil {
		return nil, nil, nil, err
	}
	orders, err := s.loadOrders()
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.loadItemDetails()
	if err != nil {
		return nil, nil, nil, err
	}
	return products, orders, items, nil
}
