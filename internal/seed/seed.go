package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/cart"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/models"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/repository"
)

type demoProduct struct {
	name  string
	cost  float64
	sell  float64
	stock int
}

type demoLine struct {
	product int // 1-based position in the product fixture
	qty     int
}

type demoOrder struct {
	customer string
	daysAgo  int
	lines    []demoLine
}

var demoProducts = []demoProduct{
	{"Milk 1L", 20.0, 25.0, 50},
	{"Bread Loaf", 15.0, 20.0, 30},
	{"Eggs Pack (12)", 60.0, 75.0, 20},
	{"Toothpaste", 40.0, 55.0, 10},
	{"Soap", 10.0, 20.0, 5},
	{"Rice 5kg", 250.0, 300.0, 8},
	{"Cooking Oil 1L", 120.0, 150.0, 12},
	{"Sugar 1kg", 40.0, 50.0, 0},
	{"Salt 1kg", 12.0, 20.0, 40},
	{"Tea Pack 100g", 30.0, 45.0, 3},
}

var demoOrders = []demoOrder{
	{"Amit", 2, []demoLine{{1, 2}, {2, 1}}},
	{"Shreya", 5, []demoLine{{3, 1}, {5, 2}}},
	{"Ramesh", 10, []demoLine{{6, 1}, {7, 1}}},
	{"Priya", 1, []demoLine{{1, 1}, {2, 2}, {9, 1}}},
	{"Karan", 4, []demoLine{{10, 1}, {4, 1}}},
	{"Neha", 8, []demoLine{{1, 1}, {8, 1}}},
	{"LocalShop", 6, []demoLine{{9, 5}, {2, 5}}},
}

// EnsureDemoData populates an empty store with the demo catalog and a week of
// historical orders. With data already present it does nothing unless force
// is set, which wipes the three tables and reseeds.
func EnsureDemoData(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, force bool) error {
	count, err := productRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to check products: %w", err)
	}
	if count > 0 && !force {
		log.Println("Demo data already present, skipping seed")
		return nil
	}

	if err := orderRepo.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}
	if err := productRepo.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	return load(productRepo, orderRepo, demoProducts, demoOrders)
}

// load inserts the fixture. Orders reference products by fixture position so
// the mapping stays correct under identity sequences that do not restart on
// delete. Each historical order runs through the same transactional path as a
// live one, so totals, price snapshots and stock line up.
func load(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, productFixtures []demoProduct, orderFixtures []demoOrder) error {
	idByPosition := make(map[int]uint, len(productFixtures))
	for i, p := range productFixtures {
		product := &models.Product{
			Name:         p.name,
			CostPrice:    p.cost,
			SellingPrice: p.sell,
			StockQty:     p.stock,
		}
		if err := productRepo.Create(product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
		idByPosition[i+1] = product.ID
	}

	now := time.Now()
	seeded := 0
	for _, o := range orderFixtures {
		lines, err := resolveLines(o.lines, idByPosition)
		if err != nil {
			log.Printf("Warning: skipping sample order for %s: %v", o.customer, err)
			continue
		}

		if _, err := orderRepo.CreateWithItems(o.customer, now.AddDate(0, 0, -o.daysAgo), lines); err != nil {
			log.Printf("Warning: skipping sample order for %s: %v", o.customer, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeded %d products and %d demo orders", len(productFixtures), seeded)
	return nil
}

func resolveLines(lines []demoLine, idByPosition map[int]uint) ([]cart.Line, error) {
	resolved := make([]cart.Line, 0, len(lines))
	for _, line := range lines {
		id, ok := idByPosition[line.product]
		if !ok {
			return nil, fmt.Errorf("unknown product position %d", line.product)
		}
		resolved = append(resolved, cart.Line{ProductID: id, Qty: line.qty})
	}
	return resolved, nil
}
