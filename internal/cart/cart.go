package cart

import "errors"

var (
	ErrInvalidProduct = errors.New("invalid product id")
	ErrInvalidQty     = errors.New("quantity must be at least 1")
)

// Line is one staged entry of the order form. Repeated additions of the same
// product stay separate lines, matching how each form submission is recorded.
type Line struct {
	ProductID uint `json:"product_id"`
	Qty       int  `json:"qty"`
}

// Cart holds the lines staged by a single session before finalization. It
// carries no prices; the catalog is consulted when the order is saved.
type Cart struct {
	Lines []Line `json:"lines"`
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) AddItem(productID uint, qty int) error {
	if productID == 0 {
		return ErrInvalidProduct
	}
	if qty < 1 {
		return ErrInvalidQty
	}
	c.Lines = append(c.Lines, Line{ProductID: productID, Qty: qty})
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = nil
}
