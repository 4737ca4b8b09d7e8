package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Catalog is the ordered, read-only list of purchasable products.
type Catalog struct {
	products []Product
	index    map[ProductID]int
}

// New validates products and freezes them into a Catalog. Every problem found
// is reported, not only the first one.
func New(products []Product) (*Catalog, error) {
	var errs error
	index := make(map[ProductID]int, len(products))
	for i, p := range products {
		if _, dup := index[p.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("product %d: duplicate id", p.ID))
			continue
		}
		index[p.ID] = i
		errs = multierr.Append(errs, validateProduct(p))
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid catalog: %w", errs)
	}

	frozen := make([]Product, len(products))
	copy(frozen, products)
	return &Catalog{products: frozen, index: index}, nil
}

func validateProduct(p Product) error {
	var errs error
	if strings.TrimSpace(p.Name) == "" {
		errs = multierr.Append(errs, fmt.Errorf("product %d: name is required", p.ID))
	}
	if p.Price.IsNegative() {
		errs = multierr.Append(errs, fmt.Errorf("product %d: price must be non-negative", p.ID))
	}
	if p.SalePrice != nil {
		if p.SalePrice.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("product %d: sale price must be non-negative", p.ID))
		}
		if p.SalePrice.GreaterThan(p.Price) {
			errs = multierr.Append(errs, fmt.Errorf("product %d: sale price exceeds regular price", p.ID))
		}
	}
	return errs
}

// Products returns the catalog in its original order. The slice is a copy.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Get looks a product up by id.
func (c *Catalog) Get(id ProductID) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}
