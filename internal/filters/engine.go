package filters

import (
	"sort"
	"strings"

	"github.com/chocozoo/storefront/internal/catalog"
)

// FilteredProducts returns the products matching searchTerm and every active
// category of sel, in their original order. An empty term or selection
// filters nothing.
func FilteredProducts(products []catalog.Product, sel Selection, searchTerm string) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	needle := strings.ToLower(searchTerm)
	categories := sel.Categories()

	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if !matchesAll(p, sel, categories) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesAll(p catalog.Product, sel Selection, categories []catalog.Category) bool {
	for _, category := range categories {
		if !matches(p, category, sel.values[category]) {
			return false
		}
	}
	return true
}

func matches(p catalog.Product, category catalog.Category, selected []string) bool {
	if category == catalog.CategoryOnSale {
		return p.IsOnSale
	}
	attr := p.Attribute(category)
	for _, want := range selected {
		if attr.Contains(want) {
			return true
		}
	}
	return false
}

// AvailableOptions collects the distinct values of category across the full
// catalog, sorted. It never depends on the current selection.
func AvailableOptions(products []catalog.Product, category catalog.Category) []string {
	if category == catalog.CategoryOnSale {
		return []string{OnSaleOption}
	}

	seen := make(map[string]struct{})
	for _, p := range products {
		for _, v := range p.Attribute(category).Items() {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Engine binds the filter functions to one catalog and precomputes the
// option lists, which only depend on the catalog.
type Engine struct {
	catalog *catalog.Catalog
	options map[catalog.Category][]string
}

func NewEngine(cat *catalog.Catalog) *Engine {
	products := cat.Products()
	options := make(map[catalog.Category][]string)
	for _, c := range catalog.Categories() {
		options[c] = AvailableOptions(products, c)
	}
	return &Engine{catalog: cat, options: options}
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Filter applies sel and searchTerm to the bound catalog.
func (e *Engine) Filter(sel Selection, searchTerm string) []catalog.Product {
	return FilteredProducts(e.catalog.Products(), sel, searchTerm)
}

// Options returns the cached option list for category.
func (e *Engine) Options(category catalog.Category) []string {
	return append([]string(nil), e.options[category]...)
}
