package cart

import "github.com/shopspring/decimal"

// EffectiveUnitPrice is the price charged per unit: the sale price when the
// item is on sale and carries one, the regular price otherwise. Every total
// in the system goes through this function.
func EffectiveUnitPrice(item Item) decimal.Decimal {
	if item.IsOnSale && item.SalePrice != nil {
		return *item.SalePrice
	}
	return item.Price
}

// LineTotal is the effective unit price times quantity.
func LineTotal(item Item) decimal.Decimal {
	return EffectiveUnitPrice(item).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// LineSavings is what the sale price takes off the regular line total.
func LineSavings(item Item) decimal.Decimal {
	return item.Price.Sub(EffectiveUnitPrice(item)).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Total sums line totals over items.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineTotal(item))
	}
	return sum
}

// Savings sums line savings over items.
func Savings(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineSavings(item))
	}
	return sum
}

// ItemCount sums quantities over items.
func ItemCount(items []Item) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}
