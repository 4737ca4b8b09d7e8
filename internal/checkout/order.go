package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chocozoo/storefront/internal/cart"
	"github.com/chocozoo/storefront/pkg/enums"
)

// ShippingInfo is the delivery address collected on the checkout step.
type ShippingInfo struct {
	FullName   string         `json:"fullName"`
	Address    string         `json:"address"`
	City       string         `json:"city"`
	Province   enums.Province `json:"province"`
	PostalCode string         `json:"postalCode"`
}

// IsComplete reports whether every shipping field is filled in.
func (s ShippingInfo) IsComplete() bool {
	for _, field := range []string{s.FullName, s.Address, s.City, string(s.Province), s.PostalCode} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// CardDetails travel with the order only for card payments.
type CardDetails struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// Masked hides all but the last four digits of the card number.
func (c CardDetails) Masked() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.CardNumber)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// Order is the payload handed from checkout to review to confirmation.
type Order struct {
	Items         []cart.Item         `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Shipping      *ShippingInfo       `json:"shipping,omitempty"`
	PaymentMethod enums.PaymentMethod `json:"paymentMethod"`
	Card          *CardDetails        `json:"card,omitempty"`
}

// BuildOrder snapshots the store's current items and total. Card details are
// kept only when the method is card. Nothing is validated here.
func BuildOrder(store *cart.Store, shipping *ShippingInfo, method enums.PaymentMethod, card *CardDetails) Order {
	snap := store.Snapshot()
	order := Order{
		Items:         snap.Items,
		Total:         snap.Total,
		PaymentMethod: method,
	}
	if shipping != nil {
		copied := *shipping
		order.Shipping = &copied
	}
	if method.RequiresCard() && card != nil {
		copied := *card
		order.Card = &copied
	}
	return order
}

// IsSubmittable reports whether the order carries items and complete
// shipping info, the minimum needed to confirm it.
func (o Order) IsSubmittable() bool {
	return len(o.Items) > 0 && o.Shipping != nil && o.Shipping.IsComplete()
}

// Line is one review row with its derived prices.
type Line struct {
	Item          cart.Item       `json:"item"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	RegularTotal  decimal.Decimal `json:"regularTotal"`
	DiscountShown bool            `json:"discountShown"`
}

// Summary is what the review step renders.
type Summary struct {
	Lines        []Line          `json:"lines"`
	ItemCount    int             `json:"itemCount"`
	Total        decimal.Decimal `json:"total"`
	Savings      decimal.Decimal `json:"savings"`
	PaymentLabel string          `json:"paymentLabel"`
	MaskedCard   string          `json:"maskedCard,omitempty"`
}

// Summarize derives the review figures from the order's item snapshot.
func Summarize(o Order) Summary {
	lines := make([]Line, 0, len(o.Items))
	for _, item := range o.Items {
		unit := cart.EffectiveUnitPrice(item)
		lines = append(lines, Line{
			Item:          item,
			UnitPrice:     unit,
			LineTotal:     cart.LineTotal(item),
			RegularTotal:  item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
			DiscountShown: !unit.Equal(item.Price),
		})
	}
	summary := Summary{
		Lines:        lines,
		ItemCount:    cart.ItemCount(o.Items),
		Total:        cart.Total(o.Items),
		Savings:      cart.Savings(o.Items),
		PaymentLabel: o.PaymentMethod.Label(),
	}
	if o.Card != nil {
		summary.MaskedCard = o.Card.Masked()
	}
	return summary
}
