package enums

// OrderStatus is the outcome of submitting an order for confirmation.
type OrderStatus string

const (
	OrderStatusAccepted     OrderStatus = "accepted"
	OrderStatusRedirectCart OrderStatus = "redirect_cart"
)

func (o OrderStatus) String() string {
	return string(o)
}
