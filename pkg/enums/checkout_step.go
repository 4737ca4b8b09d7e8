package enums

// CheckoutStep names a stage of the shopping flow shown in the stepper.
type CheckoutStep string

const (
	CheckoutStepShop   CheckoutStep = "Shop"
	CheckoutStepCart   CheckoutStep = "Cart"
	CheckoutStepCheck  CheckoutStep = "Checkout"
	CheckoutStepReview CheckoutStep = "Review Order"
)

// CheckoutSteps returns the stages in order.
func CheckoutSteps() []CheckoutStep {
	return []CheckoutStep{CheckoutStepShop, CheckoutStepCart, CheckoutStepCheck, CheckoutStepReview}
}
