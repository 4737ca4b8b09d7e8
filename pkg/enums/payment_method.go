package enums

import "fmt"

// PaymentMethod describes how a shopper intends to settle an order.
type PaymentMethod string

const (
	PaymentMethodCard      PaymentMethod = "creditCard"
	PaymentMethodInterac   PaymentMethod = "interac"
	PaymentMethodApplePay  PaymentMethod = "applePay"
	PaymentMethodGooglePay PaymentMethod = "googlePay"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCard,
	PaymentMethodInterac,
	PaymentMethodApplePay,
	PaymentMethodGooglePay,
}

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCard:      "Credit/Debit Card",
	PaymentMethodInterac:   "Interac e-Transfer",
	PaymentMethodApplePay:  "Apple Pay",
	PaymentMethodGooglePay: "Google Pay",
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// Label is the human readable name shown on the review page.
func (p PaymentMethod) Label() string {
	return paymentMethodLabels[p]
}

// RequiresCard reports whether card details travel with this method.
func (p PaymentMethod) RequiresCard() bool {
	return p == PaymentMethodCard
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}

// PaymentMethods lists every accepted method in display order.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(validPaymentMethods))
	copy(out, validPaymentMethods)
	return out
}
