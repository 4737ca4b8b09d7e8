package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chocozoo/storefront/internal/cart"
	"github.com/chocozoo/storefront/pkg/enums"
	"github.com/chocozoo/storefront/pkg/logger"
)

// RedirectCart is the step a rejected submission sends the shopper back to.
const RedirectCart = "/cart"

// ConfirmationMessage is shown once an order is accepted.
const ConfirmationMessage = "Thank you for your order! Your chocolate animals are on their way."

// Result is the outcome of SubmitOrder.
type Result struct {
	Status   enums.OrderStatus `json:"status"`
	OrderID  string            `json:"orderId,omitempty"`
	Total    decimal.Decimal   `json:"total"`
	Message  string            `json:"message,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

func (r Result) Accepted() bool {
	return r.Status == enums.OrderStatusAccepted
}

type outcomeRecorder interface {
	ObserveOrder(status enums.OrderStatus)
}

// Service runs the confirmation flow.
type Service struct {
	logg     *logger.Logger
	recorder outcomeRecorder
	newID    func() string
}

// NewService builds a confirmation service. recorder may be nil.
func NewService(logg *logger.Logger, recorder outcomeRecorder) *Service {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Service{
		logg:     logg,
		recorder: recorder,
		newID:    uuid.NewString,
	}
}

// SubmitOrder confirms order against store. An order without items or
// complete shipping info is not confirmed, and neither is one whose lines no
// longer match the cart (the shopper changed the cart after review). In both
// cases the cart is left alone and the result points back to the cart.
// Otherwise the cart is cleared and the order is accepted.
func (s *Service) SubmitOrder(ctx context.Context, store *cart.Store, order Order) Result {
	if !order.IsSubmittable() {
		s.logg.Warn(ctx, "checkout.redirect_cart")
		return s.redirect()
	}
	if !store.ClearIfMatches(order.Items) {
		s.logg.Warn(s.logg.WithField(ctx, "reason", "cart_changed"), "checkout.redirect_cart")
		return s.redirect()
	}

	orderID := s.newID()
	total := cart.Total(order.Items)

	ctx = s.logg.WithOrderID(ctx, orderID)
	ctx = s.logg.WithFields(ctx, map[string]any{
		"items":          cart.ItemCount(order.Items),
		"total":          total.StringFixed(2),
		"payment_method": order.PaymentMethod.String(),
		"province":       order.Shipping.Province.String(),
	})
	s.logg.Info(ctx, "checkout.order_accepted")
	s.record(enums.OrderStatusAccepted)

	return Result{
		Status:  enums.OrderStatusAccepted,
		OrderID: orderID,
		Total:   total,
		Message: ConfirmationMessage,
	}
}

func (s *Service) redirect() Result {
	s.record(enums.OrderStatusRedirectCart)
	return Result{
		Status:   enums.OrderStatusRedirectCart,
		Total:    decimal.Zero,
		Redirect: RedirectCart,
	}
}

func (s *Service) record(status enums.OrderStatus) {
	if s.recorder != nil {
		s.recorder.ObserveOrder(status)
	}
}
