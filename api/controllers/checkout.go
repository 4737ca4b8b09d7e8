package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/chocozoo/storefront/api/responses"
	"github.com/chocozoo/storefront/api/validators"
	"github.com/chocozoo/storefront/internal/cart"
	"github.com/chocozoo/storefront/internal/checkout"
	"github.com/chocozoo/storefront/pkg/enums"
	"github.com/chocozoo/storefront/pkg/logger"
	"github.com/chocozoo/storefront/pkg/types"
)

type orderSubmitter interface {
	SubmitOrder(ctx context.Context, store *cart.Store, order checkout.Order) checkout.Result
}

type checkoutRequest struct {
	Shipping      shippingPayload `json:"shipping"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,payment_method"`
	Card          *cardPayload    `json:"card" validate:"required_if=PaymentMethod creditCard,omitempty"`
}

type shippingPayload struct {
	FullName   string `json:"fullName" validate:"required,max=120"`
	Address    string `json:"address" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=120"`
	Province   string `json:"province" validate:"required,province"`
	PostalCode string `json:"postalCode" validate:"required,ca_postal"`
}

type cardPayload struct {
	CardNumber string `json:"cardNumber" validate:"required,card_number"`
	ExpiryDate string `json:"expiryDate" validate:"required,card_expiry"`
	CVV        string `json:"cvv" validate:"required,numeric,min=3,max=4"`
}

func (p checkoutRequest) toInput() (*checkout.ShippingInfo, enums.PaymentMethod, *checkout.CardDetails) {
	province, _ := enums.ParseProvince(p.Shipping.Province)
	shipping := &checkout.ShippingInfo{
		FullName:   validators.SanitizeString(p.Shipping.FullName, 120),
		Address:    validators.SanitizeString(p.Shipping.Address, 200),
		City:       validators.SanitizeString(p.Shipping.City, 120),
		Province:   province,
		PostalCode: validators.NormalizePostalCode(p.Shipping.PostalCode),
	}
	var card *checkout.CardDetails
	if p.Card != nil {
		card = &checkout.CardDetails{
			CardNumber: validators.CardDigits(p.Card.CardNumber),
			ExpiryDate: strings.TrimSpace(p.Card.ExpiryDate),
			CVV:        strings.TrimSpace(p.Card.CVV),
		}
	}
	return shipping, enums.PaymentMethod(p.PaymentMethod), card
}

type reviewResponse struct {
	Order    orderResponse   `json:"order"`
	Summary  summaryResponse `json:"summary"`
	Redirect *types.Redirect `json:"redirect,omitempty"`
}

// CheckoutReview validates the checkout form, snapshots the cart into an
// order and keeps it on the session for confirmation. An empty cart is sent
// back to the cart step instead.
func CheckoutReview(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shipping, method, card := payload.toInput()
		order := checkout.BuildOrder(sess.Cart, shipping, method, card)
		resp := reviewResponse{
			Order:   newOrderResponse(order),
			Summary: newSummaryResponse(checkout.Summarize(order)),
		}
		if order.IsSubmittable() {
			sess.SetPendingOrder(order)
		} else {
			resp.Redirect = &types.Redirect{To: checkout.RedirectCart, Reason: "cart is empty"}
		}
		responses.WriteSuccess(w, resp)
	}
}

type confirmResponse struct {
	Status   enums.OrderStatus `json:"status"`
	OrderID  string            `json:"orderId,omitempty"`
	Total    types.Money       `json:"total"`
	Message  string            `json:"message,omitempty"`
	Redirect *types.Redirect   `json:"redirect,omitempty"`
}

// CheckoutConfirm submits the reviewed order. Without a reviewed order, or
// with nothing in it, the shopper is sent back to the cart and the cart is
// untouched.
func CheckoutConfirm(svc orderSubmitter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		result := svc.SubmitOrder(r.Context(), sess.Cart, sess.TakePendingOrder())
		resp := confirmResponse{
			Status:  result.Status,
			OrderID: result.OrderID,
			Total:   types.NewMoney(result.Total),
			Message: result.Message,
		}
		if result.Redirect != "" {
			resp.Redirect = &types.Redirect{To: result.Redirect, Reason: "no reviewed order to confirm"}
		}
		responses.WriteSuccess(w, resp)
	}
}

type paymentOption struct {
	Value enums.PaymentMethod `json:"value"`
	Label string              `json:"label"`
}

type provinceOption struct {
	Code enums.Province `json:"code"`
	Name string         `json:"name"`
}

// CheckoutOptions lists the stepper stages, payment methods and provinces
// the checkout form offers.
func CheckoutOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods := enums.PaymentMethods()
		payments := make([]paymentOption, 0, len(methods))
		for _, m := range methods {
			payments = append(payments, paymentOption{Value: m, Label: m.Label()})
		}
		codes := enums.Provinces()
		provinces := make([]provinceOption, 0, len(codes))
		for _, p := range codes {
			provinces = append(provinces, provinceOption{Code: p, Name: p.Name()})
		}
		responses.WriteSuccess(w, map[string]any{
			"steps":          enums.CheckoutSteps(),
			"paymentMethods": payments,
			"provinces":      provinces,
		})
	}
}
