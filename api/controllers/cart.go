package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chocozoo/storefront/api/responses"
	"github.com/chocozoo/storefront/api/validators"
	"github.com/chocozoo/storefront/internal/catalog"
	pkgerrors "github.com/chocozoo/storefront/pkg/errors"
	"github.com/chocozoo/storefront/pkg/logger"
)

type productLookup interface {
	Get(id catalog.ProductID) (catalog.Product, bool)
}

// CartFetch returns the session cart with its totals.
func CartFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, newCartResponse(sess.Cart.Snapshot()))
	}
}

// CartBadge returns the item count shown on the cart icon.
func CartBadge(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, map[string]int{"count": sess.Badge()})
	}
}

type addItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,min=1"`
}

// CartAddItem adds one unit of a catalog product.
func CartAddItem(products productLookup, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, found := products.Get(catalog.ProductID(payload.ProductID))
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").WithDetails(map[string]any{"productId": payload.ProductID}))
			return
		}

		sess.Cart.AddToCart(product)
		responses.WriteSuccess(w, newCartResponse(sess.Cart.Snapshot()))
	}
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartUpdateQuantity sets an item's quantity; zero or less removes it.
// Unknown items are left alone.
func CartUpdateQuantity(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		id, err := validators.ParseIDParam(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess.Cart.UpdateQuantity(catalog.ProductID(id), *payload.Quantity)
		responses.WriteSuccess(w, newCartResponse(sess.Cart.Snapshot()))
	}
}

// CartRemoveItem drops an item. Unknown items are left alone.
func CartRemoveItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		id, err := validators.ParseIDParam(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess.Cart.RemoveFromCart(catalog.ProductID(id))
		responses.WriteSuccess(w, newCartResponse(sess.Cart.Snapshot()))
	}
}
