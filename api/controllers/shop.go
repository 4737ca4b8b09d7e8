package controllers

import (
	"net/http"

	"github.com/chocozoo/storefront/api/middleware"
	"github.com/chocozoo/storefront/api/responses"
	"github.com/chocozoo/storefront/api/validators"
	"github.com/chocozoo/storefront/internal/catalog"
	"github.com/chocozoo/storefront/internal/filters"
	"github.com/chocozoo/storefront/internal/session"
	pkgerrors "github.com/chocozoo/storefront/pkg/errors"
	"github.com/chocozoo/storefront/pkg/logger"
)

// ShopView returns the session's filters, search term and matching products.
func ShopView(engine productFilter, recorder filterRecorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, buildShopResponse(engine, recorder, sess))
	}
}

type toggleFilterRequest struct {
	Category string `json:"category" validate:"required,filter_category"`
	Value    string `json:"value" validate:"required"`
}

// ShopToggleFilter selects or deselects one option.
func ShopToggleFilter(engine productFilter, recorder filterRecorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var payload toggleFilterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		category := catalog.Category(payload.Category)
		if err := filters.ValidateOption(category, payload.Value); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error()))
			return
		}

		sess.ToggleFilter(category, payload.Value)
		responses.WriteSuccess(w, buildShopResponse(engine, recorder, sess))
	}
}

// ShopClearFilters drops every category filter and keeps the search term.
func ShopClearFilters(engine productFilter, recorder filterRecorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		sess.ClearFilters()
		responses.WriteSuccess(w, buildShopResponse(engine, recorder, sess))
	}
}

type searchRequest struct {
	Term *string `json:"term" validate:"required"`
}

// ShopSearch replaces the search term. An empty term clears it.
func ShopSearch(engine productFilter, recorder filterRecorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var payload searchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess.SetSearchTerm(*payload.Term)
		responses.WriteSuccess(w, buildShopResponse(engine, recorder, sess))
	}
}

func buildShopResponse(engine productFilter, recorder filterRecorder, sess *session.Session) shopResponse {
	sel := sess.Selection()
	term := sess.SearchTerm()
	products := timedFilter(engine, recorder, "shop", sel, term)
	return shopResponse{
		SearchTerm:          term,
		Selection:           sel,
		Facets:              engine.Panel(sel),
		productListResponse: newProductListResponse(products),
	}
}

func requireSession(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (*session.Session, bool) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
		return nil, false
	}
	return sess, true
}
