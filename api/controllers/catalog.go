package controllers

import (
	"net/http"
	"time"

	"github.com/chocozoo/storefront/api/responses"
	"github.com/chocozoo/storefront/api/validators"
	"github.com/chocozoo/storefront/internal/catalog"
	"github.com/chocozoo/storefront/internal/filters"
	pkgerrors "github.com/chocozoo/storefront/pkg/errors"
	"github.com/chocozoo/storefront/pkg/logger"
	"github.com/chocozoo/storefront/pkg/pagination"
)

type productFilter interface {
	Filter(sel filters.Selection, searchTerm string) []catalog.Product
	Panel(sel filters.Selection) []filters.FacetView
}

type filterRecorder interface {
	ObserveFilter(source string, duration time.Duration)
}

// CatalogProducts lists products matching ?q= and one comma separated query
// parameter per category, e.g. ?animalType=Bear,Cat&isOnSale=On%20Sale.
// ?limit= and ?cursor= page through the result.
func CatalogProducts(engine productFilter, recorder filterRecorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := map[string][]string{}
		for _, c := range catalog.Categories() {
			if values := validators.QueryList(r, c.String()); len(values) > 0 {
				raw[c.String()] = values
			}
		}
		sel, err := filters.FromMap(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error()))
			return
		}

		page, err := validators.QueryPage(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := timedFilter(engine, recorder, "catalog", sel, r.URL.Query().Get("q"))
		if !page.Enabled() {
			responses.WriteSuccess(w, newProductListResponse(products))
			return
		}

		ids := make([]int64, len(products))
		for i, p := range products {
			ids[i] = int64(p.ID)
		}
		start, end, next, err := pagination.Window(ids, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor").WithDetails(map[string]any{"field": "cursor"}))
			return
		}
		resp := newProductListResponse(products[start:end])
		if next != nil {
			resp.NextCursor = pagination.EncodeCursor(*next)
		}
		responses.WriteSuccess(w, resp)
	}
}

// CatalogFacets returns the filter panel with every available option.
func CatalogFacets(engine productFilter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"facets": engine.Panel(filters.Empty())})
	}
}

func timedFilter(engine productFilter, recorder filterRecorder, source string, sel filters.Selection, term string) []catalog.Product {
	start := time.Now()
	products := engine.Filter(sel, term)
	if recorder != nil {
		recorder.ObserveFilter(source, time.Since(start))
	}
	return products
}
