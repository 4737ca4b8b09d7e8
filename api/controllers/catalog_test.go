package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/chocozoo/storefront/internal/filters"
)

func TestCatalogProductsFiltersByQuery(t *testing.T) {
	engine := filters.NewEngine(testCatalog(t))
	recorder := &stubFilterRecorder{}
	handler := CatalogProducts(engine, recorder, nil)

	tests := []struct {
		name   string
		target string
		want   []int64
	}{
		{"bears", "/api/v1/catalog/products?animalType=Bear", []int64{1, 3, 4}},
		{"bears on sale", "/api/v1/catalog/products?animalType=Bear&isOnSale=On%20Sale", []int64{4}},
		{"search is case insensitive", "/api/v1/catalog/products?q=BAR", []int64{1, 4, 11, 16}},
		{"or within category", "/api/v1/catalog/products?animalType=Dog,Farm%20Animal", []int64{10, 11, 15, 16}},
		{"no match", "/api/v1/catalog/products?q=unicorn", []int64{}},
	}
	for _, tt := range tests {
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tt.target, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", tt.name, resp.Code)
		}
		got := decodeData[listPayload](t, resp)
		if !equalIDs(got.ids(), tt.want) || got.Count != len(tt.want) {
			t.Fatalf("%s: expected %v got %v", tt.name, tt.want, got.ids())
		}
	}
	if len(recorder.sources) != len(tests) || recorder.sources[0] != "catalog" {
		t.Fatalf("expected one catalog observation per request, got %v", recorder.sources)
	}
}

func TestCatalogProductsRendersPrices(t *testing.T) {
	handler := CatalogProducts(filters.NewEngine(testCatalog(t)), nil, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?q=penguin", nil))
	got := decodeData[listPayload](t, resp)
	if len(got.Products) != 1 {
		t.Fatalf("expected one product, got %d", len(got.Products))
	}
	p := got.Products[0]
	if p.Price != "8.00" || p.SalePrice != "6.00" || p.EffectivePrice != "6.00" {
		t.Fatalf("unexpected prices %+v", p)
	}

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?q=dolphin", nil))
	got = decodeData[listPayload](t, resp)
	if got.Products[0].EffectivePrice != "9.00" {
		t.Fatalf("on sale without a sale price keeps the regular price, got %+v", got.Products[0])
	}
}

func TestCatalogProductsRejectsBadSaleOption(t *testing.T) {
	handler := CatalogProducts(filters.NewEngine(testCatalog(t)), nil, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?isOnSale=yes", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCatalogFacets(t *testing.T) {
	handler := CatalogFacets(filters.NewEngine(testCatalog(t)))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/facets", nil))

	got := decodeData[struct {
		Facets []struct {
			Label    string `json:"label"`
			Category string `json:"category"`
			Options  []struct {
				Value    string `json:"value"`
				Selected bool   `json:"selected"`
			} `json:"options"`
		} `json:"facets"`
	}](t, resp)

	if len(got.Facets) != 6 {
		t.Fatalf("expected 6 facets, got %d", len(got.Facets))
	}
	first, last := got.Facets[0], got.Facets[5]
	if first.Label != "Animal Type" || first.Category != "animalType" {
		t.Fatalf("unexpected first facet %+v", first)
	}
	if last.Category != "isOnSale" || len(last.Options) != 1 || last.Options[0].Value != "On Sale" {
		t.Fatalf("unexpected sale facet %+v", last)
	}
	for _, opt := range first.Options {
		if opt.Selected {
			t.Fatalf("nothing should be selected in the catalog facets")
		}
	}
}

func TestCatalogProductsPagesWithCursor(t *testing.T) {
	handler := CatalogProducts(filters.NewEngine(testCatalog(t)), nil, nil)

	var seen []int64
	target := "/api/v1/catalog/products?animalType=Dog,Farm%20Animal&limit=3"
	for pages := 0; pages < 5; pages++ {
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
		}
		got := decodeData[listPayload](t, resp)
		seen = append(seen, got.ids()...)
		if got.NextCursor == "" {
			break
		}
		target = "/api/v1/catalog/products?animalType=Dog,Farm%20Animal&limit=3&cursor=" + url.QueryEscape(got.NextCursor)
	}
	if !equalIDs(seen, []int64{10, 11, 15, 16}) {
		t.Fatalf("paging lost or repeated products: %v", seen)
	}
}

func TestCatalogProductsRejectsBadPaging(t *testing.T) {
	handler := CatalogProducts(filters.NewEngine(testCatalog(t)), nil, nil)

	for _, target := range []string{
		"/api/v1/catalog/products?limit=zero",
		"/api/v1/catalog/products?limit=-2",
		"/api/v1/catalog/products?cursor=%21%21",
	} {
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", target, resp.Code)
		}
	}
}
