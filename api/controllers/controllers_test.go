package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chocozoo/storefront/api/middleware"
	"github.com/chocozoo/storefront/internal/catalog"
	"github.com/chocozoo/storefront/internal/filters"
	"github.com/chocozoo/storefront/internal/session"
)

type stubFilterRecorder struct {
	sources []string
}

func (s *stubFilterRecorder) ObserveFilter(source string, _ time.Duration) {
	s.sources = append(s.sources, source)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func newTestSession() *session.Session {
	sess, _ := session.NewRegistry(session.Params{}).Resolve("")
	return sess
}

func sessionRequest(sess *session.Session, method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithSession(req.Context(), sess))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func decodeData[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func decodeDataString[T any](t *testing.T, body string) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func decodeErrorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return envelope.Error.Code
}

type listPayload struct {
	Products []struct {
		ID             int64  `json:"id"`
		Name           string `json:"name"`
		Price          string `json:"price"`
		SalePrice      string `json:"salePrice"`
		EffectivePrice string `json:"effectivePrice"`
	} `json:"products"`
	Count      int    `json:"count"`
	NextCursor string `json:"nextCursor"`
}

func (l listPayload) ids() []int64 {
	out := make([]int64, 0, len(l.Products))
	for _, p := range l.Products {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSessionHandlersRequireSession(t *testing.T) {
	engine := filters.NewEngine(testCatalog(t))
	handlers := map[string]http.HandlerFunc{
		"shop":  ShopView(engine, nil, nil),
		"cart":  CartFetch(nil),
		"badge": CartBadge(nil),
	}
	for name, h := range handlers {
		resp := httptest.NewRecorder()
		h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
		if resp.Code != http.StatusInternalServerError {
			t.Fatalf("%s: expected 500 without session, got %d", name, resp.Code)
		}
	}
}
