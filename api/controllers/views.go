package controllers

import (
	"github.com/shopspring/decimal"

	"github.com/chocozoo/storefront/internal/cart"
	"github.com/chocozoo/storefront/internal/catalog"
	"github.com/chocozoo/storefront/internal/checkout"
	"github.com/chocozoo/storefront/internal/filters"
	"github.com/chocozoo/storefront/pkg/enums"
	"github.com/chocozoo/storefront/pkg/types"
)

type productResponse struct {
	ID             catalog.ProductID `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	ImageURL       string            `json:"imageUrl,omitempty"`
	Price          types.Money       `json:"price"`
	IsOnSale       bool              `json:"isOnSale"`
	SalePrice      *types.Money      `json:"salePrice,omitempty"`
	EffectivePrice types.Money       `json:"effectivePrice"`
	AnimalType     catalog.Values    `json:"animalType"`
	AnimalSubType  catalog.Values    `json:"animalSubType"`
	ChocolateType  catalog.Values    `json:"chocolateType"`
	Dietary        catalog.Values    `json:"dietary"`
	Size           catalog.Values    `json:"size"`
	Flavor         catalog.Values    `json:"flavor"`
	Occasion       catalog.Values    `json:"occasion"`
	Packaging      catalog.Values    `json:"packaging"`
}

func newProductResponse(p catalog.Product) productResponse {
	effective := cart.EffectiveUnitPrice(cart.Item{Price: p.Price, IsOnSale: p.IsOnSale, SalePrice: p.SalePrice})
	return productResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		Price:          types.NewMoney(p.Price),
		IsOnSale:       p.IsOnSale,
		SalePrice:      moneyPtr(p.SalePrice),
		EffectivePrice: types.NewMoney(effective),
		AnimalType:     p.AnimalType,
		AnimalSubType:  p.AnimalSubType,
		ChocolateType:  p.ChocolateType,
		Dietary:        p.Dietary,
		Size:           p.Size,
		Flavor:         p.Flavor,
		Occasion:       p.Occasion,
		Packaging:      p.Packaging,
	}
}

type productListResponse struct {
	Products   []productResponse `json:"products"`
	Count      int               `json:"count"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

func newProductListResponse(products []catalog.Product) productListResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return productListResponse{Products: out, Count: len(out)}
}

type shopResponse struct {
	SearchTerm string              `json:"searchTerm"`
	Selection  filters.Selection   `json:"selection"`
	Facets     []filters.FacetView `json:"facets"`
	productListResponse
}

type cartItemResponse struct {
	ID        catalog.ProductID `json:"id"`
	Name      string            `json:"name"`
	ImageURL  string            `json:"imageUrl,omitempty"`
	Price     types.Money       `json:"price"`
	IsOnSale  bool              `json:"isOnSale"`
	SalePrice *types.Money      `json:"salePrice,omitempty"`
	UnitPrice types.Money       `json:"unitPrice"`
	Quantity  int               `json:"quantity"`
	LineTotal types.Money       `json:"lineTotal"`
}

func newCartItemResponse(item cart.Item) cartItemResponse {
	return cartItemResponse{
		ID:        item.ProductID,
		Name:      item.Name,
		ImageURL:  item.ImageURL,
		Price:     types.NewMoney(item.Price),
		IsOnSale:  item.IsOnSale,
		SalePrice: moneyPtr(item.SalePrice),
		UnitPrice: types.NewMoney(cart.EffectiveUnitPrice(item)),
		Quantity:  item.Quantity,
		LineTotal: types.NewMoney(cart.LineTotal(item)),
	}
}

func newCartItemResponses(items []cart.Item) []cartItemResponse {
	out := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newCartItemResponse(item))
	}
	return out
}

type cartResponse struct {
	Items     []cartItemResponse `json:"items"`
	Total     types.Money        `json:"total"`
	Savings   types.Money        `json:"savings"`
	ItemCount int                `json:"itemCount"`
}

func newCartResponse(snap cart.Snapshot) cartResponse {
	return cartResponse{
		Items:     newCartItemResponses(snap.Items),
		Total:     types.NewMoney(snap.Total),
		Savings:   types.NewMoney(snap.Savings),
		ItemCount: snap.ItemCount,
	}
}

type orderResponse struct {
	Items         []cartItemResponse     `json:"items"`
	Total         types.Money            `json:"total"`
	Shipping      *checkout.ShippingInfo `json:"shipping,omitempty"`
	PaymentMethod enums.PaymentMethod    `json:"paymentMethod"`
	PaymentLabel  string                 `json:"paymentLabel"`
	MaskedCard    string                 `json:"maskedCard,omitempty"`
}

// Card numbers and CVVs never leave the server; only the masked number does.
func newOrderResponse(o checkout.Order) orderResponse {
	resp := orderResponse{
		Items:         newCartItemResponses(o.Items),
		Total:         types.NewMoney(o.Total),
		Shipping:      o.Shipping,
		PaymentMethod: o.PaymentMethod,
		PaymentLabel:  o.PaymentMethod.Label(),
	}
	if o.Card != nil {
		resp.MaskedCard = o.Card.Masked()
	}
	return resp
}

type summaryLineResponse struct {
	ID            catalog.ProductID `json:"id"`
	Name          string            `json:"name"`
	Quantity      int               `json:"quantity"`
	UnitPrice     types.Money       `json:"unitPrice"`
	LineTotal     types.Money       `json:"lineTotal"`
	RegularTotal  types.Money       `json:"regularTotal"`
	DiscountShown bool              `json:"discountShown"`
}

type summaryResponse struct {
	Lines     []summaryLineResponse `json:"lines"`
	ItemCount int                   `json:"itemCount"`
	Total     types.Money           `json:"total"`
	Savings   types.Money           `json:"savings"`
}

func newSummaryResponse(s checkout.Summary) summaryResponse {
	lines := make([]summaryLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, summaryLineResponse{
			ID:            l.Item.ProductID,
			Name:          l.Item.Name,
			Quantity:      l.Item.Quantity,
			UnitPrice:     types.NewMoney(l.UnitPrice),
			LineTotal:     types.NewMoney(l.LineTotal),
			RegularTotal:  types.NewMoney(l.RegularTotal),
			DiscountShown: l.DiscountShown,
		})
	}
	return summaryResponse{
		Lines:     lines,
		ItemCount: s.ItemCount,
		Total:     types.NewMoney(s.Total),
		Savings:   types.NewMoney(s.Savings),
	}
}

func moneyPtr(d *decimal.Decimal) *types.Money {
	if d == nil {
		return nil
	}
	m := types.NewMoney(*d)
	return &m
}
