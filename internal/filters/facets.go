package filters

import "github.com/chocozoo/storefront/internal/catalog"

// Facet is one section of the filter panel.
type Facet struct {
	Label    string           `json:"label"`
	Category catalog.Category `json:"category"`
}

var panelFacets = []Facet{
	{Label: "Animal Type", Category: catalog.CategoryAnimalType},
	{Label: "Animal Sub-Type", Category: catalog.CategoryAnimalSubType},
	{Label: "Chocolate Type", Category: catalog.CategoryChocolateType},
	{Label: "Dietary Needs", Category: catalog.CategoryDietary},
	{Label: "Size", Category: catalog.CategorySize},
	{Label: "Sale Items", Category: catalog.CategoryOnSale},
}

// Facets returns the panel sections in display order.
func Facets() []Facet {
	out := make([]Facet, len(panelFacets))
	copy(out, panelFacets)
	return out
}

type Option struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

type FacetView struct {
	Facet
	Options []Option `json:"options"`
}

// Panel renders every facet with its options, flagging the selected ones.
func (e *Engine) Panel(sel Selection) []FacetView {
	facets := Facets()
	out := make([]FacetView, 0, len(facets))
	for _, f := range facets {
		values := e.options[f.Category]
		opts := make([]Option, 0, len(values))
		for _, v := range values {
			opts = append(opts, Option{Value: v, Selected: sel.IsSelected(f.Category, v)})
		}
		out = append(out, FacetView{Facet: f, Options: opts})
	}
	return out
}
