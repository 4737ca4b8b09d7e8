package catalog

import (
	"github.com/shopspring/decimal"
)

// ProductID is the stable identifier of a catalog entry.
type ProductID int64

// Product is an immutable catalog record.
type Product struct {
	ID          ProductID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	IsOnSale    bool             `json:"isOnSale"`
	SalePrice   *decimal.Decimal `json:"salePrice,omitempty"`

	AnimalType    Values `json:"animalType"`
	AnimalSubType Values `json:"animalSubType"`
	ChocolateType Values `json:"chocolateType"`
	Dietary       Values `json:"dietary"`
	Size          Values `json:"size"`
	Flavor        Values `json:"flavor"`
	Occasion      Values `json:"occasion"`
	Packaging     Values `json:"packaging"`
}

// Attribute returns the product's value for a category. isOnSale and unknown
// categories have no attribute value and report empty.
func (p Product) Attribute(c Category) Values {
	switch c {
	case CategoryAnimalType:
		return p.AnimalType
	case CategoryAnimalSubType:
		return p.AnimalSubType
	case CategoryChocolateType:
		return p.ChocolateType
	case CategoryDietary:
		return p.Dietary
	case CategorySize:
		return p.Size
	case CategoryFlavor:
		return p.Flavor
	case CategoryOccasion:
		return p.Occasion
	case CategoryPackaging:
		return p.Packaging
	}
	return Values{}
}

// HasSalePrice reports whether a usable sale price is attached.
func (p Product) HasSalePrice() bool {
	return p.IsOnSale && p.SalePrice != nil
}
