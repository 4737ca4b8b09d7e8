package catalog

import "fmt"

// Category names a product attribute used for faceted filtering.
type Category string

const (
	CategoryAnimalType    Category = "animalType"
	CategoryAnimalSubType Category = "animalSubType"
	CategoryChocolateType Category = "chocolateType"
	CategoryDietary       Category = "dietary"
	CategorySize          Category = "size"
	CategoryFlavor        Category = "flavor"
	CategoryOccasion      Category = "occasion"
	CategoryPackaging     Category = "packaging"
	CategoryOnSale        Category = "isOnSale"
)

var knownCategories = []Category{
	CategoryAnimalType,
	CategoryAnimalSubType,
	CategoryChocolateType,
	CategoryDietary,
	CategorySize,
	CategoryFlavor,
	CategoryOccasion,
	CategoryPackaging,
	CategoryOnSale,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	for _, candidate := range knownCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range knownCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}

// Categories lists every filterable category.
func Categories() []Category {
	out := make([]Category, len(knownCategories))
	copy(out, knownCategories)
	return out
}
