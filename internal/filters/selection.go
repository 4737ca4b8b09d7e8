package filters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/chocozoo/storefront/internal/catalog"
)

// OnSaleOption is the single selectable value of the isOnSale category.
const OnSaleOption = "On Sale"

// Selection maps a category to the values picked in it. A category with no
// picked values is never present; Toggle is the only place that maintains it.
type Selection struct {
	values map[catalog.Category][]string
}

// Empty returns a selection with no active filters.
func Empty() Selection {
	return Selection{}
}

// FromMap builds a selection from raw category/value pairs, as they arrive in
// query strings. Unknown categories and invalid values are rejected; blank
// values and duplicates are dropped.
func FromMap(raw map[string][]string) (Selection, error) {
	sel := Empty()
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		category, err := catalog.ParseCategory(key)
		if err != nil {
			return Selection{}, err
		}
		for _, value := range raw[key] {
			value = strings.TrimSpace(value)
			if value == "" || sel.IsSelected(category, value) {
				continue
			}
			if err := ValidateOption(category, value); err != nil {
				return Selection{}, err
			}
			sel = Toggle(sel, category, value)
		}
	}
	return sel, nil
}

// ValidateOption checks that value can be selected within category.
func ValidateOption(category catalog.Category, value string) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category %q", category)
	}
	if value == "" {
		return fmt.Errorf("value is required for %s", category)
	}
	if category == catalog.CategoryOnSale && value != OnSaleOption {
		return fmt.Errorf("%s only accepts %q", category, OnSaleOption)
	}
	return nil
}

// Toggle removes value from category when selected, adds it otherwise. The
// input is left untouched. Removing the last value drops the category key.
func Toggle(sel Selection, category catalog.Category, value string) Selection {
	next := sel.clone()
	current := next.values[category]

	idx := -1
	for i, v := range current {
		if v == value {
			idx = i
			break
		}
	}

	if idx >= 0 {
		updated := make([]string, 0, len(current)-1)
		updated = append(updated, current[:idx]...)
		updated = append(updated, current[idx+1:]...)
		if len(updated) == 0 {
			delete(next.values, category)
		} else {
			next.values[category] = updated
		}
	} else {
		next.values[category] = append(append([]string(nil), current...), value)
	}

	if len(next.values) == 0 {
		next.values = nil
	}
	return next
}

// ClearAll resets every category filter. The search term is separate state.
func ClearAll() Selection {
	return Empty()
}

func (s Selection) clone() Selection {
	out := Selection{values: make(map[catalog.Category][]string, len(s.values)+1)}
	for k, v := range s.values {
		out.values[k] = append([]string(nil), v...)
	}
	return out
}

func (s Selection) IsEmpty() bool {
	return len(s.values) == 0
}

// Len returns the number of active categories.
func (s Selection) Len() int {
	return len(s.values)
}

// Categories lists active categories in catalog category order.
func (s Selection) Categories() []catalog.Category {
	out := make([]catalog.Category, 0, len(s.values))
	for _, c := range catalog.Categories() {
		if _, ok := s.values[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Values returns the selected values of a category in the order they were picked.
func (s Selection) Values(category catalog.Category) []string {
	return append([]string(nil), s.values[category]...)
}

func (s Selection) Has(category catalog.Category) bool {
	_, ok := s.values[category]
	return ok
}

func (s Selection) IsSelected(category catalog.Category, value string) bool {
	for _, v := range s.values[category] {
		if v == value {
			return true
		}
	}
	return false
}

// Equal compares selections as sets; pick order is ignored.
func (s Selection) Equal(other Selection) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for category, values := range s.values {
		theirs, ok := other.values[category]
		if !ok || len(theirs) != len(values) {
			return false
		}
		for _, v := range values {
			if !other.IsSelected(category, v) {
				return false
			}
		}
	}
	return true
}

// Check verifies that no category is present with an empty value set.
func (s Selection) Check() error {
	for category, values := range s.values {
		if len(values) == 0 {
			return fmt.Errorf("category %s present with no values", category)
		}
	}
	return nil
}

// Map returns a plain copy suitable for rendering.
func (s Selection) Map() map[string][]string {
	out := make(map[string][]string, len(s.values))
	for k, v := range s.values {
		out[string(k)] = append([]string(nil), v...)
	}
	return out
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}
