package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Values holds an attribute that the data may spell either as a single
// string or as a list of strings. Blank entries are dropped on decode.
type Values struct {
	items []string
	multi bool
}

// Scalar builds a single-valued attribute.
func Scalar(v string) Values {
	if v == "" {
		return Values{}
	}
	return Values{items: []string{v}}
}

// Set builds a collection-valued attribute.
func Set(vs ...string) Values {
	out := Values{multi: true}
	for _, v := range vs {
		if v != "" {
			out.items = append(out.items, v)
		}
	}
	return out
}

// Items returns a copy of the contained values.
func (v Values) Items() []string {
	if len(v.items) == 0 {
		return nil
	}
	out := make([]string, len(v.items))
	copy(out, v.items)
	return out
}

func (v Values) IsEmpty() bool {
	return len(v.items) == 0
}

// IsCollection reports whether the attribute was given as a list.
func (v Values) IsCollection() bool {
	return v.multi
}

func (v Values) Contains(candidate string) bool {
	for _, item := range v.items {
		if item == candidate {
			return true
		}
	}
	return false
}

func (v Values) MarshalJSON() ([]byte, error) {
	if v.multi {
		if v.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.items)
	}
	if len(v.items) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(v.items[0])
}

func (v *Values) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = Values{}
		return nil
	case data[0] == '[':
		var raw []any
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := Values{multi: true}
		for _, item := range raw {
			if s, ok := item.(string); ok && s != "" {
				out.items = append(out.items, s)
			}
		}
		*v = out
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Scalar(s)
		return nil
	default:
		// numbers, booleans and objects are not usable filter values
		*v = Values{}
		return nil
	}
}

func (v Values) String() string {
	if v.multi {
		return fmt.Sprint(v.items)
	}
	if len(v.items) == 0 {
		return ""
	}
	return v.items[0]
}
